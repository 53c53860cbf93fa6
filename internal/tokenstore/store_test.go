// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

package tokenstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// exerciseStore runs the shared Get/Set/Clear contract against s.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if got, err := s.Get(ctx); err != nil || got != "" {
		t.Fatalf("empty store Get() = %q, %v; want \"\", nil", got, err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear on empty store: %v", err)
	}
	if err := s.Set(ctx, "abc"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got, _ := s.Get(ctx); got != "abc" {
		t.Fatalf("Get() = %q, want abc", got)
	}
	if err := s.Set(ctx, "def"); err != nil {
		t.Fatalf("second Set: %v", err)
	}
	if got, _ := s.Get(ctx); got != "def" {
		t.Fatalf("last write should win, got %q", got)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if got, _ := s.Get(ctx); got != "" {
		t.Fatalf("Get() after Clear = %q", got)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "credentials.yaml")
	s := NewFileStore(path)
	exerciseStore(t, s)

	if err := s.Set(context.Background(), "perm"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := fi.Mode().Perm(); perm != 0o600 {
		t.Errorf("credentials file mode = %o, want 600", perm)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.yaml")
	if err := os.WriteFile(path, []byte("access_token: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileStore(path).Get(context.Background()); err == nil {
		t.Fatal("expected parse error for corrupt credentials file")
	}
}

func TestSQLStoreSqliteMemory(t *testing.T) {
	s, err := NewSQLStore("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("NewSQLStore: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	exerciseStore(t, s)
}

func TestSQLStoreSqliteFilePersists(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "tokens.db")
	s, err := NewSQLStore("sqlite", dsn)
	if err != nil {
		t.Fatalf("NewSQLStore: %v", err)
	}
	if err := s.Set(context.Background(), "persisted"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	_ = s.Close()

	again, err := NewSQLStore("sqlite", dsn)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer again.Close()
	if got, _ := again.Get(context.Background()); got != "persisted" {
		t.Errorf("token not persisted across reopen: %q", got)
	}
}

func TestNewSelectsBackend(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cases := []struct {
		backend string
		check   func(Store) bool
	}{
		{"", func(s Store) bool { _, ok := s.(*FileStore); return ok }},
		{"file", func(s Store) bool { _, ok := s.(*FileStore); return ok }},
		{"memory", func(s Store) bool { _, ok := s.(*MemoryStore); return ok }},
		{"redis", func(s Store) bool { _, ok := s.(*RedisStore); return ok }},
	}
	for _, c := range cases {
		s, err := New(Options{Backend: c.backend})
		if err != nil {
			t.Fatalf("New(%q): %v", c.backend, err)
		}
		if !c.check(s) {
			t.Errorf("New(%q) returned %T", c.backend, s)
		}
		_ = Close(s)
	}

	if _, err := New(Options{Backend: "etcd"}); !errors.Is(err, ErrUnsupportedBackend) {
		t.Errorf("expected ErrUnsupportedBackend, got %v", err)
	}
	if _, err := New(Options{Backend: "postgres"}); err == nil {
		t.Error("postgres without a DSN should fail")
	}
}

func TestRedisKeyIsPrefixed(t *testing.T) {
	r := NewRedisStore("localhost:0", "")
	defer r.Close()
	if got := r.key(); got != "secwatch:access_token" {
		t.Errorf("redis key = %q", got)
	}
}

// Needs a running server, e.g. SECWATCH_TEST_REDIS=localhost:6379.
func TestRedisStore(t *testing.T) {
	addr := os.Getenv("SECWATCH_TEST_REDIS")
	if addr == "" {
		t.Skip("SECWATCH_TEST_REDIS not set")
	}
	r := NewRedisStore(addr, "")
	defer r.Close()
	exerciseStore(t, r)
}
