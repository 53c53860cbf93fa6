// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

// package tokenstore persists the single access token of the console.
// The slot is process-wide: every component reads it at call time, and the
// last write wins. Backends differ only in where the slot lives.
package tokenstore // import "github.com/secwatch/console/internal/tokenstore"

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/secwatch/console/internal/logging"
)

// Key names the credential slot in every backend.
const Key = "access_token"

// ErrUnsupportedBackend is returned by New for an unknown backend name.
var ErrUnsupportedBackend = errors.New("unsupported token store backend")

// Store is a single persisted credential slot.
// Get returns "" when no token is stored. Clear on an empty slot is a no-op.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Options selects and configures a backend.
type Options struct {
	// Backend is one of file, sqlite, postgres, mysql, redis, memory.
	Backend string
	// Dsn is a file path for file/sqlite, a DSN for postgres/mysql and an
	// address for redis. Empty picks a per-backend default.
	Dsn string
	// Password is only used by the redis backend.
	Password string
}

// New builds the backend named by opts.Backend.
func New(opts Options) (Store, error) {
	logging.Debugf("tokenstore: opening %q backend", opts.Backend)
	switch opts.Backend {
	case "", "file":
		path := opts.Dsn
		if path == "" {
			p, err := DefaultFilePath()
			if err != nil {
				return nil, err
			}
			path = p
		}
		return NewFileStore(path), nil
	case "sqlite":
		dsn := opts.Dsn
		if dsn == "" {
			dir, err := os.UserConfigDir()
			if err != nil {
				return nil, fmt.Errorf("could not resolve config dir: %w", err)
			}
			if err := os.MkdirAll(filepath.Join(dir, "secwatch"), 0o700); err != nil {
				return nil, fmt.Errorf("could not create config dir: %w", err)
			}
			dsn = filepath.Join(dir, "secwatch", "credentials.db")
		}
		return NewSQLStore("sqlite", dsn)
	case "postgres", "mysql":
		if opts.Dsn == "" {
			return nil, fmt.Errorf("token.dsn is required for the %s backend", opts.Backend)
		}
		return NewSQLStore(opts.Backend, opts.Dsn)
	case "redis":
		addr := opts.Dsn
		if addr == "" {
			addr = "localhost:6379"
		}
		return NewRedisStore(addr, opts.Password), nil
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, opts.Backend)
	}
}

// Close releases backend resources when the store holds any.
func Close(s Store) error {
	if c, ok := s.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
