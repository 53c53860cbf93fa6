// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-yaml"
)

// FileStore keeps the token in a small YAML document readable only by the
// current user. A missing file means no token.
type FileStore struct {
	mu   sync.Mutex
	path string
}

type credentialsFile struct {
	AccessToken string `yaml:"access_token"`
}

// DefaultFilePath returns <UserConfigDir>/secwatch/credentials.yaml.
func DefaultFilePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not resolve config dir: %w", err)
	}
	return filepath.Join(dir, "secwatch", "credentials.yaml"), nil
}

// NewFileStore returns a store backed by the file at path.
func NewFileStore(path string) *FileStore { return &FileStore{path: path} }

// Path returns the backing file location.
func (f *FileStore) Path() string { return f.path }

func (f *FileStore) Get(context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read credentials: %w", err)
	}
	var c credentialsFile
	if err := yaml.Unmarshal(data, &c); err != nil {
		return "", fmt.Errorf("parse credentials %s: %w", f.path, err)
	}
	return c.AccessToken, nil
}

func (f *FileStore) Set(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}
	data, err := yaml.Marshal(credentialsFile{AccessToken: token})
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}
	// Write to a sibling temp file and rename so readers never see a torn file.
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

func (f *FileStore) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}
