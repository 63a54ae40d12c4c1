package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps one file per key under a directory. Writes go to a
// temporary file that is renamed into place, so readers never observe a
// partial value.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates the directory if needed and returns a store rooted there
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("repository: failed to create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Get reads the value stored under key
func (f *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("repository: failed to read %q: %w", key, err)
	}
	return data, nil
}

// Put atomically replaces the value stored under key
func (f *FileStore) Put(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	tmp, err := os.CreateTemp(f.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("repository: failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("repository: failed to write %q: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("repository: failed to sync %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("repository: failed to close %q: %w", key, err)
	}
	if err := os.Rename(tmpName, f.path(key)); err != nil {
		return fmt.Errorf("repository: failed to replace %q: %w", key, err)
	}
	return nil
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, url.PathEscape(key)+".json")
}
