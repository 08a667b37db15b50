// Package storage persists uploaded item images on the local filesystem under
// a single configured directory. Rows reference files by the path returned
// from Save.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

type LocalImageStore struct {
	dir string
}

func NewLocalImageStore(dir string) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory failed: %w", err)
	}
	return &LocalImageStore{dir: dir}, nil
}

func (s *LocalImageStore) Dir() string {
	return s.dir
}

// Save writes the file and returns the path to record on the item row.
func (s *LocalImageStore) Save(filename string, data []byte) (string, error) {
	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write image file failed: %w", err)
	}
	return path, nil
}

// Remove deletes a previously saved file. A path that no longer exists is not
// an error; the row is the source of truth, not the directory listing.
func (s *LocalImageStore) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove image file failed: %w", err)
	}
	return nil
}
