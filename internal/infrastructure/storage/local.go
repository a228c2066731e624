// Package storage implements recipe image storage on the local filesystem.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalFileStorage implements outbound.FileStorage under a single static
// directory. Stored names are opaque so user-supplied names never touch
// the filesystem.
type LocalFileStorage struct {
	dir string
}

// NewLocalFileStorage ensures the directory exists and returns the store.
func NewLocalFileStorage(dir string) (*LocalFileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &LocalFileStorage{dir: dir}, nil
}

// GenerateName returns a fresh random name keeping the original extension.
func (s *LocalFileStorage) GenerateName(originalName string) string {
	return uuid.NewString() + filepath.Ext(originalName)
}

// Save writes the content under the given name.
func (s *LocalFileStorage) Save(ctx context.Context, name string, content io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// filepath.Base strips any path the caller smuggled into the name.
	path := filepath.Join(s.dir, filepath.Base(name))
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		os.Remove(path)
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Dir returns the root directory, used to serve files over HTTP.
func (s *LocalFileStorage) Dir() string { return s.dir }
