// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/guildmaster/internal/ports/secondary"
)

// SaveFileStore implements secondary.SaveFileStore on the local filesystem.
type SaveFileStore struct{}

// NewSaveFileStore creates a new filesystem save-file store.
func NewSaveFileStore() *SaveFileStore {
	return &SaveFileStore{}
}

// Write stores data at path. The file is written next to its destination and
// renamed into place so a crash never leaves a half-written save.
func (s *SaveFileStore) Write(ctx context.Context, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write save file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close save file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to set save file permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move save file into place: %w", err)
	}
	return nil
}

// Read returns the contents of path.
func (s *SaveFileStore) Read(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read save file: %w", err)
	}
	return data, nil
}

// Ensure SaveFileStore implements the interface.
var _ secondary.SaveFileStore = (*SaveFileStore)(nil)
