// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileBackend stores the document blob as a single file on disk — the
// zero-dependency backend used for local single-user deployments. Writes
// go through a temp file and rename so a crash mid-write never corrupts
// the document.
type FileBackend struct {
	path string
}

// NewFileBackend creates a backend writing to path, creating parent
// directories as needed.
func NewFileBackend(path string) (*FileBackend, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("file backend mkdir: %w", err)
	}
	return &FileBackend{path: path}, nil
}

// Load reads the document blob. Returns (nil, nil) when the file does not
// exist yet.
func (b *FileBackend) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("file load: %w", err)
	}
	return data, nil
}

// Store writes the document blob atomically.
func (b *FileBackend) Store(_ context.Context, data []byte) error {
	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("file store: %w", err)
	}
	if err := os.Rename(tmp, b.path); err != nil {
		return fmt.Errorf("file store rename: %w", err)
	}
	return nil
}

// Size returns the file's byte count, zero when absent.
func (b *FileBackend) Size(_ context.Context) (int64, error) {
	info, err := os.Stat(b.path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("file size: %w", err)
	}
	return info.Size(), nil
}

// Clear removes the file.
func (b *FileBackend) Clear(_ context.Context) error {
	if err := os.Remove(b.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("file clear: %w", err)
	}
	return nil
}

// Close is a no-op for the file backend.
func (b *FileBackend) Close() error {
	return nil
}
