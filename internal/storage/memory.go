// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package storage

import (
	"context"
	"sync"
)

// MemoryBackend keeps the blob in memory. Used by tests and as a safe
// fallback when no durable backend is configured.
type MemoryBackend struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

// Load returns the stored blob, (nil, nil) when nothing was stored.
func (b *MemoryBackend) Load(_ context.Context) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.data == nil {
		return nil, nil
	}
	return append([]byte(nil), b.data...), nil
}

// Store replaces the stored blob.
func (b *MemoryBackend) Store(_ context.Context, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = append([]byte(nil), data...)
	return nil
}

// Size returns the stored blob's byte count.
func (b *MemoryBackend) Size(_ context.Context) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return int64(len(b.data)), nil
}

// Clear drops the stored blob.
func (b *MemoryBackend) Clear(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = nil
	return nil
}

// Close is a no-op for the memory backend.
func (b *MemoryBackend) Close() error {
	return nil
}
