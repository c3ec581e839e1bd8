// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// ValkeyBackend stores the document blob as a single Valkey
// (Redis-compatible) string value. No TTL — the document is the source of
// truth, not a cache.
type ValkeyBackend struct {
	client *redis.Client
	key    string
}

// ConnectValkey creates a Valkey client and verifies the connection with a ping.
func ConnectValkey(host, port, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("valkey ping: %w", err)
	}

	slog.Info("valkey connected", "addr", fmt.Sprintf("%s:%s", host, port))
	return client, nil
}

// NewValkeyBackend creates a backend over an already-connected client.
func NewValkeyBackend(client *redis.Client) *ValkeyBackend {
	return &ValkeyBackend{client: client, key: DocumentKey}
}

// Load reads the document blob. Returns (nil, nil) on a missing key.
func (b *ValkeyBackend) Load(ctx context.Context) ([]byte, error) {
	data, err := b.client.Get(ctx, b.key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("valkey load: %w", err)
	}
	return data, nil
}

// Store writes the document blob without expiry.
func (b *ValkeyBackend) Store(ctx context.Context, data []byte) error {
	if err := b.client.Set(ctx, b.key, data, 0).Err(); err != nil {
		return fmt.Errorf("valkey store: %w", err)
	}
	return nil
}

// Size returns the stored blob's byte count. STRLEN reports zero for a
// missing key, which matches the contract.
func (b *ValkeyBackend) Size(ctx context.Context) (int64, error) {
	size, err := b.client.StrLen(ctx, b.key).Result()
	if err != nil {
		return 0, fmt.Errorf("valkey size: %w", err)
	}
	return size, nil
}

// Clear removes the stored blob.
func (b *ValkeyBackend) Clear(ctx context.Context) error {
	if err := b.client.Del(ctx, b.key).Err(); err != nil {
		return fmt.Errorf("valkey clear: %w", err)
	}
	return nil
}

// Close releases the client.
func (b *ValkeyBackend) Close() error {
	return b.client.Close()
}
