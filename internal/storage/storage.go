// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage provides the persistence backends for the vault
// document. A backend stores a single serialized blob under a namespaced
// key; the store treats backend failures as recoverable and never lets
// them disturb in-memory state.
package storage

import "context"

// KeyPrefix namespaces every key written by a backend.
const KeyPrefix = "promptvault:"

// DocumentKey is the key under which the serialized document lives.
const DocumentKey = KeyPrefix + "document"

// Backend is the persistence contract. Load returns (nil, nil) when
// nothing has been stored yet; Size reports the stored blob's byte count,
// zero when absent.
type Backend interface {
	Load(ctx context.Context) ([]byte, error)
	Store(ctx context.Context, data []byte) error
	Size(ctx context.Context) (int64, error)
	Clear(ctx context.Context) error
	Close() error
}
