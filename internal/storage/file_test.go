// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func TestFileBackendRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "vault", "doc.json")

	b, err := NewFileBackend(path)
	if err != nil {
		t.Fatalf("NewFileBackend: %v", err)
	}

	// Absent file reads as (nil, nil) with zero size.
	data, err := b.Load(ctx)
	if err != nil || data != nil {
		t.Fatalf("Load on missing file: got (%v, %v), want (nil, nil)", data, err)
	}
	if size, _ := b.Size(ctx); size != 0 {
		t.Errorf("Size on missing file: got %d, want 0", size)
	}

	blob := []byte(`{"qas":[]}`)
	if err := b.Store(ctx, blob); err != nil {
		t.Fatalf("Store: %v", err)
	}

	got, err := b.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != string(blob) {
		t.Errorf("Load: got %q, want %q", got, blob)
	}
	if size, _ := b.Size(ctx); size != int64(len(blob)) {
		t.Errorf("Size: got %d, want %d", size, len(blob))
	}

	if err := b.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if data, _ := b.Load(ctx); data != nil {
		t.Error("Load after Clear should return nil")
	}
	// Clearing twice is fine.
	if err := b.Clear(ctx); err != nil {
		t.Errorf("second Clear: %v", err)
	}
}

func TestFileBackendOverwrite(t *testing.T) {
	ctx := context.Background()
	b, err := NewFileBackend(filepath.Join(t.TempDir(), "doc.json"))
	if err != nil {
		t.Fatalf("NewFileBackend: %v", err)
	}

	if err := b.Store(ctx, []byte("first")); err != nil {
		t.Fatalf("Store: %v", err)
	}
	if err := b.Store(ctx, []byte("second")); err != nil {
		t.Fatalf("Store: %v", err)
	}

	got, err := b.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("Load: got %q, want %q", got, "second")
	}
}

func TestMemoryBackendRoundTrip(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()

	if data, err := b.Load(ctx); err != nil || data != nil {
		t.Fatalf("Load on empty backend: got (%v, %v), want (nil, nil)", data, err)
	}

	blob := []byte("payload")
	if err := b.Store(ctx, blob); err != nil {
		t.Fatalf("Store: %v", err)
	}

	got, _ := b.Load(ctx)
	if string(got) != "payload" {
		t.Errorf("Load: got %q", got)
	}

	// The returned slice is a copy; mutating it must not affect storage.
	got[0] = 'X'
	again, _ := b.Load(ctx)
	if string(again) != "payload" {
		t.Error("Load must return an independent copy")
	}

	if size, _ := b.Size(ctx); size != int64(len(blob)) {
		t.Errorf("Size: got %d, want %d", size, len(blob))
	}

	if err := b.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if data, _ := b.Load(ctx); data != nil {
		t.Error("Load after Clear should return nil")
	}
}
