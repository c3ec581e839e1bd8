// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"promptvault/internal/events"
	"promptvault/internal/storage"
	"promptvault/internal/store"
)

// flushRecorder wraps ResponseRecorder with a thread-safe body so the
// streaming goroutine and the test can touch it concurrently.
type flushRecorder struct {
	*httptest.ResponseRecorder
	mu sync.Mutex
}

func (f *flushRecorder) Write(b []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ResponseRecorder.Write(b)
}

func (f *flushRecorder) body() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ResponseRecorder.Body.String()
}

func TestStreamEventsForwardsStoreEvents(t *testing.T) {
	bus := events.NewBus()
	s := store.New(storage.NewMemoryBackend(), bus, store.Config{
		SaveDebounce:  time.Hour,
		AutosaveEvery: time.Hour,
	})
	s.Initialize(context.Background())
	defer s.Close(context.Background())

	api := New(s, bus)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest("GET", "/events", nil).WithContext(ctx)
	w := &flushRecorder{ResponseRecorder: httptest.NewRecorder()}

	done := make(chan struct{})
	go func() {
		api.StreamEvents(w, req)
		close(done)
	}()

	// Give the stream a moment to subscribe, then trigger an event.
	time.Sleep(20 * time.Millisecond)
	if _, err := s.AddPrompt("streamed question", "answer", store.AddOptions{}); err != nil {
		t.Fatalf("AddPrompt: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for !strings.Contains(w.body(), "event: "+store.TopicPromptAdded) {
		if time.Now().After(deadline) {
			t.Fatalf("event never reached the stream; body: %q", w.body())
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handler did not return after client disconnect")
	}

	if ct := w.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("content-type: got %q", ct)
	}
}
