// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests.
// Handlers are exercised through a chi router over a memory-backed store,
// so no external services are needed.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"promptvault/internal/events"
	"promptvault/internal/storage"
	"promptvault/internal/store"
)

// newTestAPI builds the handler group over a fresh memory-backed store and
// mounts it on a router with the same route shapes the server uses.
func newTestAPI(t *testing.T) (*store.Store, http.Handler) {
	t.Helper()

	bus := events.NewBus()
	s := store.New(storage.NewMemoryBackend(), bus, store.Config{
		SaveDebounce:  10 * time.Millisecond,
		AutosaveEvery: time.Hour,
	})
	s.Initialize(context.Background())
	t.Cleanup(func() { s.Close(context.Background()) })

	api := New(s, bus)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Route("/prompts", func(r chi.Router) {
			r.Get("/", api.ListPrompts)
			r.Post("/", api.CreatePrompt)
			r.Post("/batch-delete", api.BatchDeletePrompts)
			r.Post("/move", api.MovePrompts)
			r.Get("/{id}", api.GetPrompt)
			r.Put("/{id}", api.UpdatePrompt)
			r.Delete("/{id}", api.DeletePrompt)
			r.Post("/{id}/views", api.IncrementViews)
			r.Put("/{id}/rating", api.UpdateRating)
		})
		r.Route("/folders", func(r chi.Router) {
			r.Get("/", api.ListFolders)
			r.Post("/", api.CreateFolder)
			r.Delete("/{name}", api.DeleteFolder)
		})
		r.Get("/stats", api.GetStats)
		r.Get("/export", api.ExportData)
		r.Post("/import", api.ImportData)
		r.Post("/clear", api.ClearData)
		r.Get("/settings", api.GetSettings)
		r.Put("/settings", api.UpdateSettings)
	})
	return s, r
}

// doJSON performs a request with an optional JSON body and returns the
// recorded response.
func doJSON(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// doRaw performs a request with a verbatim string body.
func doRaw(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// decode unmarshals a recorded JSON response into out.
func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}
