// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store implements the vault's in-memory document store: CRUD over
// prompts, folder management, a filter/sort query engine, analytics, and
// import/export, persisted to a pluggable backend on a dirty-triggered
// schedule and announced to subscribers through the event bus.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"promptvault/internal/events"
	"promptvault/internal/models"
	"promptvault/internal/storage"
)

// Default save scheduling. Every mutation resets the debounce timer; the
// periodic timer forces a save whenever the document is dirty, regardless
// of debounce state.
const (
	DefaultSaveDebounce  = 2 * time.Second
	DefaultAutosaveEvery = 30 * time.Second

	// saveTimeout bounds backend writes triggered by timers, which have
	// no caller-supplied context.
	saveTimeout = 10 * time.Second
)

// ExportVersion tags exported documents.
const ExportVersion = "1.0"

// Config tunes the store's save scheduling. Zero values fall back to the
// defaults.
type Config struct {
	SaveDebounce  time.Duration
	AutosaveEvery time.Duration
}

// Store owns the document. All operations execute synchronously to
// completion under a single mutex; events for an operation are published
// only after the in-memory mutation is fully applied, and always outside
// the lock so subscribers may call back into the store.
type Store struct {
	backend storage.Backend
	bus     *events.Bus

	mu    sync.Mutex
	doc   models.Document
	dirty bool
	gen   uint64 // bumped on every mutation; guards against clearing dirty over a newer change

	// saveMu serializes Save end to end. The debounce timer, the autosave
	// ticker, and forced saves can all run concurrently; without ordering,
	// an older snapshot's backend write could land after a newer one and
	// leave stale data persisted with dirty already false.
	saveMu sync.Mutex

	timerMu  sync.Mutex
	debounce *time.Timer
	ticker   *time.Ticker
	done     chan struct{}
	closed   bool

	saveDebounce  time.Duration
	autosaveEvery time.Duration
}

// New creates a store over the given backend and bus. The document is
// empty until Initialize is called.
func New(backend storage.Backend, bus *events.Bus, cfg Config) *Store {
	if cfg.SaveDebounce == 0 {
		cfg.SaveDebounce = DefaultSaveDebounce
	}
	if cfg.AutosaveEvery == 0 {
		cfg.AutosaveEvery = DefaultAutosaveEvery
	}
	return &Store{
		backend:       backend,
		bus:           bus,
		doc:           models.NewDocument(),
		saveDebounce:  cfg.SaveDebounce,
		autosaveEvery: cfg.AutosaveEvery,
	}
}

// Initialize loads the persisted document if present and structurally
// valid, merging it over defaults; any failure falls back to defaults with
// a warning. Whenever the resulting record list is empty, sample data is
// seeded. Starts the periodic autosave and emits the initialized event
// with a full document snapshot. Never fails outward.
func (s *Store) Initialize(ctx context.Context) {
	s.load(ctx)

	var seeded int
	s.mu.Lock()
	if len(s.doc.Prompts) == 0 {
		seeded = s.seedSampleDataLocked()
		s.markDirtyLocked()
	}
	snapshot := s.doc.Clone()
	s.mu.Unlock()

	s.startAutosave()

	if seeded > 0 {
		s.scheduleSave()
		s.bus.Publish(TopicSampleDataAdded, seeded)
	}
	s.bus.Publish(TopicInitialized, snapshot)
	slog.Info("store initialized", "prompts", len(snapshot.Prompts), "seeded", seeded)
}

// load reads the backend blob and merges a valid document over the current
// defaults. Every failure is non-fatal: the warning is logged and the
// in-memory defaults stay in place.
func (s *Store) load(ctx context.Context) {
	data, err := s.backend.Load(ctx)
	if err != nil {
		slog.Warn("load failed, keeping defaults", "error", err)
		return
	}
	if data == nil {
		return
	}

	var loaded models.Document
	if err := json.Unmarshal(data, &loaded); err != nil {
		slog.Warn("persisted document unparseable, keeping defaults", "error", err)
		return
	}

	if result := models.ValidateDocument(loaded); !result.Valid {
		slog.Warn("persisted document invalid, keeping defaults", "errors", result.Errors)
		return
	}

	s.mu.Lock()
	s.mergeLocked(loaded)
	s.mu.Unlock()
}

// mergeLocked applies a loaded or imported document over the current one,
// field by field:
//
//   - prompts: replaced by the loaded list
//   - folders: protected folders first, then the loaded extras in order
//   - categories: always the compiled-in list (fixed enumeration)
//   - settings: loaded values, empty fields filled from defaults
//   - metadata: loaded provenance kept, version re-asserted
//
// The folder-membership invariant is re-established afterwards: prompts
// pointing at unknown folders are redirected to default.
func (s *Store) mergeLocked(loaded models.Document) {
	defaults := models.NewDocument()

	s.doc.Prompts = loaded.Prompts
	if s.doc.Prompts == nil {
		s.doc.Prompts = []models.Prompt{}
	}

	folders := append([]string(nil), models.ProtectedFolders...)
	for _, f := range loaded.Folders {
		if f != "" && !models.IsProtectedFolder(f) && !contains(folders, f) {
			folders = append(folders, f)
		}
	}
	s.doc.Folders = folders

	s.doc.Categories = append([]string(nil), models.Categories...)

	st := loaded.Settings
	if st.ActiveFolder == "" {
		st.ActiveFolder = defaults.Settings.ActiveFolder
	}
	if st.Category == "" {
		st.Category = defaults.Settings.Category
	}
	if st.SortBy == "" {
		st.SortBy = defaults.Settings.SortBy
	}
	if st.ViewMode == "" {
		st.ViewMode = defaults.Settings.ViewMode
	}
	s.doc.Settings = st

	meta := loaded.Metadata
	if meta.CreatedAt == 0 {
		meta.CreatedAt = defaults.Metadata.CreatedAt
	}
	meta.Version = models.SchemaVersion
	s.doc.Metadata = meta

	for i := range s.doc.Prompts {
		if !s.doc.HasFolder(s.doc.Prompts[i].Folder) {
			s.doc.Prompts[i].Folder = models.FolderDefault
		}
	}
}

// Save serializes the document and writes it to the backend. A clean,
// unforced save is a no-op. Write failures are logged, announced via the
// saveError topic, and returned wrapped in ErrPersistence — the in-memory
// document is never touched by a failed save.
//
// Saves are fully serialized: a save that started later always snapshots
// and writes after an earlier one has finished, so the backend never ends
// up holding an older snapshot than the last one written.
func (s *Store) Save(ctx context.Context, force bool) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	if !s.dirty && !force {
		s.mu.Unlock()
		return nil
	}
	s.doc.Metadata.LastModified = models.NowMillis()
	gen := s.gen
	lastModified := s.doc.Metadata.LastModified
	data, err := json.Marshal(s.doc)
	s.mu.Unlock()

	if err != nil {
		// Marshal of a plain struct tree cannot realistically fail, but the
		// contract is that Save never panics.
		slog.Error("document serialization failed", "error", err)
		s.bus.Publish(TopicSaveError, err.Error())
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if err := s.backend.Store(ctx, data); err != nil {
		slog.Error("save failed", "error", err)
		s.bus.Publish(TopicSaveError, err.Error())
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	s.mu.Lock()
	if s.gen == gen {
		s.dirty = false
	}
	s.mu.Unlock()

	s.bus.Publish(TopicSaved, SavedEvent{LastModified: lastModified, Bytes: len(data)})
	return nil
}

// Close flushes a pending dirty save synchronously, then releases timers
// and subscriptions. Safe to call once; further calls are no-ops.
func (s *Store) Close(ctx context.Context) {
	s.timerMu.Lock()
	if s.closed {
		s.timerMu.Unlock()
		return
	}
	s.closed = true
	if s.debounce != nil {
		s.debounce.Stop()
		s.debounce = nil
	}
	if s.ticker != nil {
		s.ticker.Stop()
	}
	if s.done != nil {
		close(s.done)
	}
	s.timerMu.Unlock()

	s.mu.Lock()
	dirty := s.dirty
	s.mu.Unlock()
	if dirty {
		if err := s.Save(ctx, false); err != nil {
			slog.Error("final save on close failed", "error", err)
		}
	}

	s.bus.Reset()
	slog.Info("store closed")
}

// Dirty reports whether the document has unsaved changes.
func (s *Store) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Document returns a deep copy of the current document.
func (s *Store) Document() models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Settings returns the current view-state settings.
func (s *Store) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Settings
}

// SetSettings replaces the view-state settings. Informational only — the
// store persists them but does not enforce them.
func (s *Store) SetSettings(settings models.Settings) {
	s.mu.Lock()
	s.doc.Settings = settings
	s.markDirtyLocked()
	s.mu.Unlock()
	s.scheduleSave()
}

// Folders returns the current folder list.
func (s *Store) Folders() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.doc.Folders...)
}

// markDirtyLocked flags unsaved changes. Callers must hold s.mu and must
// call scheduleSave after releasing it.
func (s *Store) markDirtyLocked() {
	s.dirty = true
	s.gen++
}

// scheduleSave resets the debounced save: a pending save is cancelled and
// rescheduled, so rapid mutations coalesce into one eventual write.
func (s *Store) scheduleSave() {
	s.timerMu.Lock()
	defer s.timerMu.Unlock()
	if s.closed {
		return
	}
	if s.debounce != nil {
		s.debounce.Stop()
	}
	s.debounce = time.AfterFunc(s.saveDebounce, func() {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		// Failure already logged and announced inside Save.
		_ = s.Save(ctx, false)
	})
}

// startAutosave launches the periodic forced-save loop. It saves whenever
// the document is dirty, independent of the debounce timer.
func (s *Store) startAutosave() {
	s.timerMu.Lock()
	defer s.timerMu.Unlock()
	if s.closed || s.ticker != nil {
		return
	}
	s.ticker = time.NewTicker(s.autosaveEvery)
	s.done = make(chan struct{})

	go func(tick <-chan time.Time, done <-chan struct{}) {
		for {
			select {
			case <-tick:
				if s.Dirty() {
					ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
					_ = s.Save(ctx, false)
					cancel()
				}
			case <-done:
				return
			}
		}
	}(s.ticker.C, s.done)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
