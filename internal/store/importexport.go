// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"encoding/json"
	"log/slog"

	"promptvault/internal/models"
)

// Export returns a deep copy of the document wrapped with export metadata.
func (s *Store) Export() models.ExportDocument {
	s.mu.Lock()
	snapshot := s.doc.Clone()
	s.mu.Unlock()

	return models.ExportDocument{
		Document:      snapshot,
		ExportedAt:    models.NowMillis(),
		ExportVersion: ExportVersion,
	}
}

// Import parses and structurally validates a serialized document, then
// either replaces the current document wholesale or merges it in. Merge
// mode appends only records whose id is not already present and unions the
// folder sets, so re-importing the same payload is idempotent. Both paths
// force an immediate save and emit dataImported.
//
// Invalid input fails with an *InvalidFormatError carrying the validation
// errors; the current document is left untouched.
func (s *Store) Import(ctx context.Context, data []byte, merge bool) error {
	var incoming models.Document
	if err := json.Unmarshal(data, &incoming); err != nil {
		return &InvalidFormatError{Errors: []string{err.Error()}}
	}
	if result := models.ValidateDocument(incoming); !result.Valid {
		return &InvalidFormatError{Errors: result.Errors}
	}

	var count int
	s.mu.Lock()
	if merge {
		count = s.mergeImportLocked(incoming)
	} else {
		s.mergeLocked(incoming)
		count = len(s.doc.Prompts)
	}
	s.markDirtyLocked()
	s.mu.Unlock()

	if err := s.Save(ctx, true); err != nil {
		// Persistence failures never unwind an import — the document is
		// already applied in memory and the saveError event has fired.
		slog.Warn("post-import save failed", "error", err)
	}

	s.bus.Publish(TopicDataImported, DataImportedEvent{Count: count, Merge: merge})
	return nil
}

// mergeImportLocked appends records with unseen ids and unions folder
// names. Returns the number of records appended. Callers must hold s.mu.
func (s *Store) mergeImportLocked(incoming models.Document) int {
	existing := make(map[string]bool, len(s.doc.Prompts))
	for _, p := range s.doc.Prompts {
		existing[p.ID] = true
	}

	count := 0
	for _, p := range incoming.Prompts {
		if existing[p.ID] {
			continue
		}
		existing[p.ID] = true
		s.doc.Prompts = append(s.doc.Prompts, p.Clone())
		count++
	}

	for _, f := range incoming.Folders {
		if f != "" && !s.doc.HasFolder(f) {
			s.doc.Folders = append(s.doc.Folders, f)
		}
	}

	// Re-establish the folder invariant for appended records.
	for i := range s.doc.Prompts {
		if !s.doc.HasFolder(s.doc.Prompts[i].Folder) {
			s.doc.Prompts[i].Folder = models.FolderDefault
		}
	}
	return count
}

// Clear resets the document to an empty default, preserving the current
// categories and settings snapshot.
func (s *Store) Clear() {
	s.mu.Lock()
	settings := s.doc.Settings
	categories := append([]string(nil), s.doc.Categories...)
	s.doc = models.NewDocument()
	s.doc.Settings = settings
	s.doc.Categories = categories
	s.markDirtyLocked()
	snapshot := s.doc.Clone()
	s.mu.Unlock()

	s.scheduleSave()
	s.bus.Publish(TopicDataCleared, snapshot)
}
