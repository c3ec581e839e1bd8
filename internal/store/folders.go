// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"fmt"
	"strings"

	"promptvault/internal/models"
)

// AddFolder appends a folder name. Returns false without side effects when
// the name is empty or already present.
func (s *Store) AddFolder(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}

	s.mu.Lock()
	if s.doc.HasFolder(name) {
		s.mu.Unlock()
		return false
	}
	s.doc.Folders = append(s.doc.Folders, name)
	s.markDirtyLocked()
	s.mu.Unlock()

	s.scheduleSave()
	s.bus.Publish(TopicFolderAdded, name)
	return true
}

// DeleteFolder removes a non-protected folder, reassigning its member
// records to the default folder first. Protected folders fail with
// ErrProtectedFolder; unknown folders with ErrNotFound.
func (s *Store) DeleteFolder(name string) error {
	if models.IsProtectedFolder(name) {
		return fmt.Errorf("folder %q: %w", name, ErrProtectedFolder)
	}

	s.mu.Lock()
	if !s.doc.HasFolder(name) {
		s.mu.Unlock()
		return fmt.Errorf("folder %q: %w", name, ErrNotFound)
	}

	reassigned := 0
	now := models.NowMillis()
	for i := range s.doc.Prompts {
		if s.doc.Prompts[i].Folder == name {
			s.doc.Prompts[i].Folder = models.FolderDefault
			s.doc.Prompts[i].UpdatedAt = now
			reassigned++
		}
	}

	folders := s.doc.Folders[:0]
	for _, f := range s.doc.Folders {
		if f != name {
			folders = append(folders, f)
		}
	}
	s.doc.Folders = folders
	s.markDirtyLocked()
	s.mu.Unlock()

	s.scheduleSave()
	s.bus.Publish(TopicFolderDeleted, FolderDeletedEvent{Folder: name, Reassigned: reassigned})
	return nil
}

// MoveToFolder moves every existing id into the target folder, refreshing
// updatedAt, and returns the records actually moved. The promptsMoved
// event fires only when at least one move occurred. An unknown target
// folder fails with ErrNotFound.
func (s *Store) MoveToFolder(ids []string, folder string) ([]models.Prompt, error) {
	s.mu.Lock()
	if !s.doc.HasFolder(folder) {
		s.mu.Unlock()
		return nil, fmt.Errorf("folder %q: %w", folder, ErrNotFound)
	}

	moved := make([]models.Prompt, 0, len(ids))
	now := models.NowMillis()
	for _, id := range ids {
		idx := s.indexLocked(id)
		if idx < 0 {
			continue
		}
		s.doc.Prompts[idx].Folder = folder
		s.doc.Prompts[idx].UpdatedAt = now
		moved = append(moved, s.doc.Prompts[idx].Clone())
	}
	if len(moved) > 0 {
		s.markDirtyLocked()
	}
	s.mu.Unlock()

	if len(moved) > 0 {
		s.scheduleSave()
		s.bus.Publish(TopicPromptsMoved, PromptsMovedEvent{Prompts: moved, Folder: folder})
	}
	return moved, nil
}
