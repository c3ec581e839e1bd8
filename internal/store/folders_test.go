// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"testing"

	"promptvault/internal/models"
)

func TestAddFolder(t *testing.T) {
	s, _ := newTestStore(t)

	if !s.AddFolder("projects") {
		t.Fatal("AddFolder should accept a new name")
	}
	if s.AddFolder("projects") {
		t.Error("duplicate folder must be rejected")
	}
	if s.AddFolder("   ") {
		t.Error("blank folder must be rejected")
	}
	if !s.Document().HasFolder("projects") {
		t.Error("folder missing from document")
	}
}

func TestDeleteFolderProtected(t *testing.T) {
	s, _ := newTestStore(t)

	for _, name := range models.ProtectedFolders {
		if err := s.DeleteFolder(name); !errors.Is(err, ErrProtectedFolder) {
			t.Errorf("DeleteFolder(%q): got %v, want ErrProtectedFolder", name, err)
		}
	}
	// All four survive.
	doc := s.Document()
	for _, name := range models.ProtectedFolders {
		if !doc.HasFolder(name) {
			t.Errorf("protected folder %q was removed", name)
		}
	}
}

func TestDeleteFolderUnknown(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.DeleteFolder("ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestDeleteFolderReassignsMembers(t *testing.T) {
	s, _ := newTestStore(t)

	s.AddFolder("doomed")
	a, _ := s.AddPrompt("member one", "answer", AddOptions{Folder: "doomed"})
	b, _ := s.AddPrompt("member two", "answer", AddOptions{Folder: "doomed"})
	outside, _ := s.AddPrompt("outsider", "answer", AddOptions{})

	if err := s.DeleteFolder("doomed"); err != nil {
		t.Fatalf("DeleteFolder: %v", err)
	}

	for _, id := range []string{a.ID, b.ID} {
		p, ok := s.GetPrompt(id)
		if !ok {
			t.Fatalf("record %q vanished", id)
		}
		if p.Folder != models.FolderDefault {
			t.Errorf("record %q: folder %q, want %q", id, p.Folder, models.FolderDefault)
		}
		if p.UpdatedAt < a.UpdatedAt {
			t.Errorf("record %q: updatedAt not refreshed", id)
		}
	}

	// Records elsewhere are untouched.
	p, _ := s.GetPrompt(outside.ID)
	if p.Folder != outside.Folder {
		t.Errorf("outsider moved to %q", p.Folder)
	}
	if s.Document().HasFolder("doomed") {
		t.Error("deleted folder still present")
	}
}

func TestMoveToFolder(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddFolder("target")

	a, _ := s.AddPrompt("first", "answer", AddOptions{})
	b, _ := s.AddPrompt("second", "answer", AddOptions{})

	moved, err := s.MoveToFolder([]string{a.ID, "missing", b.ID}, "target")
	if err != nil {
		t.Fatalf("MoveToFolder: %v", err)
	}
	if len(moved) != 2 {
		t.Fatalf("moved %d records, want 2", len(moved))
	}
	for _, id := range []string{a.ID, b.ID} {
		p, _ := s.GetPrompt(id)
		if p.Folder != "target" {
			t.Errorf("record %q: folder %q, want target", id, p.Folder)
		}
	}
}

func TestMoveToFolderUnknownTarget(t *testing.T) {
	s, _ := newTestStore(t)
	p, _ := s.AddPrompt("stays put", "answer", AddOptions{})

	if _, err := s.MoveToFolder([]string{p.ID}, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
	got, _ := s.GetPrompt(p.ID)
	if got.Folder != p.Folder {
		t.Error("record must not move when the target folder is unknown")
	}
}
