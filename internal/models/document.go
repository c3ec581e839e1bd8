// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "encoding/json"

// SchemaVersion identifies the persisted document layout.
const SchemaVersion = "1.0"

// Protected folder names. These always exist and can never be deleted.
const (
	FolderAll       = "all"
	FolderFavorites = "favorites"
	FolderArchive   = "archive"
	FolderDefault   = "default"
)

// ProtectedFolders lists the system folders in their canonical order.
var ProtectedFolders = []string{FolderAll, FolderFavorites, FolderArchive, FolderDefault}

// Categories is the fixed set of allowed prompt categories. Record
// operations never mutate this list.
var Categories = []string{
	"general",
	"coding",
	"writing",
	"marketing",
	"business",
	"creative",
	"education",
}

// CategoryGeneral is the fallback when keyword matching finds nothing.
const CategoryGeneral = "general"

// Settings is the UI-facing view state carried inside the document.
// It is informational only — the store persists it but does not enforce it.
type Settings struct {
	ActiveFolder string `json:"activeFolder"`
	Category     string `json:"category"`
	SortBy       string `json:"sortBy"`
	SearchTerm   string `json:"searchTerm"`
	ViewMode     string `json:"viewMode"`
}

// Metadata tracks document provenance.
type Metadata struct {
	Version      string `json:"version"`
	CreatedAt    int64  `json:"createdAt"`
	LastModified int64  `json:"lastModified"`
}

// Document is the entire persisted state: all prompts plus folders,
// categories, settings and metadata. Prompts are kept newest-first;
// new records are prepended.
//
// The serialized key for the record list is "qas" for compatibility with
// exports from earlier versions; "records" is accepted as an alias when
// parsing.
type Document struct {
	Prompts    []Prompt `json:"qas"`
	Folders    []string `json:"folders"`
	Categories []string `json:"categories"`
	Settings   Settings `json:"settings"`
	Metadata   Metadata `json:"metadata"`
}

// ExportDocument wraps a document snapshot with export metadata.
type ExportDocument struct {
	Document
	ExportedAt    int64  `json:"exportedAt"`
	ExportVersion string `json:"exportVersion"`
}

// NewDocument returns a document with defaults: protected folders, the
// fixed category list, empty record set, and fresh metadata.
func NewDocument() Document {
	now := NowMillis()
	return Document{
		Prompts:    []Prompt{},
		Folders:    append([]string(nil), ProtectedFolders...),
		Categories: append([]string(nil), Categories...),
		Settings: Settings{
			ActiveFolder: FolderAll,
			Category:     FolderAll,
			SortBy:       "newest",
			ViewMode:     "grid",
		},
		Metadata: Metadata{
			Version:      SchemaVersion,
			CreatedAt:    now,
			LastModified: now,
		},
	}
}

// UnmarshalJSON accepts both the current "qas" key and the legacy
// "records" key for the prompt list.
func (d *Document) UnmarshalJSON(data []byte) error {
	type plain Document
	aux := struct {
		*plain
		Records []Prompt `json:"records"`
	}{plain: (*plain)(d)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(d.Prompts) == 0 && len(aux.Records) > 0 {
		d.Prompts = aux.Records
	}
	return nil
}

// Clone returns a deep copy of the document. Queries and exports operate
// on copies so the underlying document order is never disturbed.
func (d Document) Clone() Document {
	c := d
	c.Prompts = make([]Prompt, len(d.Prompts))
	for i, p := range d.Prompts {
		c.Prompts[i] = p.Clone()
	}
	c.Folders = append([]string(nil), d.Folders...)
	c.Categories = append([]string(nil), d.Categories...)
	return c
}

// HasFolder reports whether name is present in the folder list.
func (d Document) HasFolder(name string) bool {
	for _, f := range d.Folders {
		if f == name {
			return true
		}
	}
	return false
}

// IsProtectedFolder reports whether name is one of the system folders.
func IsProtectedFolder(name string) bool {
	for _, f := range ProtectedFolders {
		if f == name {
			return true
		}
	}
	return false
}
