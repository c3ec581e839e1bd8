// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"promptvault/internal/models"
)

// maxImportBytes caps import payloads to keep a bad client from loading
// an arbitrarily large document into memory.
const maxImportBytes = 32 << 20

// GetStats returns analytics over the full record set.
//
// HTTP: GET /api/stats
func (a *API) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.store.Stats(r.Context()))
}

// ExportData returns the full document with export metadata.
//
// HTTP: GET /api/export
func (a *API) ExportData(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Disposition", `attachment; filename="promptvault-export.json"`)
	writeJSON(w, http.StatusOK, a.store.Export())
}

// ImportData replaces or merges a serialized document.
//
// HTTP: POST /api/import?merge=true|false
func (a *API) ImportData(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		badRequest(w, "failed to read request body")
		return
	}

	merge := r.URL.Query().Get("merge") == "true"
	if err := a.store.Import(r.Context(), data, merge); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"imported": true, "merge": merge})
}

// ClearData resets the document to empty defaults.
//
// HTTP: POST /api/clear
func (a *API) ClearData(w http.ResponseWriter, r *http.Request) {
	a.store.Clear()
	w.WriteHeader(http.StatusNoContent)
}

// GetSettings returns the persisted view-state settings.
//
// HTTP: GET /api/settings
func (a *API) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.store.Settings())
}

// UpdateSettings replaces the view-state settings.
//
// HTTP: PUT /api/settings
func (a *API) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	a.store.SetSettings(settings)
	writeJSON(w, http.StatusOK, settings)
}
