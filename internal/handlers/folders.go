// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ListFolders returns the current folder names.
//
// HTTP: GET /api/folders
func (a *API) ListFolders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.store.Folders())
}

// CreateFolder adds a folder. Duplicate names return 409.
//
// HTTP: POST /api/folders
func (a *API) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		badRequest(w, "name is required")
		return
	}

	if !a.store.AddFolder(req.Name) {
		writeJSON(w, http.StatusConflict, ErrorResponse{
			Error: "conflict", Message: "folder already exists",
		})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"name": req.Name})
}

// DeleteFolder removes a non-protected folder, reassigning its members.
//
// HTTP: DELETE /api/folders/{name}
func (a *API) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	if err := a.store.DeleteFolder(chi.URLParam(r, "name")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
