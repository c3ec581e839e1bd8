// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"promptvault/internal/store"
)

// ListPrompts runs a query composed from URL parameters.
//
// HTTP: GET /api/prompts?folder=&category=&search=&minRating=&start=&end=&sortBy=
func (a *API) ListPrompts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := store.QueryFilter{
		Folder:   q.Get("folder"),
		Category: q.Get("category"),
		Search:   q.Get("search"),
		SortBy:   q.Get("sortBy"),
	}
	if v := q.Get("minRating"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			badRequest(w, "minRating must be an integer")
			return
		}
		filter.MinRating = n
	}
	if q.Get("start") != "" || q.Get("end") != "" {
		start, err1 := parseMillis(q.Get("start"), 0)
		end, err2 := parseMillis(q.Get("end"), int64(1)<<62)
		if err1 != nil || err2 != nil {
			badRequest(w, "start and end must be millisecond timestamps")
			return
		}
		filter.DateRange = &store.DateRange{Start: start, End: end}
	}

	writeJSON(w, http.StatusOK, a.store.Query(filter))
}

// createPromptRequest is the body for CreatePrompt.
type createPromptRequest struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Folder   string   `json:"folder"`
	Rating   int      `json:"rating"`
	Score    int      `json:"score"`
}

// CreatePrompt adds a record, deriving category, tags and answer when the
// caller leaves them empty.
//
// HTTP: POST /api/prompts
func (a *API) CreatePrompt(w http.ResponseWriter, r *http.Request) {
	var req createPromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if req.Question == "" {
		badRequest(w, "question is required")
		return
	}

	p, err := a.store.AddPrompt(req.Question, req.Answer, store.AddOptions{
		Category: req.Category,
		Tags:     req.Tags,
		Folder:   req.Folder,
		Rating:   req.Rating,
		Score:    req.Score,
	})
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// GetPrompt returns a single record.
//
// HTTP: GET /api/prompts/{id}
func (a *API) GetPrompt(w http.ResponseWriter, r *http.Request) {
	p, ok := a.store.GetPrompt(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, ErrorResponse{
			Error: "not_found", Message: "prompt not found",
		})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// UpdatePrompt shallow-merges a patch onto a record.
//
// HTTP: PUT /api/prompts/{id}
func (a *API) UpdatePrompt(w http.ResponseWriter, r *http.Request) {
	var patch store.PromptUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	p, err := a.store.UpdatePrompt(chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DeletePrompt removes a record.
//
// HTTP: DELETE /api/prompts/{id}
func (a *API) DeletePrompt(w http.ResponseWriter, r *http.Request) {
	p, err := a.store.DeletePrompt(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// BatchDeletePrompts removes several records, skipping missing ids.
//
// HTTP: POST /api/prompts/batch-delete
func (a *API) BatchDeletePrompts(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.IDs) == 0 {
		badRequest(w, "ids is required")
		return
	}
	writeJSON(w, http.StatusOK, a.store.BatchDelete(req.IDs))
}

// IncrementViews bumps a record's view counter. Missing ids are a silent
// no-op per the store contract, so this always returns 204.
//
// HTTP: POST /api/prompts/{id}/views
func (a *API) IncrementViews(w http.ResponseWriter, r *http.Request) {
	a.store.IncrementViews(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// UpdateRating sets a record's rating (clamped).
//
// HTTP: PUT /api/prompts/{id}/rating
func (a *API) UpdateRating(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Rating int `json:"rating"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	a.store.UpdateRating(chi.URLParam(r, "id"), req.Rating)
	w.WriteHeader(http.StatusNoContent)
}

// MovePrompts moves records into a folder.
//
// HTTP: POST /api/prompts/move
func (a *API) MovePrompts(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs    []string `json:"ids"`
		Folder string   `json:"folder"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.IDs) == 0 || req.Folder == "" {
		badRequest(w, "ids and folder are required")
		return
	}

	moved, err := a.store.MoveToFolder(req.IDs, req.Folder)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, moved)
}

// parseMillis parses a millisecond timestamp parameter, using the fallback
// when the parameter is empty.
func parseMillis(v string, fallback int64) (int64, error) {
	if v == "" {
		return fallback, nil
	}
	return strconv.ParseInt(v, 10, 64)
}
