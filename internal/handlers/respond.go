// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"promptvault/internal/store"
)

// ErrorResponse is the standard error shape returned by every endpoint.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// writeJSON sends a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("failed to encode JSON response", "error", err)
		}
	}
}

// writeError maps a store error to the appropriate HTTP status code.
func writeError(w http.ResponseWriter, err error) {
	var formatErr *store.InvalidFormatError
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{
			Error: "not_found", Message: err.Error(),
		})
	case errors.Is(err, store.ErrProtectedFolder):
		writeJSON(w, http.StatusForbidden, ErrorResponse{
			Error: "protected_resource", Message: err.Error(),
		})
	case errors.As(err, &formatErr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: "invalid_format", Message: "document failed validation",
			Details: formatErr.Errors,
		})
	case errors.Is(err, store.ErrPersistence):
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{
			Error: "persistence_failure", Message: "storage backend unavailable",
		})
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "internal_error", Message: "an internal error occurred",
		})
	}
}

// badRequest reports a malformed request body or parameter.
func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Error: "bad_request", Message: message,
	})
}
