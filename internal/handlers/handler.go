// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers exposes every store operation as a JSON API plus an
// SSE stream of store events. Handlers stay thin: decode, call the store,
// map errors to status codes.
package handlers

import (
	"promptvault/internal/events"
	"promptvault/internal/store"
)

// API groups the HTTP handlers and their dependencies.
type API struct {
	store *store.Store
	bus   *events.Bus
}

// New creates the handler group.
func New(s *store.Store, bus *events.Bus) *API {
	return &API{store: s, bus: bus}
}
