// Package router sets up all HTTP routes and middleware chains for the
// PromptVault server.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"promptvault/internal/handlers"
	"promptvault/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(api *handlers.API) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// Health check.
	r.Get("/health", healthHandler)

	// Store event stream for UI clients.
	r.Get("/events", api.StreamEvents)

	r.Route("/api", func(r chi.Router) {
		r.Route("/prompts", func(r chi.Router) {
			r.Get("/", api.ListPrompts)
			r.Post("/", api.CreatePrompt)
			r.Post("/batch-delete", api.BatchDeletePrompts)
			r.Post("/move", api.MovePrompts)
			r.Get("/{id}", api.GetPrompt)
			r.Put("/{id}", api.UpdatePrompt)
			r.Delete("/{id}", api.DeletePrompt)
			r.Post("/{id}/views", api.IncrementViews)
			r.Put("/{id}/rating", api.UpdateRating)
		})

		r.Route("/folders", func(r chi.Router) {
			r.Get("/", api.ListFolders)
			r.Post("/", api.CreateFolder)
			r.Delete("/{name}", api.DeleteFolder)
		})

		r.Get("/stats", api.GetStats)
		r.Get("/export", api.ExportData)
		r.Post("/import", api.ImportData)
		r.Post("/clear", api.ClearData)
		r.Get("/settings", api.GetSettings)
		r.Put("/settings", api.UpdateSettings)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
