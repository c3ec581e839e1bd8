// Package main is the entry point for the PromptVault server.
// It loads configuration, connects the storage backend, initializes the
// store, sets up routing, and starts the HTTP server with graceful
// shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"promptvault/internal/config"
	"promptvault/internal/events"
	"promptvault/internal/handlers"
	"promptvault/internal/router"
	"promptvault/internal/storage"
	"promptvault/internal/store"
)

func main() {
	// Structured logger — text output, debug level everywhere for now.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"backend", cfg.Backend,
	)

	// Connect the persistence backend.
	backend, err := connectBackend(cfg)
	if err != nil {
		slog.Error("failed to connect storage backend", "error", err)
		os.Exit(1)
	}
	defer backend.Close()

	// Initialize the event bus and the store. Initialize never fails —
	// unreadable or invalid persisted data falls back to seeded defaults.
	bus := events.NewBus()
	vault := store.New(backend, bus, store.Config{
		SaveDebounce:  cfg.SaveDebounce,
		AutosaveEvery: cfg.AutosaveEvery,
	})
	vault.Initialize(context.Background())

	// Set up the Chi router with all middleware and routes.
	api := handlers.New(vault, bus)
	r := router.New(api)

	// Create the HTTP server with sensible timeouts. No WriteTimeout:
	// /events holds a streaming response open indefinitely.
	srv := &http.Server{
		Addr:        cfg.Addr(),
		Handler:     r,
		ReadTimeout: 5 * time.Second,
		IdleTimeout: 120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	// Flush a pending dirty save before releasing the backend.
	vault.Close(ctx)

	slog.Info("server stopped gracefully")
}

// connectBackend builds the configured storage backend.
func connectBackend(cfg *config.Config) (storage.Backend, error) {
	switch cfg.Backend {
	case "postgres":
		db, err := storage.ConnectPostgres(cfg.DSN())
		if err != nil {
			return nil, err
		}
		if err := storage.Migrate(db); err != nil {
			db.Close()
			return nil, err
		}
		return storage.NewPostgresBackend(db), nil

	case "valkey":
		client, err := storage.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			return nil, err
		}
		return storage.NewValkeyBackend(client), nil

	case "memory":
		slog.Warn("memory backend configured — data will not survive restarts")
		return storage.NewMemoryBackend(), nil

	default:
		return storage.NewFileBackend(cfg.DataFile)
	}
}
