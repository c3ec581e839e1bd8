// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations
var embedMigrations embed.FS

// PostgresBackend stores the document blob in a single-row key/value
// table. Heavyweight for one blob, but it gives multi-instance
// deployments a durable shared backend with the same contract as the
// file and Valkey variants.
type PostgresBackend struct {
	db  *sql.DB
	key string
}

// ConnectPostgres opens a PostgreSQL pool using the provided DSN and
// verifies the connection with a ping.
func ConnectPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	slog.Info("postgres connected")
	return db, nil
}

// Migrate runs all pending goose migrations from the embedded SQL files.
// Migrations are embedded at compile time so no external files are needed
// at runtime.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	slog.Info("storage migrations applied")
	return nil
}

// NewPostgresBackend creates a backend over an already-connected,
// migrated database.
func NewPostgresBackend(db *sql.DB) *PostgresBackend {
	return &PostgresBackend{db: db, key: DocumentKey}
}

// Load reads the document blob. Returns (nil, nil) when no row exists.
func (b *PostgresBackend) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := b.db.QueryRowContext(ctx,
		`SELECT value FROM documents WHERE key = $1`, b.key,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres load: %w", err)
	}
	return data, nil
}

// Store upserts the document blob.
func (b *PostgresBackend) Store(ctx context.Context, data []byte) error {
	_, err := b.db.ExecContext(ctx, `
		INSERT INTO documents (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = NOW()
	`, b.key, data)
	if err != nil {
		return fmt.Errorf("postgres store: %w", err)
	}
	return nil
}

// Size returns the stored blob's byte count, zero when absent.
func (b *PostgresBackend) Size(ctx context.Context) (int64, error) {
	var size int64
	err := b.db.QueryRowContext(ctx,
		`SELECT COALESCE(length(value), 0) FROM documents WHERE key = $1`, b.key,
	).Scan(&size)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("postgres size: %w", err)
	}
	return size, nil
}

// Clear removes the stored blob.
func (b *PostgresBackend) Clear(ctx context.Context) error {
	if _, err := b.db.ExecContext(ctx,
		`DELETE FROM documents WHERE key = $1`, b.key,
	); err != nil {
		return fmt.Errorf("postgres clear: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (b *PostgresBackend) Close() error {
	return b.db.Close()
}
