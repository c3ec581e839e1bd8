// postgres_test.go provides integration tests for the PostgreSQL backend.
// Tests are skipped if PostgreSQL is not available.
package storage

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/pressly/goose/v3"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "promptvault")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "promptvault")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := ConnectPostgres(testDSN())
	if err != nil {
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

func TestPostgresBackendRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	b := NewPostgresBackend(db)
	t.Cleanup(func() { b.Clear(ctx) })

	if err := b.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	if data, err := b.Load(ctx); err != nil || data != nil {
		t.Fatalf("Load on empty table: got (%v, %v), want (nil, nil)", data, err)
	}
	if size, _ := b.Size(ctx); size != 0 {
		t.Errorf("Size on empty table: got %d, want 0", size)
	}

	blob := []byte(`{"qas":[]}`)
	if err := b.Store(ctx, blob); err != nil {
		t.Fatalf("Store: %v", err)
	}

	got, err := b.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != string(blob) {
		t.Errorf("Load: got %q, want %q", got, blob)
	}
	if size, _ := b.Size(ctx); size != int64(len(blob)) {
		t.Errorf("Size: got %d, want %d", size, len(blob))
	}

	// Upsert path.
	if err := b.Store(ctx, []byte("second")); err != nil {
		t.Fatalf("Store upsert: %v", err)
	}
	got, _ = b.Load(ctx)
	if string(got) != "second" {
		t.Errorf("Load after upsert: got %q", got)
	}
}
