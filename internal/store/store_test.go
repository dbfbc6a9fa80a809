// store_test.go holds the database helpers shared by the store integration
// tests. Every test skips when PostgreSQL is unreachable.
package store

import (
	"database/sql"
	"os"
	"testing"

	"flexiui/internal/database"
)

// testDB connects with the POSTGRES_* variables, applies migrations and
// closes the pool when the test ends.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	env := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}
	dsn := "postgres://" + env("POSTGRES_USER", "flexiui") + ":" + env("POSTGRES_PASSWORD", "changeme") +
		"@" + env("POSTGRES_HOST", "localhost") + ":" + env("POSTGRES_PORT", "5432") +
		"/" + env("POSTGRES_DB", "flexiui") + "?sslmode=disable"

	db, err := database.Connect(dsn)
	if err != nil {
		t.Skipf("skipping integration test: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// cleanProjects deletes projects by name; register it with t.Cleanup.
func cleanProjects(t *testing.T, db *sql.DB, names ...string) {
	t.Helper()
	for _, name := range names {
		if _, err := db.Exec("DELETE FROM projects WHERE name = $1", name); err != nil {
			t.Logf("clean project %q: %v", name, err)
		}
	}
}

// cleanLogs deletes generation logs by prompt; register it with t.Cleanup.
func cleanLogs(t *testing.T, db *sql.DB, prompts ...string) {
	t.Helper()
	for _, prompt := range prompts {
		if _, err := db.Exec("DELETE FROM generation_logs WHERE prompt = $1", prompt); err != nil {
			t.Logf("clean log %q: %v", prompt, err)
		}
	}
}
