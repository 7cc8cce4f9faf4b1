// Package sqlite_test contains integration tests for SQLite repositories.
//
// All test setup uses db.GetSchemaSQL() so tests run against the
// authoritative schema; do not hardcode CREATE TABLE statements here.
package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/trolleypm/internal/adapters/sqlite"
	"github.com/example/trolleypm/internal/db"
	"github.com/example/trolleypm/internal/ports/secondary"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedEvent inserts a maintenance event and returns it.
func seedEvent(t *testing.T, repo *sqlite.MaintenanceRepository, trolleyID, pmDate, nextDue, failureType string) *secondary.MaintenanceRecord {
	t.Helper()

	rec := &secondary.MaintenanceRecord{
		TrolleyID:   trolleyID,
		PMDate:      pmDate,
		NextDue:     nextDue,
		FailureType: failureType,
	}
	if err := repo.Create(context.Background(), rec); err != nil {
		t.Fatalf("failed to seed maintenance event: %v", err)
	}
	return rec
}
