// Package sqlite_test contains integration tests for SQLite repositories.
//
// All test setup goes through setupTestDB(), which loads the authoritative
// schema via db.GetSchemaSQL(). Do not hardcode CREATE TABLE statements in
// test files; use the seed* helpers instead.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/tally/internal/db"
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

// seedUser inserts a test user and returns its ID.
func seedUser(t *testing.T, db *sql.DB, id, role, managerID string) string {
	t.Helper()
	if id == "" {
		id = "USER-001"
	}
	if role == "" {
		role = "employee"
	}
	var manager any
	if managerID != "" {
		manager = managerID
	}
	_, err := db.Exec(
		"INSERT INTO users (id, username, full_name, password_hash, role, manager_id) VALUES (?, ?, ?, 'x', ?, ?)",
		id, "user-"+id, "Test User "+id, role, manager,
	)
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return id
}

// seedPeriod inserts a test period and returns its ID.
func seedPeriod(t *testing.T, db *sql.DB, id string, open bool) string {
	t.Helper()
	if id == "" {
		id = "PER-2024-06"
	}
	openVal := 0
	if open {
		openVal = 1
	}
	_, err := db.Exec(
		"INSERT INTO periods (id, start_date, end_date, open) VALUES (?, '2024-06-01', '2024-06-30', ?)",
		id, openVal,
	)
	if err != nil {
		t.Fatalf("failed to seed period: %v", err)
	}
	return id
}

// seedEntry inserts a test entry with the given status and returns its ID.
func seedEntry(t *testing.T, db *sql.DB, id, ownerID, periodID, date, status string, quantity float64) string {
	t.Helper()
	if id == "" {
		id = "ENTRY-0001"
	}
	if date == "" {
		date = "2024-06-03"
	}
	if status == "" {
		status = "draft"
	}
	_, err := db.Exec(
		"INSERT INTO entries (id, owner_id, period_id, task, date, quantity, status) VALUES (?, ?, ?, 'Montage', ?, ?, ?)",
		id, ownerID, periodID, date, quantity, status,
	)
	if err != nil {
		t.Fatalf("failed to seed entry: %v", err)
	}
	return id
}
