package db

import (
	"database/sql"
	"path/filepath"
	"testing"
)

// CreateTestDB opens a migrated database in a temporary directory.
func CreateTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenSqlite(filepath.Join(t.TempDir(), "reminders.db"))
	if err != nil {
		t.Fatalf("could not create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}
