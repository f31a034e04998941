// Package testutil provides the in-memory shop database and entity fixtures
// the repository, service, and CLI tests share.
package testutil

import (
	"database/sql"
	"testing"

	"github.com/izayahhudnut/detailerpro/internal/db"
)

// NewTestDB opens an in-memory shop database with the full schema applied
// and closes it when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW wraps a test database in a UnitOfWork for exercising
// transactional paths (stock usage, snapshot import).
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
