package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/planview/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewTestDB returns a migrated in-memory plan catalog that is closed when
// the test ends.
func NewTestDB(t testing.TB) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err, "opening in-memory catalog")
	t.Cleanup(func() {
		assert.NoError(t, database.Close())
	})
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
