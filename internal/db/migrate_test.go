package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Run migrations a second time; it must be a no-op.
	err := Migrate(db)
	require.NoError(t, err)

	err = Migrate(db)
	require.NoError(t, err)
}

func TestMigrate_CreatesPlansTable(t *testing.T) {
	db := openTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='plans'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "plans", name)

	rows, err := db.Query(`PRAGMA table_info(plans)`)
	require.NoError(t, err)
	defer rows.Close()

	cols := map[string]bool{}
	for rows.Next() {
		var (
			cid     int
			col     string
			typ     string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		require.NoError(t, rows.Scan(&cid, &col, &typ, &notNull, &dflt, &pk))
		cols[col] = true
	}
	require.NoError(t, rows.Err())
	for _, want := range []string{"id", "short_id", "title", "document", "source", "created_at", "updated_at"} {
		assert.True(t, cols[want], "column %s should exist", want)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	for _, idx := range []string{"idx_plans_short_id", "idx_plans_created"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_ShortIDUniqueIgnoresCase(t *testing.T) {
	db := openTestDB(t)

	insert := `INSERT INTO plans (id, short_id, title, document, created_at, updated_at)
		VALUES (?, ?, 'T', '{}', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`
	_, err := db.Exec(insert, "a", "WEB01")
	require.NoError(t, err)

	_, err = db.Exec(insert, "b", "web01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE")
}

func TestMigrate_RejectsInvalidDocument(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO plans (id, short_id, title, document, created_at, updated_at)
		VALUES ('a', 'WEB01', 'T', 'not json', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	require.Error(t, err)
}

func TestOpenDB_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "planview.db")

	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
}
