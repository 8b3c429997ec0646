package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// catalogPragmas run on every open, before migrations. WAL lets
// `planview serve` read while `plan import` writes.
var catalogPragmas = []struct{ stmt, what string }{
	{"PRAGMA journal_mode = WAL", "setting WAL mode"},
	{"PRAGMA foreign_keys = ON", "enabling foreign keys"},
}

// OpenDB opens the plan catalog at path and migrates it. Missing parent
// directories are created.
func OpenDB(path string) (*sql.DB, error) {
	memory := path == MemoryPath
	if !memory {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if memory {
		// Each connection to ":memory:" is its own database.
		db.SetMaxOpenConns(1)
	}

	if err := prepare(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func prepare(db *sql.DB) error {
	for _, p := range catalogPragmas {
		if _, err := db.Exec(p.stmt); err != nil {
			return fmt.Errorf("%s: %w", p.what, err)
		}
	}
	if err := Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}
