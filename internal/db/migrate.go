package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plans (
		id         TEXT PRIMARY KEY,
		short_id   TEXT NOT NULL,
		title      TEXT NOT NULL,
		document   TEXT NOT NULL CHECK(json_valid(document)),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_plans_short_id ON plans(short_id COLLATE NOCASE)`,
	`CREATE INDEX IF NOT EXISTS idx_plans_created ON plans(created_at)`,

	// Track where each plan was imported from
	`ALTER TABLE plans ADD COLUMN source TEXT NOT NULL DEFAULT ''`,
}
