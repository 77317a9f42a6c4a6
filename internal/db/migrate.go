package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies every schema statement. Statements are idempotent so the
// whole list runs on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS preferences (
		id TEXT PRIMARY KEY CHECK (id = 'default'),
		locale TEXT NOT NULL CHECK (locale IN ('ru', 'en')),
		category TEXT NOT NULL DEFAULT 'all'
			CHECK (category IN ('all', 'design', 'development', 'startups', 'other')),
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS recent_projects (
		project_id INTEGER PRIMARY KEY CHECK (project_id > 0),
		title TEXT NOT NULL,
		viewed_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_recent_projects_viewed ON recent_projects(viewed_at)`,
}
