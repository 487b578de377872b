package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the export schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS tasks (
			position INTEGER PRIMARY KEY,
			created_at TEXT NOT NULL,
			priority TEXT NOT NULL,
			status TEXT NOT NULL,
			description TEXT NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_tasks_status
		ON tasks(status, priority)
	`)
	return err
}
