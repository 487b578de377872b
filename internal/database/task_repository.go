package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/thenoetrevino/lista/internal/models"
)

// WriteTasks replaces any database at path with a fresh one holding tasks.
// Positions are 1-based, matching the numbering shown by the CLI.
// The database is built next to path and renamed over it after commit,
// so a failed export leaves the previous file in place.
func WriteTasks(ctx context.Context, path string, tasks []models.Task) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp database: %w", err)
	}
	tmpName := tmp.Name()
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to create temp database: %w", err)
	}
	defer func() {
		if err != nil {
			if rmErr := removeDatabase(tmpName); rmErr != nil {
				slog.Error("failed to remove temp database", "path", tmpName, "error", rmErr)
			}
		}
	}()

	if err := insertTasks(ctx, tmpName, tasks); err != nil {
		return err
	}

	if err := removeSideFiles(path); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// insertTasks writes tasks into a new database at path in one transaction
func insertTasks(ctx context.Context, path string, tasks []models.Task) error {
	db, err := Open(ctx, path)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing db", "error", err)
		}
	}()

	return withTx(ctx, db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO tasks (position, created_at, priority, status, description)
			VALUES (?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for i, t := range tasks {
			_, err := stmt.ExecContext(ctx, i+1, t.Timestamp, string(t.Priority), string(t.Status), t.Description)
			if err != nil {
				return fmt.Errorf("failed to insert task %d: %w", i+1, err)
			}
		}
		return nil
	})
}

// ReadTasks loads tasks from a database written by WriteTasks, ordered by position
func ReadTasks(ctx context.Context, path string) ([]models.Task, error) {
	db, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing db", "error", err)
		}
	}()

	rows, err := db.QueryContext(ctx, `
		SELECT created_at, priority, status, description
		FROM tasks
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var t models.Task
		var priority, status string
		if err := rows.Scan(&t.Timestamp, &priority, &status, &t.Description); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		t.Priority = models.Priority(priority)
		t.Status = models.Status(status)
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
