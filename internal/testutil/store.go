package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/thenoetrevino/lista/internal/app"
	"github.com/thenoetrevino/lista/internal/config"
	"github.com/thenoetrevino/lista/internal/models"
)

// FixedTime is the clock value used by test apps
var FixedTime = time.Date(2025, 6, 1, 12, 30, 0, 0, time.Local)

// TestConfig returns a config whose files live in a fresh temp dir
func TestConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.DataFile = filepath.Join(dir, "todos.txt")
	cfg.BackupFile = filepath.Join(dir, "todos_backup.txt")
	return cfg
}

// SetupTestApp creates an App backed by temp files and a fixed clock
func SetupTestApp(t *testing.T) *app.App {
	t.Helper()
	return app.New(TestConfig(t), app.WithClock(func() time.Time { return FixedTime }))
}

// SeedTask is one task to add in SeedTasks
type SeedTask struct {
	Description string
	Priority    models.Priority
	Completed   bool
}

// SeedTasks adds tasks to the app's store in order
func SeedTasks(t *testing.T, a *app.App, tasks ...SeedTask) {
	t.Helper()
	for _, st := range tasks {
		if _, err := a.Store.Add(st.Description, st.Priority); err != nil {
			t.Fatalf("Failed to seed task %q: %v", st.Description, err)
		}
		if !st.Completed {
			continue
		}
		all, err := a.Store.ReadAll()
		if err != nil {
			t.Fatalf("Failed to read seeded tasks: %v", err)
		}
		if err := a.Store.UpdateStatus(len(all)-1, models.StatusCompleted); err != nil {
			t.Fatalf("Failed to complete seeded task %q: %v", st.Description, err)
		}
	}
}

// Tasks returns the app's task list, failing the test on error
func Tasks(t *testing.T, a *app.App) []models.Task {
	t.Helper()
	tasks, err := a.Store.ReadAll()
	if err != nil {
		t.Fatalf("Failed to read tasks: %v", err)
	}
	return tasks
}
