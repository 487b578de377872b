package store

import (
	"context"

	"github.com/thenoetrevino/lista/internal/export"
	"github.com/thenoetrevino/lista/internal/models"
)

// TaskReader defines read operations for tasks.
type TaskReader interface {
	ReadAll() ([]models.Task, error)
	Get(index int) (models.Task, error)
	Search(term string) ([]models.IndexedTask, error)
	Filter(status models.Status) ([]models.IndexedTask, error)
	Statistics() (models.Statistics, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	Add(description string, priority models.Priority) (models.Task, error)
	UpdateStatus(index int, status models.Status) error
	UpdateDescription(index int, text string) error
	UpdatePriority(index int, priority models.Priority) error
	Update(index int, text string, priority models.Priority) error
	Delete(index int) error
	ClearCompleted() (int, error)
	ClearAll() (int, error)
	Reset() error
}

// BackupManager defines whole-file backup operations.
type BackupManager interface {
	Backup() error
	Restore() error
	HasBackup() bool
}

// Exporter writes the task list to another file.
type Exporter interface {
	Export(ctx context.Context, path string, format export.Format) error
}

// TaskStore is the full set of operations the presentation layers use.
type TaskStore interface {
	TaskReader
	TaskWriter
	BackupManager
	Exporter
	Validate() error
	Config() Config
}

var _ TaskStore = (*Store)(nil)
