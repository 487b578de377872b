// Package store persists tasks in a line-oriented flat file.
//
// Every mutation reads the whole file, changes the in-memory list and
// rewrites the file. Records have no identifier other than their position,
// so an index is only meaningful against the list it was read from.
package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/thenoetrevino/lista/internal/models"
)

// maxLineSize bounds a single record when scanning the store file
const maxLineSize = 1 << 20

// Config locates the files a Store works on
type Config struct {
	// DataFile is the store file holding all records
	DataFile string
	// BackupFile receives full copies of DataFile on Backup
	BackupFile string
	// AutoBackup copies DataFile to BackupFile before every rewrite
	AutoBackup bool
}

// Option is a functional option for configuring a Store
type Option func(*Store)

// WithLogger sets the logger used for mutation and failure logging
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithClock overrides the time source used for new record timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Store is a flat-file task store
type Store struct {
	cfg    Config
	logger *slog.Logger
	now    func() time.Time
}

// New creates a store for the given files. No file is touched until the
// first operation.
func New(cfg Config, opts ...Option) *Store {
	s := &Store{
		cfg:    cfg,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the configuration the store was created with
func (s *Store) Config() Config {
	return s.cfg
}

// ============================================================================
// READ OPERATIONS
// ============================================================================

// ReadAll returns every record in file order.
// A missing file yields an empty list. Lines that do not have exactly four
// fields are skipped.
func (s *Store) ReadAll() ([]models.Task, error) {
	f, err := os.Open(s.cfg.DataFile)
	if errors.Is(err, os.ErrNotExist) {
		return []models.Task{}, nil
	}
	if err != nil {
		s.logger.Error("failed to open task file", "path", s.cfg.DataFile, "error", err)
		return nil, fmt.Errorf("failed to open task file: %w", err)
	}
	defer f.Close()

	tasks := []models.Task{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		task, ok := parseLine(line)
		if !ok {
			s.logger.Debug("skipping malformed line", "path", s.cfg.DataFile, "line", line)
			continue
		}
		tasks = append(tasks, task)
	}
	if err := scanner.Err(); err != nil {
		s.logger.Error("failed to read task file", "path", s.cfg.DataFile, "error", err)
		return nil, fmt.Errorf("failed to read task file: %w", err)
	}
	return tasks, nil
}

// Get returns the record at index
func (s *Store) Get(index int) (models.Task, error) {
	tasks, err := s.ReadAll()
	if err != nil {
		return models.Task{}, err
	}
	if index < 0 || index >= len(tasks) {
		return models.Task{}, fmt.Errorf("%w: %d (have %d tasks)", ErrIndexOutOfRange, index, len(tasks))
	}
	return tasks[index], nil
}

// ============================================================================
// WRITE OPERATIONS
// ============================================================================

// Add appends a new pending task and returns it
func (s *Store) Add(description string, priority models.Priority) (models.Task, error) {
	description, err := cleanDescription(description)
	if err != nil {
		return models.Task{}, err
	}
	if priority == "" {
		priority = models.DefaultPriority
	}
	if !priority.Valid() {
		return models.Task{}, fmt.Errorf("%w '%s'", models.ErrInvalidPriority, priority)
	}

	task := models.Task{
		Timestamp:   s.now().Format(models.TimestampLayout),
		Priority:    priority,
		Status:      models.StatusPending,
		Description: description,
	}

	if err := ensureDir(s.cfg.DataFile); err != nil {
		return models.Task{}, err
	}
	line := formatLine(task)
	unterminated, err := endsWithoutNewline(s.cfg.DataFile)
	if err != nil {
		s.logger.Error("failed to inspect task file", "path", s.cfg.DataFile, "error", err)
		return models.Task{}, fmt.Errorf("failed to add task: %w", err)
	}
	if unterminated {
		line = "\n" + line
	}

	f, err := os.OpenFile(s.cfg.DataFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		s.logger.Error("failed to open task file for append", "path", s.cfg.DataFile, "error", err)
		return models.Task{}, fmt.Errorf("failed to add task: %w", err)
	}
	if _, err := f.WriteString(line); err != nil {
		_ = f.Close()
		s.logger.Error("failed to append task", "path", s.cfg.DataFile, "error", err)
		return models.Task{}, fmt.Errorf("failed to add task: %w", err)
	}
	if err := f.Close(); err != nil {
		return models.Task{}, fmt.Errorf("failed to add task: %w", err)
	}

	s.logger.Debug("task added", "priority", task.Priority, "description", task.Description)
	return task, nil
}

// UpdateStatus sets the status of the record at index
func (s *Store) UpdateStatus(index int, status models.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w '%s'", models.ErrInvalidStatus, status)
	}
	return s.mutateAt(index, func(t *models.Task) {
		t.Status = status
	})
}

// UpdateDescription replaces the description of the record at index
func (s *Store) UpdateDescription(index int, text string) error {
	text, err := cleanDescription(text)
	if err != nil {
		return err
	}
	return s.mutateAt(index, func(t *models.Task) {
		t.Description = text
	})
}

// UpdatePriority sets the priority of the record at index
func (s *Store) UpdatePriority(index int, priority models.Priority) error {
	if !priority.Valid() {
		return fmt.Errorf("%w '%s'", models.ErrInvalidPriority, priority)
	}
	return s.mutateAt(index, func(t *models.Task) {
		t.Priority = priority
	})
}

// Update replaces the description and priority of the record at index
// in a single rewrite
func (s *Store) Update(index int, text string, priority models.Priority) error {
	text, err := cleanDescription(text)
	if err != nil {
		return err
	}
	if !priority.Valid() {
		return fmt.Errorf("%w '%s'", models.ErrInvalidPriority, priority)
	}
	return s.mutateAt(index, func(t *models.Task) {
		t.Description = text
		t.Priority = priority
	})
}

// Delete removes the record at index
func (s *Store) Delete(index int) error {
	tasks, err := s.ReadAll()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(tasks) {
		return fmt.Errorf("%w: %d (have %d tasks)", ErrIndexOutOfRange, index, len(tasks))
	}
	tasks = append(tasks[:index], tasks[index+1:]...)
	if err := s.writeAll(tasks); err != nil {
		return err
	}
	s.logger.Debug("task deleted", "index", index)
	return nil
}

// ClearCompleted removes every completed record and returns how many were removed
func (s *Store) ClearCompleted() (int, error) {
	tasks, err := s.ReadAll()
	if err != nil {
		return 0, err
	}
	kept := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.IsCompleted() {
			kept = append(kept, t)
		}
	}
	if err := s.writeAll(kept); err != nil {
		return 0, err
	}
	removed := len(tasks) - len(kept)
	s.logger.Debug("completed tasks cleared", "removed", removed)
	return removed, nil
}

// ClearAll removes every record, leaving an empty store file
func (s *Store) ClearAll() (int, error) {
	tasks, err := s.ReadAll()
	if err != nil {
		return 0, err
	}
	if err := s.writeAll(nil); err != nil {
		return 0, err
	}
	s.logger.Debug("all tasks cleared", "removed", len(tasks))
	return len(tasks), nil
}

// Reset deletes the store file. A missing file is not an error.
func (s *Store) Reset() error {
	err := os.Remove(s.cfg.DataFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Error("failed to remove task file", "path", s.cfg.DataFile, "error", err)
		return fmt.Errorf("failed to reset task file: %w", err)
	}
	s.logger.Debug("task file reset", "path", s.cfg.DataFile)
	return nil
}

// mutateAt re-reads the list, applies fn to the record at index and rewrites the file
func (s *Store) mutateAt(index int, fn func(*models.Task)) error {
	tasks, err := s.ReadAll()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(tasks) {
		return fmt.Errorf("%w: %d (have %d tasks)", ErrIndexOutOfRange, index, len(tasks))
	}
	fn(&tasks[index])
	if err := s.writeAll(tasks); err != nil {
		return err
	}
	s.logger.Debug("task updated", "index", index, "status", tasks[index].Status, "priority", tasks[index].Priority)
	return nil
}

// writeAll replaces the store file with tasks
func (s *Store) writeAll(tasks []models.Task) error {
	if s.cfg.AutoBackup {
		if err := s.Backup(); err != nil && !errors.Is(err, ErrNothingToBackup) {
			s.logger.Error("automatic backup failed", "error", err)
		}
	}

	var b strings.Builder
	for _, t := range tasks {
		b.WriteString(formatLine(t))
	}
	if err := writeFileAtomic(s.cfg.DataFile, []byte(b.String())); err != nil {
		s.logger.Error("failed to write task file", "path", s.cfg.DataFile, "error", err)
		return fmt.Errorf("failed to write task file: %w", err)
	}
	return nil
}

// ensureDir creates the parent directory of path if needed
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}
