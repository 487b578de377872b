package store

import (
	"errors"
	"fmt"
)

// Validation errors
var (
	ErrEmptyDescription   = errors.New("task description cannot be empty")
	ErrInvalidDescription = errors.New("task description cannot contain '|' or line breaks")
	ErrIndexOutOfRange    = errors.New("task index out of range")
)

// Backup errors
var (
	// ErrNoBackup indicates that restore was requested but no backup file exists
	ErrNoBackup = errors.New("no backup file found")

	// ErrNothingToBackup indicates that the store file does not exist yet
	ErrNothingToBackup = errors.New("no task file to back up")
)

// ValidationError describes the first malformed line found in a task file
type ValidationError struct {
	Path   string
	Line   int
	Reason string
	Text   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s:%d: %s: %q", e.Path, e.Line, e.Reason, e.Text)
}
