package cli

import (
	"errors"

	"github.com/thenoetrevino/lista/internal/export"
	"github.com/thenoetrevino/lista/internal/models"
	"github.com/thenoetrevino/lista/internal/store"
)

// failure describes how a store error is presented
type failure struct {
	code       string
	exit       int
	suggestion string
}

func classify(err error) failure {
	var validationErr *store.ValidationError
	switch {
	case errors.Is(err, store.ErrIndexOutOfRange):
		return failure{"TASK_NOT_FOUND", ExitNotFound, "Use 'lista list' to see task numbers"}
	case errors.Is(err, store.ErrNoBackup):
		return failure{"NO_BACKUP", ExitNotFound, "Create one with 'lista backup'"}
	case errors.Is(err, store.ErrNothingToBackup):
		return failure{"NOTHING_TO_BACKUP", ExitNotFound, "Add a task first with 'lista add'"}
	case errors.Is(err, store.ErrEmptyDescription),
		errors.Is(err, store.ErrInvalidDescription):
		return failure{"INVALID_DESCRIPTION", ExitValidation, "Descriptions must be non-empty and may not contain '|' or line breaks"}
	case errors.Is(err, models.ErrInvalidPriority):
		return failure{"INVALID_PRIORITY", ExitValidation, "Valid priorities are: high, medium, low"}
	case errors.Is(err, models.ErrInvalidStatus):
		return failure{"INVALID_STATUS", ExitValidation, "Valid statuses are: pending, completed"}
	case errors.Is(err, export.ErrUnknownFormat):
		return failure{"INVALID_FORMAT", ExitValidation, "Valid formats are: txt, csv, json, md, sqlite"}
	case errors.As(err, &validationErr):
		return failure{"INVALID_FILE", ExitDataErr, ""}
	case errors.Is(err, ErrCompletedTask):
		return failure{"TASK_COMPLETED", ExitValidation, "Reopen it first with 'lista undo'"}
	case errors.Is(err, ErrUsage):
		return failure{"USAGE", ExitUsage, ""}
	}
	return failure{"ERROR", ExitError, ""}
}

// Fail reports err through the formatter and returns an error carrying
// the matching exit code
func (f *OutputFormatter) Fail(err error) error {
	fl := classify(err)
	if fmtErr := f.ErrorWithSuggestion(fl.code, err.Error(), fl.suggestion); fmtErr != nil {
		return Exit(fl.exit, errors.Join(err, fmtErr))
	}
	return Exit(fl.exit, err)
}
