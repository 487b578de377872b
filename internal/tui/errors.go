package tui

import (
	"errors"

	"github.com/thenoetrevino/lista/internal/store"
)

// inputProblem turns a validation error into a status bar message
func inputProblem(err error, fallback string) string {
	switch {
	case errors.Is(err, store.ErrEmptyDescription):
		return "Please enter a task!"
	case errors.Is(err, store.ErrInvalidDescription):
		return "Tasks cannot contain '|'"
	}
	return fallback + " " + err.Error()
}
