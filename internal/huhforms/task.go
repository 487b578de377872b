package huhforms

import (
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/thenoetrevino/lista/internal/models"
)

// CreateTaskForm creates a huh form for adding or editing a task.
// The form uses pointers to update values in place.
func CreateTaskForm(description *string, priority *models.Priority, confirm *bool) *huh.Form {
	var fields []huh.Field

	// Description input field
	fields = append(fields,
		huh.NewInput().
			Key("description").
			Title("Task").
			Placeholder("What needs doing?").
			Validate(ValidateDescription).
			Value(description),
	)

	// Priority select field
	fields = append(fields,
		huh.NewSelect[models.Priority]().
			Key("priority").
			Title("Priority").
			Options(PriorityOptions()...).
			Value(priority),
	)

	// Confirmation
	fields = append(fields,
		huh.NewConfirm().
			Key("confirm").
			Title("Save this task?").
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	)

	return huh.NewForm(huh.NewGroup(fields...))
}

// CreateConfirmForm creates a single yes/no question
func CreateConfirmForm(title, description string, confirm *bool) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Key("confirm").
			Title(title).
			Description(description).
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	))
}

// PriorityOptions lists the priorities in display order
func PriorityOptions() []huh.Option[models.Priority] {
	options := make([]huh.Option[models.Priority], 0, len(models.Priorities))
	for _, p := range models.Priorities {
		options = append(options, huh.NewOption(string(p), p))
	}
	return options
}

// ValidateDescription rejects text the task file cannot hold
func ValidateDescription(s string) error {
	if strings.TrimSpace(s) == "" {
		return errEmpty
	}
	if strings.ContainsAny(s, "|\r\n") {
		return errDelimiter
	}
	return nil
}
