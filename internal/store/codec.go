package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/lista/internal/models"
)

// Delimiter separates the fields of a stored record
const Delimiter = "|"

// fieldCount is the number of fields in a record: timestamp, priority, status, description
const fieldCount = 4

// formatLine renders a task as one line of the store file, including the newline
func formatLine(t models.Task) string {
	return strings.Join([]string{
		t.Timestamp,
		string(t.Priority),
		string(t.Status),
		t.Description,
	}, Delimiter) + "\n"
}

// parseLine splits a stored line into a task.
// It only checks the field count; field values are taken as-is.
func parseLine(line string) (models.Task, bool) {
	parts := strings.SplitN(line, Delimiter, fieldCount)
	if len(parts) != fieldCount {
		return models.Task{}, false
	}
	return models.Task{
		Timestamp:   parts[0],
		Priority:    models.Priority(parts[1]),
		Status:      models.Status(parts[2]),
		Description: parts[3],
	}, true
}

// checkLine is the strict form of parseLine used by validation.
// It returns a reason string when the line is not a well-formed record.
func checkLine(line string) string {
	parts := strings.SplitN(line, Delimiter, fieldCount)
	if len(parts) != fieldCount {
		return fmt.Sprintf("expected %d fields, got %d", fieldCount, len(parts))
	}
	if _, err := time.Parse(models.TimestampLayout, parts[0]); err != nil {
		return "invalid timestamp"
	}
	if !models.Priority(parts[1]).Valid() {
		return "invalid priority"
	}
	if !models.Status(parts[2]).Valid() {
		return "invalid status"
	}
	return ""
}

// cleanDescription trims text and rejects values that would corrupt the line format
func cleanDescription(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyDescription
	}
	if strings.ContainsAny(text, Delimiter+"\r\n") {
		return "", ErrInvalidDescription
	}
	return text, nil
}
