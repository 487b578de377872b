package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/thenoetrevino/lista/internal/cli/styles"
	"github.com/thenoetrevino/lista/internal/models"
)

// ErrUsage marks malformed command arguments
var ErrUsage = errors.New("invalid usage")

// ParseTaskNumber converts a 1-based task number from the command line
// into a 0-based store index
func ParseTaskNumber(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(arg), "#"))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: task number must be a positive integer, got %q", ErrUsage, arg)
	}
	return n - 1, nil
}

// TaskJSON is the JSON shape of a task in command output
type TaskJSON struct {
	Number      int    `json:"number"`
	Timestamp   string `json:"timestamp"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

// NewTaskJSON builds the JSON view of the task stored at index
func NewTaskJSON(index int, t models.Task) TaskJSON {
	return TaskJSON{
		Number:      index + 1,
		Timestamp:   t.Timestamp,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		Description: t.Description,
	}
}

// TasksJSON converts indexed tasks into their JSON view
func TasksJSON(tasks []models.IndexedTask) []TaskJSON {
	out := make([]TaskJSON, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, NewTaskJSON(t.Index, t.Task))
	}
	return out
}

// FormatTask renders one task line for human-readable output
func FormatTask(index int, t models.Task) string {
	mark := "[ ]"
	if t.IsCompleted() {
		mark = "[✓]"
	}
	number := fmt.Sprintf("%3d.", index+1)
	priority := fmt.Sprintf("%-8s", "["+string(t.Priority)+"]")
	return fmt.Sprintf("%s %s %s %s  %s",
		number,
		mark,
		styles.Priority(t).Render(priority),
		styles.Description(t).Render(t.Description),
		styles.SubtitleStyle.Render(t.Timestamp),
	)
}

// ErrCompletedTask is returned when editing a task that is already done
var ErrCompletedTask = errors.New("completed tasks cannot be edited")
