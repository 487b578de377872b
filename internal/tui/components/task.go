package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/lista/internal/models"
)

// TaskRowProps holds everything needed to render one row of the list
type TaskRowProps struct {
	Task     models.IndexedTask
	Selected bool
	Width    int

	Style         lipgloss.Style // priority or completed style
	SelectedStyle lipgloss.Style
	SubtleStyle   lipgloss.Style
}

// RenderTaskRow renders a task as "▸ 3. [✓] [High]   text   created"
func RenderTaskRow(props TaskRowProps) string {
	cursor := "  "
	if props.Selected {
		cursor = "▸ "
	}

	check := "[ ]"
	if props.Task.IsCompleted() {
		check = "[✓]"
	}

	prefix := fmt.Sprintf("%s%3d. %s ", cursor, props.Task.Index+1, check)
	priority := fmt.Sprintf("%-9s", "["+string(props.Task.Priority)+"]")
	created := props.SubtleStyle.Render(props.Task.Timestamp)

	// Leave room for the prefix, the tag and the timestamp
	descWidth := props.Width - lipgloss.Width(prefix) - len(priority) - lipgloss.Width(created) - 2
	description := props.Task.Description
	if descWidth > 3 && lipgloss.Width(description) > descWidth {
		description = truncate(description, descWidth)
	}

	row := prefix + props.Style.Render(priority+description)
	if props.Width > 0 {
		if gap := props.Width - lipgloss.Width(row) - lipgloss.Width(created); gap > 1 {
			row += fmt.Sprintf("%*s", gap, "")
		} else {
			row += "  "
		}
	} else {
		row += "  "
	}
	row += created

	if props.Selected {
		return props.SelectedStyle.Render(row)
	}
	return row
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
