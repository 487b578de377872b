package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/lista/internal/config"
	"github.com/thenoetrevino/lista/internal/config/colors"
	"github.com/thenoetrevino/lista/internal/models"
)

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Total:", "Pending:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Pending", "Completed"

	// Priority styles
	HighStyle      lipgloss.Style
	MediumStyle    lipgloss.Style
	LowStyle       lipgloss.Style
	CompletedStyle lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(c colors.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Accent)).
		Bold(true)

	HighStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.High))

	MediumStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Medium))

	LowStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Low))

	CompletedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Completed))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.InfoFg))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.ErrorFg))

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.WarningFg))
}

// Priority returns the style for a task's priority tag
func Priority(t models.Task) lipgloss.Style {
	if t.IsCompleted() {
		return CompletedStyle
	}
	switch t.Priority {
	case models.PriorityHigh:
		return HighStyle
	case models.PriorityLow:
		return LowStyle
	default:
		return MediumStyle
	}
}

// Description returns the style for a task's text
func Description(t models.Task) lipgloss.Style {
	if t.IsCompleted() {
		return CompletedStyle.Strikethrough(true)
	}
	return ValueStyle
}
