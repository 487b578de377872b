package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/lista/internal/config/colors"
	"github.com/thenoetrevino/lista/internal/models"
	"github.com/thenoetrevino/lista/internal/tui/state"
)

// Styles holds every style of the list view, built from a color scheme
type Styles struct {
	Title     lipgloss.Style
	Stats     lipgloss.Style
	Subtle    lipgloss.Style
	Selected  lipgloss.Style
	Input     lipgloss.Style
	Prompt    lipgloss.Style
	Confirm   lipgloss.Style
	Completed lipgloss.Style
	High      lipgloss.Style
	Medium    lipgloss.Style
	Low       lipgloss.Style
	Info      lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
}

// NewStyles creates the styles for the given color scheme
func NewStyles(c colors.ColorScheme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Title)),
		Stats:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Normal)),
		Subtle: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Subtle)),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(c.SelectedBg)).
			Bold(true),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Border)).
			Padding(0, 1),
		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Accent)),
		Confirm: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.WarningFg)).
			Background(lipgloss.Color(c.WarningBg)).
			Padding(0, 1),
		Completed: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Completed)).
			Strikethrough(true),
		High:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.High)).Bold(true),
		Medium: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Medium)),
		Low:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Low)),
		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.InfoFg)).
			Background(lipgloss.Color(c.InfoBg)).
			Padding(0, 1),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.WarningFg)).
			Background(lipgloss.Color(c.WarningBg)).
			Padding(0, 1),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.ErrorFg)).
			Background(lipgloss.Color(c.ErrorBg)).
			Padding(0, 1),
	}
}

// ForTask returns the row style for a task
func (s Styles) ForTask(t models.Task) lipgloss.Style {
	if t.IsCompleted() {
		return s.Completed
	}
	return s.ForPriority(t.Priority)
}

// ForPriority returns the color style for a priority
func (s Styles) ForPriority(p models.Priority) lipgloss.Style {
	switch p {
	case models.PriorityHigh:
		return s.High
	case models.PriorityLow:
		return s.Low
	default:
		return s.Medium
	}
}

// ForLevel returns the style of a notification
func (s Styles) ForLevel(level state.NotificationLevel) lipgloss.Style {
	switch level {
	case state.LevelWarning:
		return s.Warning
	case state.LevelError:
		return s.Error
	default:
		return s.Info
	}
}
