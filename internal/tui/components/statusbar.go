package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusBarProps holds the text of the status bar
type StatusBarProps struct {
	Width   int
	Message string
	Style   lipgloss.Style // style of the message
	Hint    string
	Subtle  lipgloss.Style
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: the latest notification
// Right side: the hint, usually "press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	leftRendered := ""
	if props.Message != "" {
		leftRendered = props.Style.Render(props.Message)
	}
	rightRendered := props.Subtle.Render(props.Hint)

	// Calculate space between left and right text
	leftWidth := lipgloss.Width(leftRendered)
	rightWidth := lipgloss.Width(rightRendered)
	gapWidth := props.Width - leftWidth - rightWidth
	if gapWidth < 1 {
		gapWidth = 1
	}

	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
