package tui

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/lista/internal/tui/components"
	"github.com/thenoetrevino/lista/internal/tui/state"
)

// View implements tea.Model
func (m Model) View() string {
	if m.uiState.Mode() == state.HelpMode {
		return m.viewHelp()
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")
	b.WriteString(m.viewList())
	b.WriteString("\n")
	b.WriteString(m.viewPrompt())
	b.WriteString("\n")
	b.WriteString(m.viewStatusBar())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// viewHeader renders the title and the statistics line.
func (m Model) viewHeader() string {
	stats := m.statistics()
	title := m.styles.Title.Render("lista") + m.styles.Subtle.Render("  "+m.store.Config().DataFile)

	line := fmt.Sprintf("Total: %d | Pending: %d | Completed: %d | High: %d | Done: %.0f%% | Filter: %s",
		stats.Total, stats.Pending, stats.Completed, stats.HighPriority, stats.CompletionRate(), m.uiState.Filter())
	if term := m.uiState.Search(); term != "" {
		line += fmt.Sprintf(" | Search: %q", term)
	}
	return title + "\n" + m.styles.Stats.Render(line)
}

// viewList renders the visible window of the filtered list.
func (m Model) viewList() string {
	if len(m.visible) == 0 {
		msg := "No tasks yet. Press " + displayKey(m.config.KeyMappings.AddTask) + " to add one."
		if len(m.tasks) > 0 {
			msg = "No tasks match the current filter."
		}
		return m.styles.Subtle.Render(msg) + "\n"
	}

	start := m.uiState.Offset()
	end := start + m.uiState.ListHeight()
	if end > len(m.visible) {
		end = len(m.visible)
	}

	var b strings.Builder
	for row := start; row < end; row++ {
		t := m.visible[row]
		b.WriteString(components.RenderTaskRow(components.TaskRowProps{
			Task:          t,
			Selected:      row == m.uiState.Selected(),
			Width:         m.uiState.Width(),
			Style:         m.styles.ForTask(t.Task),
			SelectedStyle: m.styles.Selected,
			SubtleStyle:   m.styles.Subtle,
		}))
		b.WriteString("\n")
	}
	return b.String()
}

// viewPrompt renders the input line or the pending question.
func (m Model) viewPrompt() string {
	mode := m.uiState.Mode()
	switch {
	case mode == state.AddMode:
		priority := m.styles.ForPriority(m.inputPriority).Render("[" + string(m.inputPriority) + "]")
		return m.input.View() + "  " + priority + m.styles.Subtle.Render(" tab: priority")
	case mode.IsInput():
		return m.input.View()
	case mode.IsConfirm():
		return m.styles.Confirm.Render(m.confirmQuestion()) + m.styles.Subtle.Render("  (y/n)")
	}
	return ""
}

// viewStatusBar renders the latest notification.
func (m Model) viewStatusBar() string {
	props := components.StatusBarProps{
		Width:  m.uiState.Width(),
		Hint:   "press " + displayKey(m.config.KeyMappings.ShowHelp) + " for help",
		Subtle: m.styles.Subtle,
	}
	if n, ok := m.notificationState.Last(); ok {
		props.Message = n.Message
		props.Style = m.styles.ForLevel(n.Level)
	}
	return components.RenderStatusBar(props)
}

// viewHelp renders the full key list.
func (m Model) viewHelp() string {
	h := m.help
	h.ShowAll = true
	return m.styles.Title.Render("lista keys") + "\n\n" + h.View(m.keys) + "\n\n" +
		m.styles.Subtle.Render("press any key to return")
}
