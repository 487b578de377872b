package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/lista/internal/tui/state"
)

// ============================================================================
// CONFIRMATION HANDLERS
// ============================================================================

// handleConfirmMode answers the pending yes/no question.
func (m Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		mode := m.uiState.Mode()
		m.uiState.SetMode(state.NormalMode)
		return m.confirm(mode)
	case "n", "N", "esc", "q":
		m.uiState.SetMode(state.NormalMode)
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// confirm performs the action that was confirmed.
func (m Model) confirm(mode state.Mode) (tea.Model, tea.Cmd) {
	switch mode {
	case state.DeleteConfirmMode:
		if err := m.store.Delete(m.editIndex); err != nil {
			m.fail("Failed to delete task!", err)
			return m, nil
		}
		m.reload()

	case state.ClearConfirmMode:
		removed, err := m.store.ClearCompleted()
		if err != nil {
			m.fail("Failed to clear completed tasks!", err)
			return m, nil
		}
		m.reload()
		m.notificationState.Add(state.LevelInfo, fmt.Sprintf("Removed %d completed tasks", removed))

	case state.RestoreConfirmMode:
		if err := m.store.Restore(); err != nil {
			m.fail("Failed to restore backup!", err)
			return m, nil
		}
		m.reload()
		m.notificationState.Add(state.LevelInfo, "Backup restored successfully!")
	}
	return m, nil
}

// confirmQuestion is the prompt shown for a confirmation mode.
func (m Model) confirmQuestion() string {
	switch m.uiState.Mode() {
	case state.DeleteConfirmMode:
		return "Are you sure you want to delete this task?"
	case state.ClearConfirmMode:
		return "Remove all completed tasks?"
	case state.RestoreConfirmMode:
		return "This will replace current data. Continue?"
	}
	return ""
}
