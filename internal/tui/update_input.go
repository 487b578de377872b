package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/lista/internal/tui/state"
)

// ============================================================================
// INPUT MODE HANDLERS
// ============================================================================

// handleInputMode handles keys while the input line is focused.
func (m Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		return m.cancelInput()
	case tea.KeyEnter:
		return m.submitInput()
	case tea.KeyTab:
		if m.uiState.Mode() == state.AddMode {
			m.inputPriority = m.inputPriority.Next()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// Search filters as the user types
	if m.uiState.Mode() == state.SearchMode {
		m.uiState.SetSearch(m.input.Value())
		m.refilter()
	}
	return m, cmd
}

// cancelInput leaves the input line without saving.
// Cancelling a search also clears it.
func (m Model) cancelInput() (tea.Model, tea.Cmd) {
	if m.uiState.Mode() == state.SearchMode {
		m.uiState.SetSearch("")
		m.refilter()
	}
	return m.endInput(), nil
}

// submitInput saves the input line according to the current mode.
func (m Model) submitInput() (tea.Model, tea.Cmd) {
	value := m.input.Value()

	switch m.uiState.Mode() {
	case state.AddMode:
		if _, err := m.store.Add(value, m.inputPriority); err != nil {
			m.notificationState.Clear()
			m.notificationState.Add(state.LevelWarning, inputProblem(err, "Failed to add task!"))
			return m, nil
		}
		m = m.endInput()
		m.reload()
		// Select the new task when it is visible
		if n := len(m.visible); n > 0 && m.visible[n-1].Index == len(m.tasks)-1 {
			m.uiState.Select(n-1, n)
		}

	case state.EditMode:
		if err := m.store.UpdateDescription(m.editIndex, value); err != nil {
			m.notificationState.Clear()
			m.notificationState.Add(state.LevelWarning, inputProblem(err, "Failed to update task!"))
			return m, nil
		}
		m = m.endInput()
		m.reload()

	case state.SearchMode:
		m = m.endInput()
	}

	return m, nil
}

// endInput returns to normal mode and clears the input line.
func (m Model) endInput() Model {
	m.uiState.SetMode(state.NormalMode)
	m.input.Blur()
	m.input.SetValue("")
	return m
}
