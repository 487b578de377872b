package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/lista/internal/tui/state"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.uiState.SetWindowSize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		m.input.Width = msg.Width - 20
		return m, nil

	case tea.KeyMsg:
		switch mode := m.uiState.Mode(); {
		case mode.IsInput():
			return m.handleInputMode(msg)
		case mode.IsConfirm():
			return m.handleConfirmMode(msg)
		case mode == state.HelpMode:
			m.uiState.SetMode(state.NormalMode)
			return m, nil
		default:
			return m.handleNormalMode(msg)
		}
	}

	return m, nil
}
