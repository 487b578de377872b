package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/lista/internal/app"
	"github.com/thenoetrevino/lista/internal/models"
	"github.com/thenoetrevino/lista/internal/testutil"
)

// setupModel returns a sized model over a pending, a high priority and a completed task
func setupModel(t *testing.T) (Model, *app.App) {
	t.Helper()
	a := testutil.SetupTestApp(t)
	testutil.SeedTasks(t, a,
		testutil.SeedTask{Description: "Buy milk", Priority: models.PriorityMedium},
		testutil.SeedTask{Description: "Pay rent", Priority: models.PriorityHigh},
		testutil.SeedTask{Description: "Water plants", Priority: models.PriorityLow, Completed: true},
	)
	return send(t, New(a), tea.WindowSizeMsg{Width: 100, Height: 30}), a
}

// send feeds messages to the model and returns the resulting model
func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok, "Update should return a Model")
	}
	return m
}

// press builds a key message the way bubbletea reports it
func press(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// keys presses each key in turn
func keys(t *testing.T, m Model, ks ...string) Model {
	t.Helper()
	for _, k := range ks {
		m = send(t, m, press(k))
	}
	return m
}

// lastMessage returns the status bar text, or ""
func lastMessage(m Model) string {
	n, ok := m.Notification()
	if !ok {
		return ""
	}
	return n.Message
}
