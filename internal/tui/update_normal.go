package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/lista/internal/tui/state"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// handleNormalMode dispatches key events in NormalMode to specific handlers.
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notificationState.Clear()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case msg.Type == tea.KeyEsc:
		// Leave a search that was kept with enter
		m.uiState.SetSearch("")
		m.refilter()
	case key.Matches(msg, m.keys.Help):
		m.uiState.SetMode(state.HelpMode)
	case key.Matches(msg, m.keys.Up):
		m.uiState.Select(m.uiState.Selected()-1, len(m.visible))
	case key.Matches(msg, m.keys.Down):
		m.uiState.Select(m.uiState.Selected()+1, len(m.visible))
	case key.Matches(msg, m.keys.Top):
		m.uiState.Select(0, len(m.visible))
	case key.Matches(msg, m.keys.Bottom):
		m.uiState.Select(len(m.visible)-1, len(m.visible))
	case key.Matches(msg, m.keys.Add):
		return m.handleAddTask()
	case key.Matches(msg, m.keys.Edit):
		return m.handleEditTask()
	case key.Matches(msg, m.keys.Delete):
		return m.handleDeleteTask()
	case key.Matches(msg, m.keys.Toggle):
		return m.handleToggleStatus()
	case key.Matches(msg, m.keys.Priority):
		return m.handleCyclePriority()
	case key.Matches(msg, m.keys.ClearCompleted):
		return m.handleClearCompleted()
	case key.Matches(msg, m.keys.Search):
		return m.handleEnterSearch()
	case key.Matches(msg, m.keys.Filter):
		m.uiState.SetFilter(m.uiState.Filter().Next())
		m.refilter()
	case key.Matches(msg, m.keys.Refresh):
		m.reload()
	case key.Matches(msg, m.keys.Backup):
		return m.handleBackup()
	case key.Matches(msg, m.keys.Restore):
		return m.handleRestore()
	}

	return m, nil
}

// startInput switches to an input mode with the given prompt and value.
func (m Model) startInput(mode state.Mode, prompt, placeholder, value string) (tea.Model, tea.Cmd) {
	m.uiState.SetMode(mode)
	m.input.Prompt = prompt
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	focus := m.input.Focus()
	return m, tea.Batch(focus, textinput.Blink)
}

// handleAddTask opens the input line for a new task.
func (m Model) handleAddTask() (tea.Model, tea.Cmd) {
	m.inputPriority = m.config.Priority()
	return m.startInput(state.AddMode, "New task: ", "What needs doing?", "")
}

// handleEditTask opens the input line with the selected task's text.
func (m Model) handleEditTask() (tea.Model, tea.Cmd) {
	selected, ok := m.selectedTask()
	if !ok {
		m.notificationState.Add(state.LevelWarning, "Please select a task to edit!")
		return m, nil
	}
	if selected.IsCompleted() {
		m.notificationState.Add(state.LevelWarning, "Cannot edit completed tasks!")
		return m, nil
	}
	m.editIndex = selected.Index
	return m.startInput(state.EditMode, "Edit task: ", "", selected.Description)
}

// handleDeleteTask asks for confirmation before deleting the selected task.
func (m Model) handleDeleteTask() (tea.Model, tea.Cmd) {
	selected, ok := m.selectedTask()
	if !ok {
		m.notificationState.Add(state.LevelWarning, "Please select a task to delete!")
		return m, nil
	}
	m.editIndex = selected.Index
	m.uiState.SetMode(state.DeleteConfirmMode)
	return m, nil
}

// handleToggleStatus completes a pending task or reopens a completed one.
func (m Model) handleToggleStatus() (tea.Model, tea.Cmd) {
	selected, ok := m.selectedTask()
	if !ok {
		m.notificationState.Add(state.LevelWarning, "Please select a task to mark as complete!")
		return m, nil
	}
	status := selected.Status.Toggle()
	if err := m.store.UpdateStatus(selected.Index, status); err != nil {
		m.fail("Failed to update task!", err)
		return m, nil
	}
	m.reload()
	return m, nil
}

// handleCyclePriority moves the selected pending task to the next priority.
func (m Model) handleCyclePriority() (tea.Model, tea.Cmd) {
	selected, ok := m.selectedTask()
	if !ok {
		m.notificationState.Add(state.LevelWarning, "Please select a task to edit!")
		return m, nil
	}
	if selected.IsCompleted() {
		m.notificationState.Add(state.LevelWarning, "Cannot edit completed tasks!")
		return m, nil
	}
	if err := m.store.UpdatePriority(selected.Index, selected.Priority.Next()); err != nil {
		m.fail("Failed to update task!", err)
		return m, nil
	}
	m.reload()
	return m, nil
}

// handleClearCompleted asks before removing completed tasks.
func (m Model) handleClearCompleted() (tea.Model, tea.Cmd) {
	if m.statistics().Completed == 0 {
		m.notificationState.Add(state.LevelInfo, "No completed tasks to clear")
		return m, nil
	}
	m.uiState.SetMode(state.ClearConfirmMode)
	return m, nil
}

// handleEnterSearch opens the input line for a live search.
func (m Model) handleEnterSearch() (tea.Model, tea.Cmd) {
	return m.startInput(state.SearchMode, "/", "search tasks", m.uiState.Search())
}

// handleBackup copies the task file to the backup file.
func (m Model) handleBackup() (tea.Model, tea.Cmd) {
	if err := m.store.Backup(); err != nil {
		m.fail("Failed to create backup!", err)
		return m, nil
	}
	m.notificationState.Add(state.LevelInfo, "Backup created successfully!")
	return m, nil
}

// handleRestore asks before replacing the task file with the backup.
func (m Model) handleRestore() (tea.Model, tea.Cmd) {
	if !m.store.HasBackup() {
		m.notificationState.Add(state.LevelWarning, "No backup file found")
		return m, nil
	}
	m.uiState.SetMode(state.RestoreConfirmMode)
	return m, nil
}

// fail logs err and shows message in the status bar.
func (m *Model) fail(message string, err error) {
	m.logger.Error(message, "error", err)
	m.notificationState.Add(state.LevelError, fmt.Sprintf("%s %v", message, err))
}
