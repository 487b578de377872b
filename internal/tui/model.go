package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/lista/internal/app"
	"github.com/thenoetrevino/lista/internal/config"
	"github.com/thenoetrevino/lista/internal/models"
	"github.com/thenoetrevino/lista/internal/store"
	"github.com/thenoetrevino/lista/internal/tui/state"
)

// Model is the bubbletea model of the list view
type Model struct {
	store  store.TaskStore
	config *config.Config
	logger *slog.Logger

	keys   KeyMap
	styles Styles
	help   help.Model
	input  textinput.Model

	// tasks is the full list in file order; visible is the filtered view
	tasks   []models.Task
	visible []models.IndexedTask

	// inputPriority is the priority of the task being added
	inputPriority models.Priority
	// editIndex is the store index of the task being edited or deleted
	editIndex int

	uiState           *state.UIState
	notificationState *state.NotificationState
}

// New creates the list view for the application's store
func New(a *app.App) Model {
	cfg := a.Config
	if cfg == nil {
		cfg = config.Default()
	}

	logger := a.Logger
	if logger == nil {
		logger = slog.Default()
	}

	input := textinput.New()
	input.CharLimit = 500

	m := Model{
		store:             a.Store,
		config:            cfg,
		logger:            logger,
		keys:              NewKeyMap(cfg.KeyMappings),
		styles:            NewStyles(cfg.ColorScheme),
		help:              help.New(),
		input:             input,
		inputPriority:     cfg.Priority(),
		uiState:           state.NewUIState(),
		notificationState: state.NewNotificationState(),
	}
	m.reload()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Tasks returns the full task list as last loaded
func (m Model) Tasks() []models.Task {
	return m.tasks
}

// Visible returns the tasks shown under the current filter and search
func (m Model) Visible() []models.IndexedTask {
	return m.visible
}

// Mode returns the current interaction mode
func (m Model) Mode() state.Mode {
	return m.uiState.Mode()
}

// Notification returns the latest status bar message
func (m Model) Notification() (state.Notification, bool) {
	return m.notificationState.Last()
}

// reload re-reads the task file and recomputes the visible list
func (m *Model) reload() {
	tasks, err := m.store.ReadAll()
	if err != nil {
		m.logger.Error("failed to load tasks", "error", err)
		m.notificationState.Add(state.LevelError, "Failed to load tasks: "+err.Error())
		tasks = []models.Task{}
	}
	m.tasks = tasks
	m.refilter()
}

// refilter recomputes the visible list from the loaded tasks
func (m *Model) refilter() {
	m.visible = store.Select(m.tasks, m.uiState.Filter().Status(), m.uiState.Search())
	m.uiState.Clamp(len(m.visible))
}

// selectedTask returns the task under the cursor
func (m Model) selectedTask() (models.IndexedTask, bool) {
	if len(m.visible) == 0 {
		return models.IndexedTask{}, false
	}
	return m.visible[m.uiState.Selected()], true
}

// statistics counts the full task list
func (m Model) statistics() models.Statistics {
	return store.Summarize(m.tasks)
}
