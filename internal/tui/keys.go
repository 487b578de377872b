package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/thenoetrevino/lista/internal/config"
)

// KeyMap defines the key bindings of the list view
type KeyMap struct {
	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Tasks
	Add            key.Binding
	Edit           key.Binding
	Delete         key.Binding
	Toggle         key.Binding
	Priority       key.Binding
	ClearCompleted key.Binding

	// Views
	Search  key.Binding
	Filter  key.Binding
	Refresh key.Binding

	// Files
	Backup  key.Binding
	Restore key.Binding

	// Other
	Help key.Binding
	Quit key.Binding
}

// NewKeyMap builds the bindings from the configured key mappings
func NewKeyMap(km config.KeyMappings) KeyMap {
	bind := func(k, help string, extra ...string) key.Binding {
		return key.NewBinding(
			key.WithKeys(append([]string{k}, extra...)...),
			key.WithHelp(displayKey(k), help),
		)
	}

	return KeyMap{
		Up:     bind(km.PrevTask, "up", "up"),
		Down:   bind(km.NextTask, "down", "down"),
		Top:    bind(km.FirstTask, "top", "home"),
		Bottom: bind(km.LastTask, "bottom", "end"),

		Add:            bind(km.AddTask, "add"),
		Edit:           bind(km.EditTask, "edit"),
		Delete:         bind(km.DeleteTask, "delete"),
		Toggle:         bind(km.ToggleStatus, "done/undo", "x"),
		Priority:       bind(km.CyclePriority, "priority"),
		ClearCompleted: bind(km.ClearCompleted, "clear done"),

		Search:  bind(km.Search, "search"),
		Filter:  bind(km.CycleFilter, "filter"),
		Refresh: bind(km.Refresh, "reload"),

		Backup:  bind(km.Backup, "backup"),
		Restore: bind(km.Restore, "restore"),

		Help: bind(km.ShowHelp, "help"),
		Quit: bind(km.Quit, "quit", "ctrl+c"),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Edit, k.Delete, k.Search, k.Filter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Add, k.Edit, k.Delete, k.Toggle, k.Priority},
		{k.Search, k.Filter, k.ClearCompleted, k.Refresh},
		{k.Backup, k.Restore, k.Help, k.Quit},
	}
}

func displayKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
