package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/lista/internal/app"
)

// Run starts the list view and blocks until the user quits
func Run(ctx context.Context, a *app.App) error {
	p := tea.NewProgram(New(a), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
