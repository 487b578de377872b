package cli

import (
	"context"
	"errors"

	"github.com/thenoetrevino/lista/internal/app"
	"github.com/thenoetrevino/lista/internal/store"
)

// ErrNoApp is returned when a command runs without an application in its context
var ErrNoApp = errors.New("application not initialized")

type appKey struct{}

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with the task store
}

// WithApp returns a context carrying the application container
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

// GetCLIFromContext returns the CLI for the application stored in ctx
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, ErrNoApp
	}
	a, ok := ctx.Value(appKey{}).(*app.App)
	if !ok || a == nil {
		return nil, ErrNoApp
	}
	return &CLI{App: a}, nil
}

// Store returns the task store
func (c *CLI) Store() store.TaskStore {
	return c.App.Store
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}
