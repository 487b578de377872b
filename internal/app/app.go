package app

import (
	"log/slog"

	"github.com/thenoetrevino/lista/internal/config"
	"github.com/thenoetrevino/lista/internal/store"
)

// App holds the task store and the settings it was built from.
// This is the main application container shared by the CLI and the TUI.
type App struct {
	Config *config.Config
	Store  store.TaskStore
	Logger *slog.Logger
}

// New creates a new App with the store configured from cfg.
// This is the single entry point for creating the application container.
func New(cfg *config.Config, opts ...Option) *App {
	ac := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(ac)
	}

	storeOpts := []store.Option{store.WithLogger(ac.logger)}
	if ac.clock != nil {
		storeOpts = append(storeOpts, store.WithClock(ac.clock))
	}

	return &App{
		Config: cfg,
		Store:  store.New(cfg.StoreConfig(), storeOpts...),
		Logger: ac.logger,
	}
}

// Close performs cleanup of application resources.
// The flat-file store holds no open handles between operations.
func (a *App) Close() error {
	return nil
}
