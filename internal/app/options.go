package app

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger *slog.Logger
	clock  func() time.Time
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithClock overrides the time source used to stamp new tasks
func WithClock(clock func() time.Time) Option {
	return func(cfg *appConfig) {
		cfg.clock = clock
	}
}
