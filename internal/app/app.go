package app

import (
	"context"

	"twodes/internal/des"
)

// App is the per-invocation state shared by CLI commands.
type App struct {
	Config Config
	*Wire
}

func New(cfg Config) (*App, error) {
	w, err := NewWire(cfg)
	if err != nil {
		return nil, err
	}
	return &App{Config: cfg, Wire: w}, nil
}

// Key returns the configured master key masked to 56 bits.
func (a *App) Key() uint64 { return a.Config.Key & des.Mask56 }

// Context returns ctx bounded by Config.Timeout when one is set.
func (a *App) Context(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.Config.Timeout > 0 {
		return context.WithTimeout(ctx, a.Config.Timeout)
	}
	return context.WithCancel(ctx)
}
