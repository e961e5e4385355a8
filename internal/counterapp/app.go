// Package counterapp hosts a store in a terminal UI.
package counterapp

import (
	"errors"
	"io"
	"log"
	"time"

	"github.com/odvcencio/furry-store/backend"
	"github.com/odvcencio/furry-store/runtime"
	"github.com/odvcencio/furry-store/store"
)

var (
	// ErrNoBackend is returned by New without a backend.
	ErrNoBackend = errors.New("counterapp: backend is required")
	// ErrNoStore is returned by New without a store.
	ErrNoStore = errors.New("counterapp: store is required")
)

// Config wires the application's dependencies.
type Config struct {
	Backend  backend.Backend
	Store    *store.Store
	Palette  []string
	TickRate time.Duration
	Logger   *log.Logger
}

// New builds an app with a CounterView as its root.
func New(cfg Config) (*runtime.App, *CounterView, error) {
	if cfg.Backend == nil {
		return nil, nil, ErrNoBackend
	}
	if cfg.Store == nil {
		return nil, nil, ErrNoStore
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	view := NewCounterView(cfg.Store, cfg.Palette, logger)
	app := runtime.NewApp(runtime.AppConfig{
		Backend:  cfg.Backend,
		Root:     view,
		TickRate: cfg.TickRate,
	})
	return app, view, nil
}
