package app

import (
	"log/slog"

	"github.com/dshills/keycalc/internal/config"
	"github.com/dshills/keycalc/internal/renderer"
	"github.com/dshills/keycalc/internal/renderer/backend"
	"github.com/dshills/keycalc/internal/tape"
)

// Option configures an Application.
type Option func(*Application)

// WithBackend sets the screen. Without one the application is headless and
// only Eval works.
func WithBackend(b backend.Backend) Option {
	return func(a *Application) {
		a.backend = b
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Application) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithStore replaces the history store chosen from the config.
// The application closes it.
func WithStore(store tape.Store) Option {
	return func(a *Application) {
		a.store = store
	}
}

// WithReload enables live config reload. Run watches the config file and
// reloads it with opts, so command line overrides keep winning.
func WithReload(opts config.LoadOptions) Option {
	return func(a *Application) {
		a.reload = &opts
	}
}

// WithViewOptions sets the view layout.
func WithViewOptions(opts renderer.Options) Option {
	return func(a *Application) {
		a.viewOpts = opts
	}
}
