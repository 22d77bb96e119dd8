package dispatcher

import (
	"log/slog"

	"github.com/dshills/keycalc/internal/event"
	"github.com/dshills/keycalc/internal/input/keymap"
)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithBus sets the event bus evaluations, notices and mode changes are
// published on.
func WithBus(bus *event.Bus) Option {
	return func(d *Dispatcher) {
		d.bus = bus
	}
}

// WithLogger sets the dispatcher logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithKeymaps sets the registry HandleKey resolves keys with.
func WithKeymaps(r *keymap.Registry) Option {
	return func(d *Dispatcher) {
		d.keymaps = r
	}
}

// WithThemeHandler sets the function called for theme actions.
func WithThemeHandler(fn func(name string) error) Option {
	return func(d *Dispatcher) {
		d.onTheme = fn
	}
}

// WithMetrics enables dispatch metrics.
func WithMetrics() Option {
	return func(d *Dispatcher) {
		d.metrics = NewMetrics()
	}
}
