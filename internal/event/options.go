package event

import "log/slog"

// BusOption configures a Bus.
type BusOption func(*Bus)

// WithLogger sets the logger used to report handler failures.
func WithLogger(logger *slog.Logger) BusOption {
	return func(b *Bus) {
		if logger != nil {
			b.logger = logger
		}
	}
}
