package calc

// Option configures an Engine.
type Option func(*Engine)

// WithDisplay sets the sink that receives display updates.
func WithDisplay(sink DisplaySink) Option {
	return func(e *Engine) {
		if sink != nil {
			e.display = sink
		}
	}
}

// WithNotifier sets the sink that receives format-error notices.
func WithNotifier(n Notifier) Option {
	return func(e *Engine) {
		if n != nil {
			e.notifier = n
		}
	}
}

// WithObserver sets a callback invoked after each evaluation.
func WithObserver(obs Observer) Option {
	return func(e *Engine) {
		e.observer = obs
	}
}

// WithFunc registers a unary function at construction time.
// Invalid names are ignored; use RegisterFunc to see the error.
func WithFunc(name string, fn UnaryFunc) Option {
	return func(e *Engine) {
		_ = e.RegisterFunc(name, fn)
	}
}
