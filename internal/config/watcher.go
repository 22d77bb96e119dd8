package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of events editors produce on save.
const DefaultDebounce = 150 * time.Millisecond

// Watcher calls a function when a config file changes.
//
// The parent directory is watched rather than the file so that editors which
// save by renaming a temporary file over the original are still seen.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func(path string)
	logger   *slog.Logger

	fsw *fsnotify.Watcher

	mu       sync.Mutex
	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the quiet period before onChange runs.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithWatchLogger sets the logger for watch errors.
func WithWatchLogger(logger *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// NewWatcher starts watching path. onChange runs on the watcher's goroutine;
// it must hand work to the owner of any shared state rather than touch it.
func NewWatcher(path string, onChange func(path string), opts ...WatcherOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		debounce: DefaultDebounce,
		onChange: onChange,
		logger:   slog.New(slog.DiscardHandler),
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	w.fsw = fsw

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWatcherClosed
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.closedWg.Wait()
	return err
}

func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watch error", "path", w.path, "error", err)

		case <-fire:
			fire = nil
			w.logger.Debug("config changed", "path", w.path)
			if w.onChange != nil {
				w.onChange(w.path)
			}
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}
