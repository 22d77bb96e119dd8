package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dshills/keycalc/internal/calc"
	"github.com/dshills/keycalc/internal/config"
	"github.com/dshills/keycalc/internal/dispatcher"
	"github.com/dshills/keycalc/internal/event"
	"github.com/dshills/keycalc/internal/input/key"
	"github.com/dshills/keycalc/internal/input/keymap"
	"github.com/dshills/keycalc/internal/renderer/backend"
)

// reloadRequest is posted by the config watcher.
type reloadRequest struct {
	path string
}

// stopRequest is posted when the Run context is cancelled.
type stopRequest struct{}

// Run initializes the backend and processes events until the quit action,
// backend shutdown, or ctx cancellation. Each event is handled to completion
// before the next is read.
func (app *Application) Run(ctx context.Context) error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return NewComponentError("backend", "init", err)
	}
	defer app.backend.Shutdown()

	app.view.Resize(app.backend.Size())
	for _, n := range app.startup {
		app.screen.Notify(n)
	}
	app.startup = nil

	app.startWatcher()
	defer app.stopWatcher()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = app.backend.PostEvent(backend.InterruptEvent(stopRequest{}))
		case <-stop:
		}
	}()

	app.refresh()
	for {
		ev := app.backend.PollEvent()
		switch ev.Type {
		case backend.EventNone:
			return nil
		case backend.EventKey:
			if err := app.HandleKey(ctx, ev.Key); errors.Is(err, ErrQuit) {
				return nil
			}
		case backend.EventResize:
			app.view.Resize(ev.Width, ev.Height)
		case backend.EventInterrupt:
			switch req := ev.Data.(type) {
			case stopRequest:
				return nil
			case reloadRequest:
				_ = app.Reload(ctx, req.path)
			}
		}
		app.refresh()
	}
}

// HandleKey resolves ev through the keymaps for the current mode and applies
// the bound action. Any key clears the previous notice. Errors the user
// should see are shown as a notice and returned; silent ones return nil.
func (app *Application) HandleKey(ctx context.Context, ev key.Event) error {
	if app.view != nil {
		app.view.KeyPressed("")
	}
	return app.surface(app.dispatcher.HandleKey(ctx, ev))
}

// surface decides what the user sees of a dispatch error.
func (app *Application) surface(err error) error {
	if dispatcher.IsSilent(err) {
		return nil
	}
	if errors.Is(err, ErrQuit) {
		return ErrQuit
	}
	var fe *calc.FormatError
	if !errors.As(err, &fe) {
		app.screen.Notify(err.Error())
	}
	return err
}

// Reload reads the config file again and applies its theme and keymap.
// On failure the previous settings stay in effect and a notice is shown.
func (app *Application) Reload(ctx context.Context, path string) error {
	opts := app.reloadOptions()
	cfg, err := config.Load(opts)
	if err == nil {
		err = keymap.ApplyOverrides(app.keymaps, cfg.Keymap)
	}
	if err != nil {
		app.logger.Warn("config reload failed", "component", "config", "path", path, "error", err)
		first, _, _ := strings.Cut(err.Error(), "\n")
		app.screen.Notify("config: " + first)
		app.bus.Emit(ctx, event.TopicConfigReloaded, "app", event.ConfigReloaded{Path: path, Err: err})
		return NewComponentError("config", "reload", err)
	}

	if cfg.UI.Theme != app.cfg.UI.Theme {
		if th, err := app.themes.Get(cfg.UI.Theme); err == nil {
			app.applyTheme(th)
		}
	}
	app.cfg = cfg
	app.logger.Info("config reloaded", "component", "config", "path", path)
	app.bus.Emit(ctx, event.TopicConfigReloaded, "app", event.ConfigReloaded{Path: path})
	return nil
}

func (app *Application) reloadOptions() config.LoadOptions {
	var opts config.LoadOptions
	if app.reload != nil {
		opts = *app.reload
	}
	if opts.Path == "" {
		opts.Path = app.cfg.Path
	}
	opts.KnownTheme = app.themes.Has
	return opts
}

func (app *Application) startWatcher() {
	if app.reload == nil || app.cfg.Path == "" {
		return
	}
	w, err := config.NewWatcher(app.cfg.Path, func(path string) {
		if err := app.backend.PostEvent(backend.InterruptEvent(reloadRequest{path: path})); err != nil {
			app.logger.Warn("config change dropped", "component", "config", "error", err)
		}
	}, config.WithWatchLogger(app.logger))
	if err != nil {
		app.logger.Warn("config watch disabled", "component", "config", "error", err)
		return
	}
	app.watcher = w
}

func (app *Application) stopWatcher() {
	if app.watcher == nil {
		return
	}
	_ = app.watcher.Close()
	app.watcher = nil
}

// refresh pushes engine state the view does not receive through the sinks,
// then paints.
func (app *Application) refresh() {
	if app.view == nil {
		return
	}
	app.view.SetPending(pendingLabel(app.engine.State()))
	app.view.Render()
}
