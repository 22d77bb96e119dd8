package app

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/dshills/keycalc/internal/calc"
	"github.com/dshills/keycalc/internal/config"
	"github.com/dshills/keycalc/internal/dispatcher"
	"github.com/dshills/keycalc/internal/event"
	"github.com/dshills/keycalc/internal/input"
	"github.com/dshills/keycalc/internal/input/keymap"
	"github.com/dshills/keycalc/internal/input/mode"
	"github.com/dshills/keycalc/internal/plugin/lua"
	"github.com/dshills/keycalc/internal/renderer"
	"github.com/dshills/keycalc/internal/renderer/backend"
	"github.com/dshills/keycalc/internal/tape"
	"github.com/dshills/keycalc/internal/theme"
)

// Application is the central coordinator for all keycalc components.
type Application struct {
	cfg    *config.Config
	logger *slog.Logger

	bus        *event.Bus
	modes      *mode.Manager
	keymaps    *keymap.Registry
	themes     *theme.Registry
	engine     *calc.Engine
	dispatcher *dispatcher.Dispatcher
	screen     *screen

	store    tape.Store
	recorder *tape.Recorder
	scripts  *lua.State

	backend  backend.Backend
	view     *renderer.View
	viewOpts renderer.Options
	theme    *theme.Theme

	reload  *config.LoadOptions
	watcher *config.Watcher

	// startup holds notices to show once the screen is up.
	startup []string

	running atomic.Bool
}

// New creates an application from cfg. Plugin script errors are not fatal:
// they are logged and shown as a notice when Run starts.
func New(cfg *config.Config, opts ...Option) (*Application, error) {
	app := &Application{
		cfg:      cfg,
		logger:   slog.New(slog.DiscardHandler),
		viewOpts: renderer.DefaultOptions(),
		screen:   &screen{display: "0"},
	}
	for _, opt := range opts {
		opt(app)
	}
	app.viewOpts.ShowHints = cfg.UI.Hints

	if err := app.bootstrap(); err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	log := app.logger.With("component", "app")

	// 1. Event bus
	app.bus = event.NewBus(event.WithLogger(app.logger))

	// 2. Themes
	app.themes = theme.NewRegistry()
	th, err := app.themes.Get(app.cfg.UI.Theme)
	if err != nil {
		return NewComponentError("theme", "select", err)
	}
	app.theme = th

	// 3. Modes and keymaps
	app.modes = mode.NewManager(app.cfg.StartMode())
	app.keymaps = keymap.NewRegistry()
	if err := keymap.LoadDefaults(app.keymaps); err != nil {
		return NewComponentError("keymap", "load defaults", err)
	}
	if err := keymap.ApplyOverrides(app.keymaps, app.cfg.Keymap); err != nil {
		return NewComponentError("keymap", "apply overrides", err)
	}

	// 4. History tape
	if err := app.openTape(); err != nil {
		return err
	}

	// 5. Dispatcher and engine
	app.dispatcher = dispatcher.New(app.modes,
		dispatcher.WithBus(app.bus),
		dispatcher.WithLogger(app.logger),
		dispatcher.WithKeymaps(app.keymaps),
		dispatcher.WithThemeHandler(app.switchTheme),
		dispatcher.WithMetrics(),
	)
	app.engine = calc.New(
		calc.WithDisplay(app.screen),
		calc.WithNotifier(app.screen),
		calc.WithObserver(app.dispatcher.Observe),
	)
	app.dispatcher.SetEngine(app.engine)

	// 6. Lua functions
	if len(app.cfg.Plugins.Scripts) > 0 {
		app.scripts = lua.NewState(
			lua.WithExecutionTimeout(app.cfg.PluginTimeout()),
			lua.WithLogger(app.logger),
		)
		if err := app.scripts.Load(app.engine, app.cfg.Plugins.Scripts...); err != nil {
			log.Warn("plugin scripts failed", "error", err)
			app.startup = append(app.startup, NewComponentError("plugins", "load", err).Error())
		}
		log.Debug("plugin functions loaded", "functions", app.scripts.Functions())
	}

	// 7. View
	if app.backend != nil {
		app.view = renderer.New(app.backend, app.theme, app.keymaps, app.viewOpts)
		app.view.SetMode(app.modes.Current())
		app.screen.view = app.view
		app.dispatcher.AddPreHook(dispatcher.PreDispatchFunc(func(a *input.Action) bool {
			app.view.KeyPressed(a.String())
			return true
		}))
		app.modes.OnChange(func(_, to mode.Mode) {
			app.view.SetMode(to)
		})
	}

	return nil
}

func (app *Application) openTape() error {
	if app.store == nil {
		if !app.cfg.History.Enabled {
			return nil
		}
		if app.cfg.History.Path == "" {
			app.store = tape.NewMemoryStore(app.cfg.History.Limit)
		} else {
			store, err := tape.OpenSQLite(app.cfg.History.Path, app.cfg.History.Limit)
			if err != nil {
				return NewComponentError("tape", "open", err)
			}
			app.store = store
		}
	}
	app.recorder = tape.NewRecorder(app.store, app.logger)
	if err := app.recorder.Attach(app.bus); err != nil {
		return NewComponentError("tape", "attach", err)
	}
	return nil
}

// Close releases the history store and the Lua state.
func (app *Application) Close() {
	if app.recorder != nil {
		app.recorder.Detach()
	}
	if app.store != nil {
		if err := app.store.Close(); err != nil && !errors.Is(err, tape.ErrClosed) {
			app.logger.Warn("closing history", "error", err)
		}
	}
	if app.scripts != nil {
		app.scripts.Close()
	}
	if m := app.dispatcherMetrics(); m != nil {
		snap := m.Snapshot()
		app.logger.Debug("session ended",
			"component", "app",
			"dispatched", snap.TotalDispatches,
			"rejected", snap.TotalRejected,
			"errors", snap.TotalErrors,
		)
	}
}

func (app *Application) dispatcherMetrics() *dispatcher.Metrics {
	if app.dispatcher == nil {
		return nil
	}
	return app.dispatcher.Metrics()
}

// switchTheme is the dispatcher's theme handler. "next" or "" cycles.
func (app *Application) switchTheme(name string) error {
	if name == "" || name == "next" {
		name = app.themes.Next(app.theme.Name)
	}
	th, err := app.themes.Get(name)
	if err != nil {
		return err
	}
	app.applyTheme(th)
	return nil
}

func (app *Application) applyTheme(th *theme.Theme) {
	if app.theme != nil && app.theme.Name == th.Name {
		return
	}
	app.theme = th
	if app.view != nil {
		app.view.SetTheme(th)
	}
	app.bus.Emit(context.Background(), event.TopicThemeChanged, "app", event.ThemeChanged{Name: th.Name})
}

// Config returns the configuration in effect.
func (app *Application) Config() *config.Config { return app.cfg }

// Bus returns the event bus.
func (app *Application) Bus() *event.Bus { return app.bus }

// Engine returns the calculation engine.
func (app *Application) Engine() *calc.Engine { return app.engine }

// Dispatcher returns the action dispatcher.
func (app *Application) Dispatcher() *dispatcher.Dispatcher { return app.dispatcher }

// Modes returns the mode manager.
func (app *Application) Modes() *mode.Manager { return app.modes }

// Keymaps returns the keymap registry.
func (app *Application) Keymaps() *keymap.Registry { return app.keymaps }

// Theme returns the active theme.
func (app *Application) Theme() *theme.Theme { return app.theme }

// View returns the view, nil when headless.
func (app *Application) View() *renderer.View { return app.view }

// Recorder returns the history recorder, nil when history is disabled.
func (app *Application) Recorder() *tape.Recorder { return app.recorder }

// Store returns the history store, nil when history is disabled.
func (app *Application) Store() tape.Store { return app.store }

// pendingLabel is the status line text for the engine's pending operator.
func pendingLabel(st calc.State) string {
	switch st.Pending {
	case calc.OpNone, calc.OpEquals:
		return ""
	case calc.OpFunc:
		return st.PendingFunc
	default:
		return st.Pending.String()
	}
}

// screen fans the engine's display and notices out to the view and keeps
// them for headless callers.
type screen struct {
	view    *renderer.View
	display string
	notices []string
}

func (s *screen) SetDisplay(text string) {
	s.display = text
	if s.view != nil {
		s.view.SetDisplay(text)
	}
}

func (s *screen) Notify(message string) {
	s.notices = append(s.notices, message)
	if s.view != nil {
		s.view.Notify(message)
	}
}

func (s *screen) takeNotices() []string {
	n := s.notices
	s.notices = nil
	return n
}
