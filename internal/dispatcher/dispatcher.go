package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dshills/keycalc/internal/calc"
	"github.com/dshills/keycalc/internal/event"
	"github.com/dshills/keycalc/internal/input"
	"github.com/dshills/keycalc/internal/input/key"
	"github.com/dshills/keycalc/internal/input/keymap"
	"github.com/dshills/keycalc/internal/input/mode"
)

const source = "dispatcher"

// Dispatcher routes actions to the engine.
// Dispatch must be called from a single goroutine, the event loop.
type Dispatcher struct {
	mu sync.RWMutex

	engine  *calc.Engine
	modes   *mode.Manager
	keymaps *keymap.Registry
	bus     *event.Bus
	logger  *slog.Logger
	onTheme func(name string) error

	preHooks  []PreDispatchHook
	postHooks []PostDispatchHook

	metrics *Metrics

	// ctx is the context of the dispatch in progress, used by Observe.
	ctx context.Context
}

// New creates a dispatcher gated by the given mode manager.
func New(modes *mode.Manager, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		modes:  modes,
		logger: slog.New(slog.DiscardHandler),
		ctx:    context.Background(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = d.logger.With("component", source)

	modes.OnChange(func(from, to mode.Mode) {
		d.logger.Debug("mode changed", "from", from, "to", to)
		d.publish(event.TopicModeChanged, event.ModeChanged{From: from.String(), To: to.String()})
	})
	return d
}

// SetEngine sets the calculation engine.
func (d *Dispatcher) SetEngine(engine *calc.Engine) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.engine = engine
}

// Engine returns the calculation engine.
func (d *Dispatcher) Engine() *calc.Engine {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.engine
}

// Modes returns the mode manager.
func (d *Dispatcher) Modes() *mode.Manager {
	return d.modes
}

// Metrics returns the metrics collector, or nil when metrics are disabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Observe is a calc.Observer that publishes each evaluation.
func (d *Dispatcher) Observe(ev calc.Evaluation) {
	d.logger.Debug("evaluated", "expr", ev.Expr, "result", ev.Display)
	d.publish(event.TopicEvaluated, event.Evaluated{
		Expr:    ev.Expr,
		Result:  ev.Result,
		Display: ev.Display,
		Mode:    d.modes.Current().String(),
	})
}

// HandleKey resolves ev through the keymaps for the current mode and
// dispatches the bound action.
func (d *Dispatcher) HandleKey(ctx context.Context, ev key.Event) error {
	if d.keymaps == nil {
		return ErrUnbound
	}
	b, ok := d.keymaps.Lookup(d.modes.Current(), ev)
	if !ok {
		d.logger.Debug("unbound key", "key", ev.String(), "mode", d.modes.Current())
		return fmt.Errorf("%w: %s", ErrUnbound, ev)
	}
	return d.Dispatch(ctx, b.Act)
}

// DispatchAll dispatches actions in order, stopping at the first error that
// is not silent. It returns the number of actions dispatched before the
// failing one, so callers can report it and resume after it.
func (d *Dispatcher) DispatchAll(ctx context.Context, actions []input.Action) (int, error) {
	for i, a := range actions {
		if err := d.Dispatch(ctx, a); !IsSilent(err) {
			return i, err
		}
	}
	return len(actions), nil
}

// Dispatch applies one action.
func (d *Dispatcher) Dispatch(ctx context.Context, action input.Action) (err error) {
	engine := d.Engine()
	if engine == nil {
		return ErrNoEngine
	}

	pre, post := d.hooks()
	for _, h := range pre {
		if !h.PreDispatch(&action) {
			d.logger.Debug("action cancelled", "action", action.String())
			return ErrActionCancelled
		}
	}
	defer func() {
		for _, h := range post {
			h.PostDispatch(action, err)
		}
	}()

	current := d.modes.Current()
	if c := action.Capability(); !current.Allows(c) {
		d.logger.Debug("action not available", "action", action.String(), "mode", current, "needs", c)
		d.record(action.Kind, true, false)
		return fmt.Errorf("%w: %s in %s", ErrNotAvailable, action, current)
	}

	prev := d.ctx
	d.ctx = ctx
	defer func() { d.ctx = prev }()

	err = d.apply(engine, action)
	d.record(action.Kind, false, err != nil && !IsSilent(err))
	d.report(action, err)
	return err
}

func (d *Dispatcher) apply(engine *calc.Engine, a input.Action) error {
	switch a.Kind {
	case input.KindDigit:
		return engine.Digit(a.Digit)
	case input.KindPoint:
		engine.Point()
	case input.KindSeparator:
		engine.Separator()
	case input.KindOperator:
		return engine.Binary(a.Op)
	case input.KindEquals:
		return engine.Equals()
	case input.KindBackspace:
		engine.Backspace()
	case input.KindClear:
		engine.Clear()
	case input.KindUnary:
		return engine.Unary(a.Func)
	case input.KindRadix:
		return engine.Convert(a.Radix)
	case input.KindAggregate:
		return engine.Aggregate(a.Aggregate)
	case input.KindModeChange:
		return d.modes.Switch(a.Mode)
	case input.KindTheme:
		if d.onTheme == nil {
			return nil
		}
		return d.onTheme(a.Theme)
	case input.KindQuit:
		return ErrQuit
	default:
		return fmt.Errorf("%w: %s", ErrInvalidAction, a)
	}
	return nil
}

// report logs the outcome and publishes notices.
func (d *Dispatcher) report(a input.Action, err error) {
	if err == nil || errors.Is(err, ErrQuit) {
		return
	}
	var fe *calc.FormatError
	switch {
	case errors.As(err, &fe):
		d.logger.Info("format error", "op", fe.Op, "input", fe.Input, "error", fe.Err)
		d.publish(event.TopicNotice, event.Notice{Message: fe.Message, Op: fe.Op, Input: fe.Input})
	case isInvalidOperand(err):
		d.logger.Debug("invalid operand ignored", "action", a.String())
	default:
		d.logger.Warn("action failed", "action", a.String(), "error", err)
	}
}

func (d *Dispatcher) record(kind input.Kind, rejected, failed bool) {
	if d.metrics != nil {
		d.metrics.Record(kind, rejected, failed)
	}
}

func (d *Dispatcher) publish(topic event.Topic, payload any) {
	if d.bus == nil {
		return
	}
	d.bus.Emit(d.ctx, topic, source, payload)
}

func isInvalidOperand(err error) bool {
	return errors.Is(err, calc.ErrInvalidOperand)
}
