package tape

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/keycalc/internal/event"
)

// Recorder turns calc.evaluated events into tape entries.
type Recorder struct {
	mu      sync.Mutex
	store   Store
	session uuid.UUID
	seq     int
	now     func() time.Time
	logger  *slog.Logger
	sub     *event.Subscription
	bus     *event.Bus
}

// NewRecorder creates a recorder with a fresh session id.
func NewRecorder(store Store, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Recorder{
		store:   store,
		session: uuid.New(),
		now:     time.Now,
		logger:  logger.With("component", "tape"),
	}
}

// Session returns the id entries are recorded under.
func (r *Recorder) Session() uuid.UUID {
	return r.session
}

// Attach subscribes the recorder to bus. Calling Attach again moves the
// subscription.
func (r *Recorder) Attach(bus *event.Bus) error {
	r.Detach()
	sub, err := bus.Subscribe(event.TopicEvaluated, r.handle)
	if err != nil {
		return fmt.Errorf("attach tape recorder: %w", err)
	}
	r.mu.Lock()
	r.sub, r.bus = &sub, bus
	r.mu.Unlock()
	return nil
}

// Detach removes the bus subscription, if any.
func (r *Recorder) Detach() {
	r.mu.Lock()
	sub, bus := r.sub, r.bus
	r.sub, r.bus = nil, nil
	r.mu.Unlock()
	if sub != nil {
		_ = bus.Unsubscribe(*sub)
	}
}

// Record appends one evaluation to the store.
func (r *Recorder) Record(ctx context.Context, ev event.Evaluated) (Entry, error) {
	r.mu.Lock()
	r.seq++
	e := Entry{
		Session: r.session,
		Seq:     r.seq,
		Expr:    ev.Expr,
		Result:  ev.Result,
		Display: ev.Display,
		Mode:    ev.Mode,
		Time:    r.now(),
	}
	r.mu.Unlock()

	stored, err := r.store.Append(ctx, e)
	if err != nil {
		r.logger.Warn("history append failed", "expr", e.Expr, "error", err)
		return Entry{}, err
	}
	r.logger.Debug("recorded", "seq", stored.Seq, "expr", stored.Expr, "result", stored.Display)
	return stored, nil
}

func (r *Recorder) handle(ctx context.Context, ev event.Event) error {
	payload, ok := ev.Payload.(event.Evaluated)
	if !ok {
		return fmt.Errorf("tape: unexpected payload %T on %s", ev.Payload, ev.Topic)
	}
	_, err := r.Record(ctx, payload)
	return err
}
