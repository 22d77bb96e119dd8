package event

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Handler processes a delivered event.
type Handler func(ctx context.Context, ev Event) error

// Subscription identifies a registered handler.
type Subscription struct {
	ID      string
	Pattern Topic
}

type subscriber struct {
	sub     Subscription
	handler Handler
}

// Stats holds delivery counters.
type Stats struct {
	Published uint64
	Delivered uint64
	Failed    uint64
	Panics    uint64
}

// Bus is a synchronous topic bus. It is safe for concurrent use, but handlers
// run on the publisher's goroutine.
type Bus struct {
	mu   sync.RWMutex
	subs []subscriber

	logger *slog.Logger

	published atomic.Uint64
	delivered atomic.Uint64
	failed    atomic.Uint64
	panics    atomic.Uint64
}

// NewBus creates an event bus.
func NewBus(opts ...BusOption) *Bus {
	b := &Bus{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers handler for topics matching pattern.
func (b *Bus) Subscribe(pattern Topic, handler Handler) (Subscription, error) {
	if !pattern.Valid() {
		return Subscription{}, fmt.Errorf("%w: %q", ErrInvalidTopic, pattern)
	}
	if handler == nil {
		return Subscription{}, ErrNilHandler
	}

	sub := Subscription{ID: uuid.NewString(), Pattern: pattern}

	b.mu.Lock()
	b.subs = append(b.subs, subscriber{sub: sub, handler: handler})
	b.mu.Unlock()

	return sub, nil
}

// SubscribeFunc registers a handler that cannot fail.
func (b *Bus) SubscribeFunc(pattern Topic, fn func(ev Event)) (Subscription, error) {
	if fn == nil {
		return Subscription{}, ErrNilHandler
	}
	return b.Subscribe(pattern, func(_ context.Context, ev Event) error {
		fn(ev)
		return nil
	})
}

// Unsubscribe removes a subscription.
func (b *Bus) Unsubscribe(sub Subscription) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.subs {
		if s.sub.ID == sub.ID {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return nil
		}
	}
	return ErrSubscriptionNotFound
}

// Publish delivers ev to every matching handler in subscription order.
// Handler errors and panics do not stop delivery; they are logged and
// returned joined.
func (b *Bus) Publish(ctx context.Context, ev Event) error {
	if !ev.Topic.Valid() || strings.HasSuffix(string(ev.Topic), "*") {
		return fmt.Errorf("%w: %q", ErrInvalidTopic, ev.Topic)
	}
	b.published.Add(1)

	// Copy matching subscribers to call outside of lock
	b.mu.RLock()
	targets := make([]subscriber, 0, len(b.subs))
	for _, s := range b.subs {
		if s.sub.Pattern.Matches(ev.Topic) {
			targets = append(targets, s)
		}
	}
	b.mu.RUnlock()

	var errs []error
	for _, s := range targets {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := b.deliver(ctx, s, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Emit creates and publishes an event, logging instead of returning errors.
// It is the convenience used by components that cannot act on a failed
// delivery.
func (b *Bus) Emit(ctx context.Context, topic Topic, source string, payload any) {
	if err := b.Publish(ctx, New(topic, source, payload)); err != nil {
		b.logger.Debug("event delivery failed", "topic", topic, "error", err)
	}
}

func (b *Bus) deliver(ctx context.Context, s subscriber, ev Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b.panics.Add(1)
			b.logger.Error("event handler panicked",
				"topic", ev.Topic, "subscription", s.sub.ID, "panic", r)
			err = &PanicError{SubscriptionID: s.sub.ID, Topic: ev.Topic, Value: r}
		}
	}()

	if herr := s.handler(ctx, ev); herr != nil {
		b.failed.Add(1)
		b.logger.Warn("event handler failed",
			"topic", ev.Topic, "subscription", s.sub.ID, "error", herr)
		return &HandlerError{SubscriptionID: s.sub.ID, Topic: ev.Topic, Err: herr}
	}
	b.delivered.Add(1)
	return nil
}

// SubscriberCount returns the number of active subscriptions.
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Stats returns a snapshot of the delivery counters.
func (b *Bus) Stats() Stats {
	return Stats{
		Published: b.published.Load(),
		Delivered: b.delivered.Load(),
		Failed:    b.failed.Load(),
		Panics:    b.panics.Load(),
	}
}
