package event

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestTopicMatches(t *testing.T) {
	tests := []struct {
		pattern Topic
		topic   Topic
		want    bool
	}{
		{"calc.evaluated", "calc.evaluated", true},
		{"calc.evaluated", "calc.notice", false},
		{"calc.*", "calc.notice", true},
		{"calc.*", "mode.changed", false},
		{"*", "config.reloaded", true},
	}
	for _, tt := range tests {
		if got := tt.pattern.Matches(tt.topic); got != tt.want {
			t.Errorf("%q.Matches(%q) = %v, want %v", tt.pattern, tt.topic, got, tt.want)
		}
	}
}

func TestTopicValid(t *testing.T) {
	for _, topic := range []Topic{"calc.evaluated", "calc.*", "*", "a"} {
		if !topic.Valid() {
			t.Errorf("%q should be valid", topic)
		}
	}
	for _, topic := range []Topic{"", "calc..x", ".calc", "."} {
		if topic.Valid() {
			t.Errorf("%q should be invalid", topic)
		}
	}
}

func TestNewEvent(t *testing.T) {
	a := New(TopicEvaluated, "test", Evaluated{Expr: "1 + 1", Result: 2})
	b := New(TopicEvaluated, "test", nil)
	if a.ID == uuid.Nil || a.ID == b.ID {
		t.Errorf("expected distinct non-nil ids, got %s and %s", a.ID, b.ID)
	}
	if a.Time.IsZero() {
		t.Error("expected timestamp")
	}
	if p, ok := a.Payload.(Evaluated); !ok || p.Result != 2 {
		t.Errorf("unexpected payload %#v", a.Payload)
	}
}

func TestPublishOrder(t *testing.T) {
	bus := NewBus()
	var got []string

	_, _ = bus.SubscribeFunc("calc.*", func(ev Event) { got = append(got, "wild:"+ev.Topic.String()) })
	_, _ = bus.SubscribeFunc(TopicEvaluated, func(ev Event) { got = append(got, "exact") })
	_, _ = bus.SubscribeFunc(TopicModeChanged, func(ev Event) { got = append(got, "mode") })

	if err := bus.Publish(context.Background(), New(TopicEvaluated, "test", nil)); err != nil {
		t.Fatalf("Publish error = %v", err)
	}

	want := []string{"wild:calc.evaluated", "exact"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("delivery %d = %q, want %q", i, got[i], want[i])
		}
	}

	stats := bus.Stats()
	if stats.Published != 1 || stats.Delivered != 2 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestPublishRecoversPanic(t *testing.T) {
	bus := NewBus()
	reached := false

	_, _ = bus.SubscribeFunc("*", func(ev Event) { panic("boom") })
	_, _ = bus.SubscribeFunc("*", func(ev Event) { reached = true })

	err := bus.Publish(context.Background(), New(TopicNotice, "test", Notice{Message: "x"}))
	if !errors.Is(err, ErrHandlerPanic) {
		t.Errorf("expected ErrHandlerPanic, got %v", err)
	}
	var pe *PanicError
	if !errors.As(err, &pe) || pe.Value != "boom" {
		t.Errorf("expected PanicError with value boom, got %v", err)
	}
	if !reached {
		t.Error("handler after the panicking one was not called")
	}
	if bus.Stats().Panics != 1 {
		t.Errorf("expected 1 panic, got %d", bus.Stats().Panics)
	}
}

func TestPublishHandlerError(t *testing.T) {
	bus := NewBus()
	sentinel := errors.New("disk full")
	_, _ = bus.Subscribe(TopicEvaluated, func(ctx context.Context, ev Event) error { return sentinel })

	err := bus.Publish(context.Background(), New(TopicEvaluated, "test", nil))
	if !errors.Is(err, sentinel) {
		t.Errorf("expected wrapped sentinel, got %v", err)
	}
	var he *HandlerError
	if !errors.As(err, &he) || he.Topic != TopicEvaluated {
		t.Errorf("expected HandlerError for %s, got %v", TopicEvaluated, err)
	}
}

func TestPublishInvalidTopic(t *testing.T) {
	bus := NewBus()
	if err := bus.Publish(context.Background(), New("calc.*", "test", nil)); !errors.Is(err, ErrInvalidTopic) {
		t.Errorf("expected ErrInvalidTopic, got %v", err)
	}
	if err := bus.Publish(context.Background(), Event{}); !errors.Is(err, ErrInvalidTopic) {
		t.Errorf("expected ErrInvalidTopic, got %v", err)
	}
}

func TestPublishCancelledContext(t *testing.T) {
	bus := NewBus()
	called := false
	_, _ = bus.SubscribeFunc("*", func(ev Event) { called = true })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := bus.Publish(ctx, New(TopicNotice, "test", nil))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if called {
		t.Error("handler should not run on a cancelled context")
	}
}

func TestSubscribeValidation(t *testing.T) {
	bus := NewBus()
	if _, err := bus.Subscribe("", func(context.Context, Event) error { return nil }); !errors.Is(err, ErrInvalidTopic) {
		t.Errorf("expected ErrInvalidTopic, got %v", err)
	}
	if _, err := bus.Subscribe("calc.*", nil); !errors.Is(err, ErrNilHandler) {
		t.Errorf("expected ErrNilHandler, got %v", err)
	}
}

func TestUnsubscribe(t *testing.T) {
	bus := NewBus()
	count := 0
	sub, _ := bus.SubscribeFunc("*", func(ev Event) { count++ })

	bus.Emit(context.Background(), TopicNotice, "test", nil)
	if err := bus.Unsubscribe(sub); err != nil {
		t.Fatalf("Unsubscribe error = %v", err)
	}
	bus.Emit(context.Background(), TopicNotice, "test", nil)

	if count != 1 {
		t.Errorf("expected 1 delivery, got %d", count)
	}
	if bus.SubscriberCount() != 0 {
		t.Errorf("expected 0 subscribers, got %d", bus.SubscriberCount())
	}
	if err := bus.Unsubscribe(sub); !errors.Is(err, ErrSubscriptionNotFound) {
		t.Errorf("expected ErrSubscriptionNotFound, got %v", err)
	}
}
