package event

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Topic is a dot-separated event name.
type Topic string

// Topics published by keycalc.
const (
	TopicEvaluated      Topic = "calc.evaluated"
	TopicNotice         Topic = "calc.notice"
	TopicModeChanged    Topic = "mode.changed"
	TopicThemeChanged   Topic = "theme.changed"
	TopicConfigReloaded Topic = "config.reloaded"
)

// String returns the topic name.
func (t Topic) String() string {
	return string(t)
}

// Matches reports whether the pattern t matches topic. A trailing "*" matches
// any suffix, including the empty one.
func (t Topic) Matches(topic Topic) bool {
	if prefix, ok := strings.CutSuffix(string(t), "*"); ok {
		return strings.HasPrefix(string(topic), prefix)
	}
	return t == topic
}

// Valid reports whether t is non-empty and has no empty segments.
func (t Topic) Valid() bool {
	if t == "" {
		return false
	}
	s := strings.TrimSuffix(string(t), "*")
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return t == "*"
	}
	for _, seg := range strings.Split(s, ".") {
		if seg == "" {
			return false
		}
	}
	return true
}

// Event is a published occurrence. Events are immutable once created.
type Event struct {
	// ID is a unique identifier for this event instance.
	ID uuid.UUID

	// Topic is the event name.
	Topic Topic

	// Time is when the event was created.
	Time time.Time

	// Source identifies the component that published the event.
	Source string

	// Payload carries the event data, one of the payload types in this
	// package for keycalc topics.
	Payload any
}

// New creates an event with a fresh ID and the current time.
func New(topic Topic, source string, payload any) Event {
	return Event{
		ID:      uuid.New(),
		Topic:   topic,
		Time:    time.Now(),
		Source:  source,
		Payload: payload,
	}
}
