package tape

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// DefaultMemoryCapacity is the ring size used when none is given.
const DefaultMemoryCapacity = 256

// MemoryStore keeps the most recent entries in a fixed-size ring.
type MemoryStore struct {
	mu     sync.Mutex
	ring   []Entry
	next   int // Slot for the next append
	count  int
	lastID int64
	closed bool
}

// NewMemoryStore creates a ring holding up to capacity entries.
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	return &MemoryStore{ring: make([]Entry, capacity)}
}

func (s *MemoryStore) Append(_ context.Context, e Entry) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Entry{}, ErrClosed
	}
	s.lastID++
	e.ID = s.lastID
	s.ring[s.next] = e
	s.next = (s.next + 1) % len(s.ring)
	if s.count < len(s.ring) {
		s.count++
	}
	return e, nil
}

func (s *MemoryStore) Latest(_ context.Context, limit int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}
	if limit <= 0 || limit > s.count {
		limit = s.count
	}
	out := make([]Entry, 0, limit)
	for i := 1; i <= limit; i++ {
		out = append(out, s.ring[(s.next-i+len(s.ring))%len(s.ring)])
	}
	return out, nil
}

func (s *MemoryStore) Session(ctx context.Context, id uuid.UUID) ([]Entry, error) {
	all, err := s.Latest(ctx, 0)
	if err != nil {
		return nil, err
	}
	var out []Entry
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].Session == id {
			out = append(out, all[i])
		}
	}
	return out, nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	clear(s.ring)
	s.next, s.count = 0, 0
	return nil
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Len returns the number of entries held.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}
