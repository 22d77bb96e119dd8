package tape

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("tape store closed")

// Entry is one recorded evaluation.
type Entry struct {
	// ID is assigned by the store on Append.
	ID int64

	// Session identifies the calculator run the entry came from.
	Session uuid.UUID

	// Seq numbers entries within a session, starting at 1.
	Seq int

	Expr    string
	Result  float64
	Display string
	Mode    string
	Time    time.Time
}

// Store persists tape entries.
type Store interface {
	// Append stores e and returns it with ID set.
	Append(ctx context.Context, e Entry) (Entry, error)

	// Latest returns up to limit entries, newest first.
	Latest(ctx context.Context, limit int) ([]Entry, error)

	// Session returns a session's entries in Seq order.
	Session(ctx context.Context, id uuid.UUID) ([]Entry, error)

	// Clear removes every entry.
	Clear(ctx context.Context) error

	Close() error
}
