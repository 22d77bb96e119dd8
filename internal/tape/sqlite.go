package tape

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// result is NULL for NaN, which SQLite cannot store as a REAL.
const schema = `
CREATE TABLE IF NOT EXISTS entries (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	session TEXT    NOT NULL,
	seq     INTEGER NOT NULL,
	expr    TEXT    NOT NULL,
	result  REAL,
	display TEXT    NOT NULL,
	mode    TEXT    NOT NULL,
	ts      INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS entries_session ON entries (session, seq);
`

// SQLiteStore persists entries in a SQLite database.
type SQLiteStore struct {
	mu     sync.Mutex
	conn   *sql.DB
	limit  int
	closed bool
}

// OpenSQLite opens (creating if needed) the database at path. When limit is
// positive only the newest limit entries are kept.
func OpenSQLite(path string, limit int) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history %s: %w", path, err)
	}
	// A single connection keeps ":memory:" databases coherent and serializes
	// writers.
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}
	return &SQLiteStore{conn: conn, limit: limit}, nil
}

func (s *SQLiteStore) Append(ctx context.Context, e Entry) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Entry{}, ErrClosed
	}
	res, err := s.conn.ExecContext(ctx,
		"INSERT INTO entries (session, seq, expr, result, display, mode, ts) VALUES (?, ?, ?, ?, ?, ?, ?)",
		e.Session.String(), e.Seq, e.Expr, nullableResult(e.Result), e.Display, e.Mode, e.Time.UnixNano())
	if err != nil {
		return Entry{}, fmt.Errorf("append history entry: %w", err)
	}
	if e.ID, err = res.LastInsertId(); err != nil {
		return Entry{}, fmt.Errorf("append history entry: %w", err)
	}
	if s.limit > 0 {
		if _, err := s.conn.ExecContext(ctx,
			"DELETE FROM entries WHERE id <= (SELECT id FROM entries ORDER BY id DESC LIMIT 1 OFFSET ?)",
			s.limit); err != nil {
			return e, fmt.Errorf("prune history: %w", err)
		}
	}
	return e, nil
}

func (s *SQLiteStore) Latest(ctx context.Context, limit int) ([]Entry, error) {
	q := "SELECT id, session, seq, expr, result, display, mode, ts FROM entries ORDER BY id DESC"
	var args []any
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}
	return s.query(ctx, q, args...)
}

func (s *SQLiteStore) Session(ctx context.Context, id uuid.UUID) ([]Entry, error) {
	return s.query(ctx,
		"SELECT id, session, seq, expr, result, display, mode, ts FROM entries WHERE session = ? ORDER BY seq",
		id.String())
}

func (s *SQLiteStore) query(ctx context.Context, q string, args ...any) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}
	rows, err := s.conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e       Entry
			session string
			result  sql.NullFloat64
			ts      int64
		)
		if err := rows.Scan(&e.ID, &session, &e.Seq, &e.Expr, &result, &e.Display, &e.Mode, &ts); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		e.Result = math.NaN()
		if result.Valid {
			e.Result = result.Float64
		}
		if e.Session, err = uuid.Parse(session); err != nil {
			return nil, fmt.Errorf("scan history: session %q: %w", session, err)
		}
		e.Time = time.Unix(0, ts)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if _, err := s.conn.ExecContext(ctx, "DELETE FROM entries"); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.conn.Close()
}

func nullableResult(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: !math.IsNaN(v)}
}
