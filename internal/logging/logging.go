// Package logging provides helpers for structured, colorized logging across the application.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

// Level represents a structured log level used by keycalc.
type Level slog.Level

const (
	// LevelDebug represents the debug logging level.
	LevelDebug Level = Level(slog.LevelDebug)
	// LevelInfo represents the informational logging level.
	LevelInfo Level = Level(slog.LevelInfo)
	// LevelWarn represents the warning logging level.
	LevelWarn Level = Level(slog.LevelWarn)
	// LevelError represents the error logging level.
	LevelError Level = Level(slog.LevelError)
)

// String returns the lowercase level name.
func (l Level) String() string {
	return strings.ToLower(slog.Level(l).String())
}

// ParseLevel converts a textual log level into a Level value.
// Unknown values map to LevelInfo.
func ParseLevel(value string) Level {
	l, _ := LookupLevel(value)
	return l
}

// LookupLevel is like ParseLevel but reports whether value named a level.
// The empty string is accepted as LevelInfo.
func LookupLevel(value string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return LevelDebug, true
	case "", "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	default:
		return LevelInfo, false
	}
}

// NewLogger constructs a slog.Logger configured with a tint handler and level.
// Color is disabled when w is not a terminal.
func NewLogger(w io.Writer, level Level) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	handler := tint.NewHandler(w, &tint.Options{
		Level:   slog.Level(level),
		NoColor: !isTerminal(w),
	})

	return slog.New(handler)
}

// OpenFile returns a logger appending to the file at path, creating parent
// directories as needed. The caller closes the returned file.
func OpenFile(path string, level Level) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	handler := tint.NewHandler(f, &tint.Options{
		Level:      slog.Level(level),
		NoColor:    true,
		TimeFormat: time.RFC3339,
	})
	return slog.New(handler), f, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
