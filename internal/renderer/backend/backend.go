// Package backend provides terminal backend abstraction for the renderer.
package backend

import (
	"errors"

	"github.com/dshills/keycalc/internal/input/key"
	"github.com/dshills/keycalc/internal/renderer/core"
)

// ErrEventQueueFull is returned by PostEvent when the event could not be queued.
var ErrEventQueueFull = errors.New("event queue full")

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventInterrupt
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Event

	// Width and Height are set for EventResize.
	Width, Height int

	// Data carries the payload of an EventInterrupt. Background goroutines
	// use interrupts to hand work to the event loop.
	Data any
}

// KeyEvent wraps a key event.
func KeyEvent(ev key.Event) Event {
	return Event{Type: EventKey, Key: ev}
}

// InterruptEvent wraps an arbitrary payload.
func InterruptEvent(data any) Event {
	return Event{Type: EventInterrupt, Data: data}
}

// Backend defines the interface for terminal/display backends.
// Implementations handle actual drawing to the terminal or other display surfaces.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetCell sets a single cell at the given position.
	// Positions outside the terminal are silently ignored.
	SetCell(x, y int, cell core.Cell)

	// Fill fills a rectangular region with the given cell.
	Fill(rect core.ScreenRect, cell core.Cell)

	// Clear clears the entire screen with the default style.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	// HideCursor hides the cursor.
	HideCursor()

	// PollEvent waits for and returns the next terminal event.
	// It returns an EventNone event once the backend is shut down.
	PollEvent() Event

	// PostEvent queues a synthetic event. It is safe to call from any goroutine.
	PostEvent(ev Event) error

	// Beep produces an audible or visual bell.
	Beep()
}

// DrawString writes s starting at (x, y) and returns the column after the
// last cell written. Cells past maxX are dropped.
func DrawString(b Backend, x, y, maxX int, s string, style core.Style) int {
	for _, cell := range core.CellsFromString(s, style) {
		if x >= maxX {
			break
		}
		if !cell.IsContinuation() && x+cell.Width > maxX {
			break
		}
		b.SetCell(x, y, cell)
		x++
	}
	return x
}
