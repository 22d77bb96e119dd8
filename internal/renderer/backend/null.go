package backend

import (
	"sync"

	"github.com/dshills/keycalc/internal/renderer/core"
)

// NullBackend is an in-memory backend for tests and headless runs.
type NullBackend struct {
	mu       sync.Mutex
	grid     *Grid
	events   chan Event
	done     chan struct{}
	shutdown sync.Once
	shows    int
	beeps    int
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		grid:   NewGrid(width, height),
		events: make(chan Event, 100),
		done:   make(chan struct{}),
	}
}

func (b *NullBackend) Init() error { return nil }

func (b *NullBackend) Shutdown() {
	b.shutdown.Do(func() { close(b.done) })
}

func (b *NullBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.grid.Size()
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.grid.SetCell(x, y, cell)
}

func (b *NullBackend) Fill(rect core.ScreenRect, cell core.Cell) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.grid.Fill(rect, cell)
}

func (b *NullBackend) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.grid.Clear()
}

func (b *NullBackend) Show() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.shows++
}

func (b *NullBackend) HideCursor() {}

func (b *NullBackend) PollEvent() Event {
	select {
	case ev := <-b.events:
		return ev
	case <-b.done:
		return Event{}
	}
}

func (b *NullBackend) PostEvent(ev Event) error {
	select {
	case <-b.done:
		return ErrEventQueueFull
	default:
	}
	select {
	case b.events <- ev:
		return nil
	default:
		return ErrEventQueueFull
	}
}

func (b *NullBackend) Beep() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.beeps++
}

// Cell returns the cell at (x, y) for testing.
func (b *NullBackend) Cell(x, y int) core.Cell {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.grid.Cell(x, y)
}

// Row returns the text of row y for testing.
func (b *NullBackend) Row(y int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.grid.Row(y)
}

// Text returns the whole screen as text for testing.
func (b *NullBackend) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.grid.Text()
}

// ShowCount returns how many times Show was called.
func (b *NullBackend) ShowCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.shows
}

// BeepCount returns how many times Beep was called.
func (b *NullBackend) BeepCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.beeps
}

// Resize simulates a terminal resize and queues an EventResize.
func (b *NullBackend) Resize(width, height int) {
	b.mu.Lock()
	b.grid.Resize(width, height)
	b.mu.Unlock()
	_ = b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}
