package mode

import (
	"fmt"
	"sync"
)

// ChangeCallback is called after the mode changes.
type ChangeCallback func(from, to Mode)

// Manager tracks the active calculator mode.
type Manager struct {
	mu sync.RWMutex

	current  Mode
	previous Mode

	// callbacks are notified on mode changes.
	callbacks []ChangeCallback
}

// NewManager creates a manager starting in initial.
func NewManager(initial Mode) *Manager {
	if !initial.Valid() {
		initial = Standard
	}
	return &Manager{current: initial, previous: initial}
}

// Current returns the active mode.
func (m *Manager) Current() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Previous returns the mode before the last switch.
func (m *Manager) Previous() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.previous
}

// Is returns true if the active mode is mode.
func (m *Manager) Is(mode Mode) bool {
	return m.Current() == mode
}

// Allows reports whether the active mode can reach capability c.
func (m *Manager) Allows(c Capability) bool {
	return m.Current().Allows(c)
}

// Switch changes the active mode. Switching to the active mode is a no-op and
// does not notify callbacks.
func (m *Manager) Switch(to Mode) error {
	if !to.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownMode, to)
	}

	m.mu.Lock()
	from := m.current
	if from == to {
		m.mu.Unlock()
		return nil
	}
	m.previous = from
	m.current = to

	// Copy callbacks to call outside of lock
	callbacks := make([]ChangeCallback, len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, cb := range callbacks {
		if cb != nil {
			cb(from, to)
		}
	}
	return nil
}

// SwitchName parses name and switches to it.
func (m *Manager) SwitchName(name string) error {
	to, err := Parse(name)
	if err != nil {
		return err
	}
	return m.Switch(to)
}

// Toggle switches back to the previous mode.
func (m *Manager) Toggle() error {
	return m.Switch(m.Previous())
}

// OnChange registers a callback for mode changes.
// Returns a function to unregister the callback.
func (m *Manager) OnChange(callback ChangeCallback) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
	index := len(m.callbacks) - 1

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		// Remove callback by setting to nil (preserves indices)
		if index < len(m.callbacks) {
			m.callbacks[index] = nil
		}
	}
}
