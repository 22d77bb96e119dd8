package mode

import "testing"

func TestManagerInitial(t *testing.T) {
	m := NewManager(Programmer)
	if m.Current() != Programmer {
		t.Errorf("Current() = %s, want programmer", m.Current())
	}
	if !m.Allows(CapRadix) {
		t.Error("programmer should allow radix")
	}

	if NewManager(Mode(42)).Current() != Standard {
		t.Error("invalid initial mode should fall back to standard")
	}
}

func TestManagerSwitch(t *testing.T) {
	m := NewManager(Standard)

	var calls [][2]Mode
	m.OnChange(func(from, to Mode) {
		calls = append(calls, [2]Mode{from, to})
	})

	if err := m.Switch(Scientific); err != nil {
		t.Fatalf("Switch() error = %v", err)
	}
	if !m.Is(Scientific) {
		t.Errorf("Current() = %s, want scientific", m.Current())
	}
	if m.Previous() != Standard {
		t.Errorf("Previous() = %s, want standard", m.Previous())
	}
	if len(calls) != 1 || calls[0] != [2]Mode{Standard, Scientific} {
		t.Errorf("unexpected callbacks %v", calls)
	}

	// Same mode: no callback
	_ = m.Switch(Scientific)
	if len(calls) != 1 {
		t.Errorf("expected 1 callback, got %d", len(calls))
	}
}

func TestManagerSwitchInvalid(t *testing.T) {
	m := NewManager(Standard)
	if err := m.Switch(Mode(9)); err == nil {
		t.Error("Switch to invalid mode should fail")
	}
	if err := m.SwitchName("bogus"); err == nil {
		t.Error("SwitchName(bogus) should fail")
	}
	if m.Current() != Standard {
		t.Errorf("mode changed after failed switch: %s", m.Current())
	}
}

func TestManagerToggle(t *testing.T) {
	m := NewManager(Standard)
	_ = m.SwitchName("statistics")
	if err := m.Toggle(); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if m.Current() != Standard {
		t.Errorf("Current() = %s, want standard", m.Current())
	}
}

func TestManagerUnregisterCallback(t *testing.T) {
	m := NewManager(Standard)
	count := 0
	unregister := m.OnChange(func(from, to Mode) { count++ })

	_ = m.Switch(Scientific)
	unregister()
	_ = m.Switch(Standard)

	if count != 1 {
		t.Errorf("expected 1 callback, got %d", count)
	}
}

func TestManagerCallbackCanReadMode(t *testing.T) {
	m := NewManager(Standard)
	var seen Mode
	m.OnChange(func(from, to Mode) {
		// Callbacks run outside the lock.
		seen = m.Current()
	})
	_ = m.Switch(Statistics)
	if seen != Statistics {
		t.Errorf("expected statistics inside callback, got %s", seen)
	}
}
