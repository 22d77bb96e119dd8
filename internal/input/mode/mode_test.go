package mode

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"standard", Standard},
		{"Scientific", Scientific},
		{" PROG ", Programmer},
		{"stats", Statistics},
		{"sci", Scientific},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := Parse("hyper"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Parse(hyper) expected ErrUnknownMode, got %v", err)
	}
}

func TestModeStringRoundTrip(t *testing.T) {
	for _, m := range All() {
		got, err := Parse(m.String())
		if err != nil || got != m {
			t.Errorf("Parse(%q) = %v, %v", m.String(), got, err)
		}
	}
	if Mode(99).String() != "unknown" {
		t.Errorf("expected unknown, got %q", Mode(99).String())
	}
}

func TestUnmarshalText(t *testing.T) {
	var m Mode
	if err := m.UnmarshalText([]byte("programmer")); err != nil {
		t.Fatalf("UnmarshalText error = %v", err)
	}
	if m != Programmer {
		t.Errorf("expected programmer, got %s", m)
	}
	if err := m.UnmarshalText([]byte("nope")); err == nil {
		t.Error("UnmarshalText(nope) should fail")
	}
}

func TestCapabilityTable(t *testing.T) {
	tests := []struct {
		mode  Mode
		c     Capability
		allow bool
	}{
		{Standard, CapBasic, true},
		{Standard, CapPower, false},
		{Standard, CapUnary, false},
		{Standard, CapRadix, false},
		{Standard, CapAggregate, false},
		{Scientific, CapPower, true},
		{Scientific, CapUnary, true},
		{Scientific, CapRadix, false},
		{Programmer, CapRadix, true},
		{Programmer, CapUnary, false},
		{Statistics, CapAggregate, true},
		{Statistics, CapSeparator, true},
		{Statistics, CapPower, false},
		{Scientific, CapBasic | CapPower, true},
		{Scientific, CapPower | CapRadix, false},
	}
	for _, tt := range tests {
		if got := Allows(tt.mode, tt.c); got != tt.allow {
			t.Errorf("Allows(%s, %s) = %v, want %v", tt.mode, tt.c, got, tt.allow)
		}
	}

	for _, m := range All() {
		if !m.Allows(CapBasic) {
			t.Errorf("%s should allow basic keys", m)
		}
		if m.Allows(0) {
			t.Errorf("%s should not allow the empty set", m)
		}
	}
}

func TestCapabilityString(t *testing.T) {
	if got := (CapBasic | CapRadix).String(); got != "basic|radix" {
		t.Errorf("expected %q, got %q", "basic|radix", got)
	}
	if got := Capability(0).String(); got != "none" {
		t.Errorf("expected none, got %q", got)
	}
}
