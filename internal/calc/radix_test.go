package calc

import (
	"errors"
	"testing"
)

func TestConvertBinary(t *testing.T) {
	e := New()
	digits(t, e, "10")
	if err := e.Convert(RadixBin); err != nil {
		t.Fatalf("Convert error = %v", err)
	}
	if e.Display() != "1010" {
		t.Errorf("expected %q, got %q", "1010", e.Display())
	}
	st := e.State()
	if st.Entering || st.Appending {
		t.Errorf("expected flags cleared, got %+v", st)
	}
}

func TestConvertHex(t *testing.T) {
	e := New()
	digits(t, e, "255")
	if err := e.Convert(RadixHex); err != nil {
		t.Fatalf("Convert error = %v", err)
	}
	if e.Display() != "FF" {
		t.Errorf("expected %q, got %q", "FF", e.Display())
	}
}

func TestConvertNonInteger(t *testing.T) {
	e, r := newRecorded()
	digits(t, e, "3.5")
	before := e.State()

	err := e.Convert(RadixBin)
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FormatError, got %v", err)
	}
	if fe.Op != "bin" || fe.Input != "3.5" {
		t.Errorf("unexpected error fields %+v", fe)
	}
	if e.State() != before {
		t.Errorf("state changed: %+v -> %+v", before, e.State())
	}
	if len(r.notices) != 1 || r.notices[0] != "Invalid integer for binary conversion!" {
		t.Errorf("unexpected notices %v", r.notices)
	}
}

func TestConvertOutOfRange(t *testing.T) {
	e, r := newRecorded()
	digits(t, e, "4294967296")
	if err := e.Convert(RadixHex); err == nil {
		t.Fatal("expected error for value outside int32")
	}
	if len(r.notices) != 1 || r.notices[0] != "Invalid integer for hex conversion!" {
		t.Errorf("unexpected notices %v", r.notices)
	}
}

func TestFormatRadix(t *testing.T) {
	tests := []struct {
		v    int32
		r    Radix
		want string
	}{
		{0, RadixBin, "0"},
		{10, RadixBin, "1010"},
		{255, RadixHex, "FF"},
		{-1, RadixHex, "FFFFFFFF"},
		{-1, RadixBin, "11111111111111111111111111111111"},
		{-16, RadixHex, "FFFFFFF0"},
	}
	for _, tt := range tests {
		if got := FormatRadix(tt.v, tt.r); got != tt.want {
			t.Errorf("FormatRadix(%d, %s) = %q, want %q", tt.v, tt.r, got, tt.want)
		}
	}
}

func TestParseRadix(t *testing.T) {
	if r, err := ParseRadix("HEX"); err != nil || r != RadixHex {
		t.Errorf("ParseRadix(HEX) = %v, %v", r, err)
	}
	if _, err := ParseRadix("oct"); err == nil {
		t.Error("ParseRadix(oct) should fail")
	}
}
