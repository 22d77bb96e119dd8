package input

import (
	"errors"
	"testing"

	"github.com/dshills/keycalc/internal/calc"
)

func TestParseScript(t *testing.T) {
	tests := []struct {
		script string
		want   []string
	}{
		{"12+3=", []string{"digit:1", "digit:2", "op:+", "digit:3", "equals"}},
		{"1.5 × 2 =", []string{"digit:1", "point", "digit:5", "op:*", "digit:2", "equals"}},
		{"10,20 mean", []string{"digit:1", "digit:0", "sep", "digit:2", "digit:0", "agg:mean"}},
		{"9 sqrt", []string{"digit:9", "unary:sqrt"}},
		{"√9", []string{"unary:sqrt", "digit:9"}},
		{"255 hex", []string{"digit:2", "digit:5", "digit:5", "radix:hex"}},
		{"mode:scientific 2 ^ 3 =", []string{"mode:scientific", "digit:2", "op:^", "digit:3", "equals"}},
		{"17 mod 5", []string{"digit:1", "digit:7", "op:%", "digit:5"}},
		{"12 back clear", []string{"digit:1", "digit:2", "back", "clear"}},
		{"programmer", []string{"mode:programmer"}},
		{"3 cube", []string{"digit:3", "unary:cube"}},
		{"op:- 4", []string{"op:-", "digit:4"}},
	}

	for _, tt := range tests {
		t.Run(tt.script, func(t *testing.T) {
			actions, err := ParseScript(tt.script)
			if err != nil {
				t.Fatalf("ParseScript error = %v", err)
			}
			if len(actions) != len(tt.want) {
				t.Fatalf("expected %d actions, got %d: %v", len(tt.want), len(actions), actions)
			}
			for i, a := range actions {
				if a.String() != tt.want[i] {
					t.Errorf("action %d = %q, want %q", i, a.String(), tt.want[i])
				}
				if a.Source != SourceScript {
					t.Errorf("action %d source = %s, want script", i, a.Source)
				}
			}
		})
	}
}

func TestParseScriptErrors(t *testing.T) {
	for _, script := range []string{"1 # 2", "2 & 3", "radix:oct"} {
		if _, err := ParseScript(script); !errors.Is(err, ErrInvalidAction) {
			t.Errorf("ParseScript(%q) expected ErrInvalidAction, got %v", script, err)
		}
	}
}

func TestParseScriptDrivesEngine(t *testing.T) {
	actions, err := ParseScript("7 × 6 =")
	if err != nil {
		t.Fatalf("ParseScript error = %v", err)
	}

	e := calc.New()
	for _, a := range actions {
		switch a.Kind {
		case KindDigit:
			_ = e.Digit(a.Digit)
		case KindOperator:
			_ = e.Binary(a.Op)
		case KindEquals:
			_ = e.Equals()
		}
	}
	if e.Display() != "42" {
		t.Errorf("expected %q, got %q", "42", e.Display())
	}
}
