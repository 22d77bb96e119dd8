package calc

import (
	"errors"
	"math"
	"testing"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		op   Operator
		want float64
	}{
		{"add", 2, 3, OpAdd, 5},
		{"sub", 2, 3, OpSub, -1},
		{"mul", 2.5, 4, OpMul, 10},
		{"div", 7, 2, OpDiv, 3.5},
		{"mod", 17, 5, OpMod, 2},
		{"mod negative dividend", -7, 3, OpMod, -1},
		{"mod negative divisor", 7, -3, OpMod, 1},
		{"mod fractional", 5.5, 2, OpMod, 1.5},
		{"pow", 2, 8, OpPow, 256},
		{"pow fractional", 9, 0.5, OpPow, 3},
		{"none passes b", 99, 4, OpNone, 4},
		{"equals passes b", 99, 4, OpEquals, 4},
		{"sqrt marker passes b", 99, 4, OpSqrt, 4},
		{"ln marker passes b", 99, 4, OpLn, 4},
		{"func marker passes b", 99, 4, OpFunc, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Apply(tt.a, tt.b, tt.op); got != tt.want {
				t.Errorf("Apply(%v, %v, %s) = %v, want %v", tt.a, tt.b, tt.op, got, tt.want)
			}
		})
	}
}

func TestApplyDivideByZero(t *testing.T) {
	if got := Apply(1, 0, OpDiv); !math.IsInf(got, 1) {
		t.Errorf("1/0 = %v, want +Inf", got)
	}
	if got := Apply(-1, 0, OpDiv); !math.IsInf(got, -1) {
		t.Errorf("-1/0 = %v, want -Inf", got)
	}
	if got := Apply(0, 0, OpDiv); !math.IsNaN(got) {
		t.Errorf("0/0 = %v, want NaN", got)
	}
	if got := Apply(5, 0, OpMod); !math.IsNaN(got) {
		t.Errorf("5%%0 = %v, want NaN", got)
	}
}

func TestParseOperator(t *testing.T) {
	tests := map[string]Operator{
		"+": OpAdd, "-": OpSub, "−": OpSub, "*": OpMul, "×": OpMul,
		"/": OpDiv, "÷": OpDiv, "%": OpMod, "^": OpPow, "pow": OpPow,
	}
	for in, want := range tests {
		got, err := ParseOperator(in)
		if err != nil {
			t.Errorf("ParseOperator(%q) error = %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseOperator(%q) = %s, want %s", in, got, want)
		}
	}

	if _, err := ParseOperator("="); !errors.Is(err, ErrUnknownOperator) {
		t.Errorf("ParseOperator(=) expected ErrUnknownOperator, got %v", err)
	}
}

func TestOperatorIsBinary(t *testing.T) {
	for _, op := range []Operator{OpAdd, OpSub, OpMul, OpDiv, OpMod, OpPow} {
		if !op.IsBinary() {
			t.Errorf("%s should be binary", op)
		}
	}
	for _, op := range []Operator{OpNone, OpSqrt, OpLn, OpEquals, OpFunc} {
		if op.IsBinary() {
			t.Errorf("%s should not be binary", op)
		}
	}
}
