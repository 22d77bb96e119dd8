package calc

import (
	"fmt"
	"strconv"
	"strings"
)

// Aggregate selects a statistics-mode reduction over a list of values.
type Aggregate uint8

const (
	AggMean Aggregate = iota
	AggVariance
)

// String returns the key label of the aggregate.
func (a Aggregate) String() string {
	switch a {
	case AggMean:
		return "mean"
	case AggVariance:
		return "var"
	default:
		return fmt.Sprintf("Aggregate(%d)", a)
	}
}

// ParseAggregate parses "mean" or "var" (case-insensitive).
func ParseAggregate(s string) (Aggregate, error) {
	switch strings.ToLower(s) {
	case "mean", "avg", "average":
		return AggMean, nil
	case "var", "variance":
		return AggVariance, nil
	default:
		return 0, fmt.Errorf("unknown aggregate %q", s)
	}
}

// ParseValues parses a comma-separated list of numbers. Surrounding whitespace
// is ignored per token; an empty token is an error, so an empty list is rejected.
// Tokens follow the operand grammar, so "inf", "nan" and exponents are refused.
func ParseValues(text string) ([]float64, error) {
	parts := strings.Split(text, ",")
	values := make([]float64, 0, len(parts))
	for _, p := range parts {
		tok := strings.TrimSpace(p)
		if !IsNumber(tok) {
			return nil, &strconv.NumError{Func: "ParseFloat", Num: tok, Err: strconv.ErrSyntax}
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// Mean returns the arithmetic mean of values.
func Mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Variance returns the population variance of values (divisor n).
func Variance(values []float64) float64 {
	mean := Mean(values)
	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(values))
}

// Aggregate reduces the list in the display to a single value. Any token that
// is not a number reports a *FormatError and leaves the state unchanged.
func (e *Engine) Aggregate(a Aggregate) error {
	text := e.buffer
	values, err := ParseValues(text)
	if err != nil {
		return e.fail(&FormatError{Op: a.String(), Input: text, Message: msgAggregate, Err: err})
	}

	var result float64
	switch a {
	case AggVariance:
		result = Variance(values)
	default:
		result = Mean(values)
	}

	e.setBuffer(Render(result))
	e.observe(fmt.Sprintf("%s(%s)", a, text), result)
	return nil
}
