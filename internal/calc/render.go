package calc

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numberPattern is the grammar a display buffer must match before an operator
// may consume it: an optionally signed decimal with an optional fractional part.
var numberPattern = regexp.MustCompile(`^(?:-?\d+\.\d*|\d+|-\d+)$`)

// zeroPattern matches a buffer made only of zeros (including the empty string).
var zeroPattern = regexp.MustCompile(`^0*$`)

// IsNumber reports whether text is a numeric literal the engine will accept
// as an operand.
func IsNumber(text string) bool {
	return numberPattern.MatchString(text)
}

// parseOperand parses the display buffer as an operand.
func parseOperand(text string) (float64, error) {
	if !IsNumber(text) {
		return 0, ErrInvalidOperand
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// Out-of-range literals parse to ±Inf with ErrRange; keep the value.
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v, nil
		}
		return 0, ErrInvalidOperand
	}
	return v, nil
}

// Render formats a value for the display.
//
// Integral values are shown without a fractional part ("3", "-2"). Everything
// else uses the shortest plain decimal that round-trips ("3.5", "1234567.5"),
// never exponent form, so a finite result is always a valid operand.
// Infinities and NaN are spelled out.
func Render(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if v == math.Trunc(v) && math.Abs(v) < 1<<63 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// lastToken returns the text after the final list separator.
func lastToken(text string) string {
	if i := strings.LastIndexByte(text, ','); i >= 0 {
		return text[i+1:]
	}
	return text
}
