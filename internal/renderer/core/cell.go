package core

import "github.com/rivo/uniseg"

// Cell represents a single terminal cell holding one grapheme cluster.
type Cell struct {
	// Rune is the base character of the cluster.
	Rune rune

	// Combining holds any runes that follow Rune in the same cluster.
	Combining []rune

	// Width is the display width: 1, 2, or 0 for the trailing half of a
	// wide cluster.
	Width int

	Style Style
}

// EmptyCell returns a blank cell with default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1, Style: DefaultStyle()}
}

// BlankCell returns a blank cell with the given style.
func BlankCell(style Style) Cell {
	return Cell{Rune: ' ', Width: 1, Style: style}
}

// ContinuationCell returns the placeholder that follows a wide cluster.
func ContinuationCell(style Style) Cell {
	return Cell{Style: style}
}

// IsContinuation returns true if this is the trailing half of a wide cluster.
func (c Cell) IsContinuation() bool {
	return c.Width == 0 && c.Rune == 0
}

// Equals returns true if two cells render identically.
func (c Cell) Equals(other Cell) bool {
	if c.Rune != other.Rune || c.Width != other.Width || len(c.Combining) != len(other.Combining) {
		return false
	}
	for i := range c.Combining {
		if c.Combining[i] != other.Combining[i] {
			return false
		}
	}
	return c.Style.Equals(other.Style)
}

// String returns the cluster text.
func (c Cell) String() string {
	if c.IsContinuation() {
		return ""
	}
	return string(append([]rune{c.Rune}, c.Combining...))
}

// RuneWidth returns the display width of a single rune.
func RuneWidth(r rune) int {
	if r < 32 || r == 0x7F {
		return 0
	}
	return uniseg.StringWidth(string(r))
}

// StringWidth returns the display width of s in terminal columns.
func StringWidth(s string) int {
	return uniseg.StringWidth(s)
}

// CellsFromString splits s into grapheme clusters, one cell per cluster plus a
// continuation cell after each wide cluster.
func CellsFromString(s string, style Style) []Cell {
	cells := make([]Cell, 0, len(s))
	state := -1
	for len(s) > 0 {
		var cluster string
		var width int
		cluster, s, width, state = uniseg.FirstGraphemeClusterInString(s, state)
		runes := []rune(cluster)
		if width == 0 {
			continue
		}
		cell := Cell{Rune: runes[0], Width: width, Style: style}
		if len(runes) > 1 {
			cell.Combining = runes[1:]
		}
		cells = append(cells, cell)
		for i := 1; i < width; i++ {
			cells = append(cells, ContinuationCell(style))
		}
	}
	return cells
}

// Truncate shortens s to at most width columns without splitting a cluster.
// When s is cut, the last column holds tail (usually "…").
func Truncate(s string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	if StringWidth(s) <= width {
		return s
	}
	limit := width - StringWidth(tail)
	if limit < 0 {
		limit, tail = width, ""
	}
	var out []byte
	used := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		var w int
		cluster, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		if used+w > limit {
			break
		}
		out = append(out, cluster...)
		used += w
	}
	return string(out) + tail
}
