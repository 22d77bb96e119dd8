package core

// ScreenRect represents a rectangular region on screen.
type ScreenRect struct {
	Top    int // First row (inclusive)
	Left   int // First column (inclusive)
	Bottom int // Last row (exclusive)
	Right  int // Last column (exclusive)
}

// RectFromSize creates a rectangle from position and size.
func RectFromSize(top, left, height, width int) ScreenRect {
	return ScreenRect{Top: top, Left: left, Bottom: top + height, Right: left + width}
}

// Width returns the width of the rectangle.
func (r ScreenRect) Width() int {
	if r.Right <= r.Left {
		return 0
	}
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r ScreenRect) Height() int {
	if r.Bottom <= r.Top {
		return 0
	}
	return r.Bottom - r.Top
}

// IsEmpty returns true if the rectangle has no area.
func (r ScreenRect) IsEmpty() bool {
	return r.Width() == 0 || r.Height() == 0
}

// Contains returns true if (x, y) lies within the rectangle.
func (r ScreenRect) Contains(x, y int) bool {
	return y >= r.Top && y < r.Bottom && x >= r.Left && x < r.Right
}

// Inset returns a rectangle shrunk by the given amounts.
func (r ScreenRect) Inset(top, right, bottom, left int) ScreenRect {
	return ScreenRect{
		Top:    r.Top + top,
		Left:   r.Left + left,
		Bottom: r.Bottom - bottom,
		Right:  r.Right - right,
	}
}

// SplitTop cuts n rows off the top and returns them and the remainder.
func (r ScreenRect) SplitTop(n int) (head, rest ScreenRect) {
	n = max(0, min(n, r.Height()))
	head = ScreenRect{Top: r.Top, Left: r.Left, Bottom: r.Top + n, Right: r.Right}
	rest = ScreenRect{Top: r.Top + n, Left: r.Left, Bottom: r.Bottom, Right: r.Right}
	return head, rest
}

// SplitBottom cuts n rows off the bottom and returns the remainder and them.
func (r ScreenRect) SplitBottom(n int) (rest, tail ScreenRect) {
	n = max(0, min(n, r.Height()))
	rest = ScreenRect{Top: r.Top, Left: r.Left, Bottom: r.Bottom - n, Right: r.Right}
	tail = ScreenRect{Top: r.Bottom - n, Left: r.Left, Bottom: r.Bottom, Right: r.Right}
	return rest, tail
}
