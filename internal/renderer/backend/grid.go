package backend

import (
	"strings"

	"github.com/dshills/keycalc/internal/renderer/core"
)

// Grid is an in-memory cell matrix.
type Grid struct {
	width, height int
	cells         [][]core.Cell
}

// NewGrid creates a grid filled with empty cells.
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Resize(width, height)
	return g
}

// Resize reallocates the grid, discarding its contents.
func (g *Grid) Resize(width, height int) {
	g.width, g.height = max(0, width), max(0, height)
	g.cells = make([][]core.Cell, g.height)
	for y := range g.cells {
		g.cells[y] = make([]core.Cell, g.width)
	}
	g.Clear()
}

// Size returns the grid dimensions.
func (g *Grid) Size() (width, height int) {
	return g.width, g.height
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// SetCell sets the cell at (x, y). Out of range positions are ignored.
func (g *Grid) SetCell(x, y int, cell core.Cell) {
	if g.inBounds(x, y) {
		g.cells[y][x] = cell
	}
}

// Cell returns the cell at (x, y), or an empty cell when out of range.
func (g *Grid) Cell(x, y int) core.Cell {
	if g.inBounds(x, y) {
		return g.cells[y][x]
	}
	return core.EmptyCell()
}

// Fill sets every cell in rect.
func (g *Grid) Fill(rect core.ScreenRect, cell core.Cell) {
	for y := max(rect.Top, 0); y < rect.Bottom && y < g.height; y++ {
		for x := max(rect.Left, 0); x < rect.Right && x < g.width; x++ {
			g.cells[y][x] = cell
		}
	}
}

// Clear resets every cell to empty.
func (g *Grid) Clear() {
	g.Fill(core.ScreenRect{Bottom: g.height, Right: g.width}, core.EmptyCell())
}

// Row returns the text of row y with trailing blanks removed.
func (g *Grid) Row(y int) string {
	if y < 0 || y >= g.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range g.cells[y] {
		sb.WriteString(c.String())
	}
	return strings.TrimRight(sb.String(), " ")
}

// Text returns all rows joined by newlines.
func (g *Grid) Text() string {
	rows := make([]string, g.height)
	for y := range rows {
		rows[y] = g.Row(y)
	}
	return strings.Join(rows, "\n")
}
