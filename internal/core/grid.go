package core

import "torus-life/pkg/life"

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	Rows, Cols int
	data       []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(rows, cols int) *ByteGrid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &ByteGrid{Rows: rows, Cols: cols, data: make([]uint8, rows*cols)}
}

// Cells exposes the backing slice so callers can read values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col).
func (g *ByteGrid) Index(row, col int) int { return row*g.Cols + col }

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Plot clears the grid and sets every listed cell to 1. Cells outside the grid are ignored.
func (g *ByteGrid) Plot(cells []life.Cell) {
	g.Clear()
	for _, c := range cells {
		if c.Row < 0 || c.Row >= g.Rows || c.Col < 0 || c.Col >= g.Cols {
			continue
		}
		g.data[g.Index(c.Row, c.Col)] = 1
	}
}
