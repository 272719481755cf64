// Package life is a sparse Game of Life engine on a fixed-size torus.
package life

import (
	"fmt"
	"strings"
)

// Source supplies uniform random integers in [0, n). *rand.Rand and core.RNG satisfy it.
type Source interface {
	IntN(n int) int
}

const (
	randomOutcomes = 10
	randomSentinel = 0
)

// Board is a fixed-size toroidal grid that tracks only its live cells.
// The live set is replaced wholesale by Step and never edited cell by cell.
type Board struct {
	rows, cols int
	live       map[Cell]struct{}
}

func checkDimensions(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return nil
}

// New returns a board of the given size whose live cells are exactly cells.
func New(rows, cols int, cells []Cell) (*Board, error) {
	if err := checkDimensions(rows, cols); err != nil {
		return nil, err
	}
	b := &Board{rows: rows, cols: cols, live: make(map[Cell]struct{}, len(cells))}
	for _, c := range cells {
		if !b.contains(c) {
			return nil, fmt.Errorf("%w: %v on %dx%d board", ErrOutOfBounds, c, rows, cols)
		}
		b.live[c] = struct{}{}
	}
	return b, nil
}

// NewRandom seeds every position independently with a one in ten chance of being live.
func NewRandom(rows, cols int, src Source) (*Board, error) {
	if err := checkDimensions(rows, cols); err != nil {
		return nil, err
	}
	b := &Board{rows: rows, cols: cols, live: make(map[Cell]struct{})}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if src.IntN(randomOutcomes) == randomSentinel {
				b.live[Cell{Row: r, Col: c}] = struct{}{}
			}
		}
	}
	return b, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Dimensions returns rows and columns.
func (b *Board) Dimensions() (rows, cols int) { return b.rows, b.cols }

// Population returns the number of live cells.
func (b *Board) Population() int { return len(b.live) }

// Alive reports whether c is live.
func (b *Board) Alive(c Cell) bool {
	_, ok := b.live[c]
	return ok
}

// LiveCells returns a snapshot of the live cells in no particular order.
func (b *Board) LiveCells() []Cell {
	cells := make([]Cell, 0, len(b.live))
	for c := range b.live {
		cells = append(cells, c)
	}
	return cells
}

// String draws the board with a full block for live cells and a space for dead ones.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if b.Alive(Cell{Row: r, Col: c}) {
				sb.WriteRune('█')
			} else {
				sb.WriteByte(' ')
			}
		}
		if r < b.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (b *Board) contains(c Cell) bool {
	return c.Row >= 0 && c.Row < b.rows && c.Col >= 0 && c.Col < b.cols
}
