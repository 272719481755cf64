//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"torus-life/internal/core"
	"torus-life/pkg/life"
)

// GridPainter rasterizes live cells into a single RGBA image, one pixel per cell.
type GridPainter struct {
	grid *core.ByteGrid
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a rows x cols board.
func NewGridPainter(rows, cols int) *GridPainter {
	grid := core.NewByteGrid(rows, cols)
	return &GridPainter{
		grid: grid,
		img:  ebiten.NewImage(grid.Cols, grid.Rows),
		buf:  make([]byte, 4*grid.Rows*grid.Cols),
	}
}

// Blit uploads the live cells into the painter image and draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []life.Cell, on, off color.Color, scale int) {
	gp.grid.Plot(cells)
	fillBinaryRGBA(gp.buf, gp.grid.Cells(), on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the painter's rows and columns.
func (gp *GridPainter) Size() (rows, cols int) { return gp.grid.Rows, gp.grid.Cols }
