//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"torus-life/internal/core"
)

const (
	hudPadding  = 4
	hudBaseline = 12
	hudHeight   = 18
)

// HUD draws a one-line status strip along the top of the board.
type HUD struct {
	pixel *ebiten.Image
}

// NewHUD constructs a HUD.
func NewHUD() *HUD {
	h := &HUD{pixel: ebiten.NewImage(1, 1)}
	h.pixel.Fill(color.White)
	return h
}

// Draw renders the status onto screen.
func (h *HUD) Draw(screen *ebiten.Image, st core.Status) {
	if h == nil {
		return
	}
	state := "paused"
	if st.Playing {
		state = "playing"
	}
	line := fmt.Sprintf("gen %d  pop %d  fps %s  x%d  %s", st.Generation, st.Population, st.Framerate, st.StepsPerFrame, state)

	face := basicfont.Face7x13
	width := text.BoundString(face, line).Dx() + 2*hudPadding

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width), hudHeight)
	op.ColorScale.ScaleWithColor(color.RGBA{A: 160})
	screen.DrawImage(h.pixel, op)

	text.Draw(screen, line, face, hudPadding, hudBaseline, color.RGBA{R: 220, G: 220, B: 230, A: 255})
}
