//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	overlayPadding = 8
	lineSpacing    = 16
)

// Overlay shows the key-binding help on top of the board when toggled with H.
type Overlay struct {
	visible bool
	lines   []string
	pixel   *ebiten.Image
}

// NewOverlay constructs a hidden help overlay.
func NewOverlay() *Overlay {
	o := &Overlay{lines: HelpLines(), pixel: ebiten.NewImage(1, 1)}
	o.pixel.Fill(color.White)
	return o
}

// Update toggles visibility on H.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw renders the help panel when visible.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	face := basicfont.Face7x13
	width := 0
	for _, l := range o.lines {
		width = max(width, text.BoundString(face, l).Dx())
	}
	width += 2 * overlayPadding
	height := len(o.lines)*lineSpacing + 2*overlayPadding

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	x := (sw - width) / 2
	y := (sh - height) / 2

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width), float64(height))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 20, G: 20, B: 28, A: 220})
	screen.DrawImage(o.pixel, op)

	for i, l := range o.lines {
		text.Draw(screen, l, face, x+overlayPadding, y+overlayPadding+(i+1)*lineSpacing-4, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}
