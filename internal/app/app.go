//go:build ebiten

package app

import (
	"errors"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"torus-life/internal/core"
	"torus-life/internal/render"
	"torus-life/internal/ui"
)

// Game adapts a core.Session to the ebiten.Game interface.
type Game struct {
	session *core.Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color

	scale     int
	title     string
	framerate int
}

// New constructs a Game for the provided session.
func New(s *core.Session, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	rows, cols := s.Board().Dimensions()
	return &Game{
		session:  s,
		painter:  render.NewGridPainter(rows, cols),
		hud:      ui.NewHUD(),
		overlay:  ui.NewOverlay(),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
	}
}

// Run opens a window sized to the board and blocks until it is closed.
func Run(s *core.Session, scale int) error {
	g := New(s, scale)
	rows, cols := s.Board().Dimensions()

	ebiten.SetWindowSize(cols*g.scale, rows*g.scale)
	g.syncPacing()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Update handles input and advances the session once per tick.
func (g *Game) Update() error {
	s := g.session
	p := s.Pacing()

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && !s.Playing() {
		s.Step(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		p.IncFramerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		p.DecFramerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		p.IncSteps()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		p.DecSteps()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := s.Reset(); err != nil {
			slog.Error("reload board", "err", err)
		}
	}
	g.overlay.Update()

	s.Tick()
	g.syncPacing()
	return nil
}

// syncPacing pushes framerate changes to ebiten and keeps the window title current.
func (g *Game) syncPacing() {
	p := g.session.Pacing()
	if fr := p.Framerate(); fr != g.framerate {
		g.framerate = fr
		if p.Unthrottled() {
			ebiten.SetTPS(ebiten.SyncWithFPS)
		} else {
			ebiten.SetTPS(fr)
		}
	}
	if title := g.session.Status().Title(); title != g.title {
		g.title = title
		ebiten.SetWindowTitle(title)
	}
}

// Draw renders the live cells, the status strip and the help overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Board().LiveCells(), g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen, g.session.Status())
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	rows, cols := g.session.Board().Dimensions()
	return cols * g.scale, rows * g.scale
}
