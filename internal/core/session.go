package core

import (
	"fmt"

	"torus-life/pkg/life"
)

// Loader builds a fresh board. Sessions call it once at start and again on Reset.
type Loader func() (*life.Board, error)

// Status is the snapshot a renderer shows next to the board.
type Status struct {
	Generation    uint64
	Population    int
	Framerate     string
	StepsPerFrame int
	Playing       bool
}

// Title formats the status as a window title.
func (s Status) Title() string {
	return fmt.Sprintf("GoL | %d | FPS: %s | Evolutions Per Frame: %d", s.Generation, s.Framerate, s.StepsPerFrame)
}

// Session owns one board on behalf of a renderer: it tracks play state, pacing
// and the generation count, and is the only thing that calls Step.
type Session struct {
	load       Loader
	board      *life.Board
	pacing     *Pacing
	generation uint64
	playing    bool
}

// NewSession loads the initial board. The session starts paused.
func NewSession(load Loader, pacing *Pacing) (*Session, error) {
	if pacing == nil {
		pacing = DefaultPacing()
	}
	b, err := load()
	if err != nil {
		return nil, err
	}
	return &Session{load: load, board: b, pacing: pacing}, nil
}

// Board returns the board being evolved.
func (s *Session) Board() *life.Board { return s.board }

// Pacing returns the session's pacing controls.
func (s *Session) Pacing() *Pacing { return s.pacing }

// Generation returns the number of generations advanced since the last load.
func (s *Session) Generation() uint64 { return s.generation }

// Playing reports whether Tick advances the board.
func (s *Session) Playing() bool { return s.playing }

// Play makes Tick advance the board.
func (s *Session) Play() { s.playing = true }

// Pause stops Tick from advancing the board.
func (s *Session) Pause() { s.playing = false }

// Toggle flips between playing and paused.
func (s *Session) Toggle() { s.playing = !s.playing }

// Step advances n generations regardless of play state.
func (s *Session) Step(n int) {
	if n <= 0 {
		return
	}
	s.board.Advance(n)
	s.generation += uint64(n)
}

// Tick advances one frame's worth of generations when playing and reports whether it did.
func (s *Session) Tick() bool {
	if !s.playing {
		return false
	}
	s.Step(s.pacing.StepsPerFrame())
	return true
}

// Reset reloads the board and zeroes the generation count. On error the
// current board is kept.
func (s *Session) Reset() error {
	b, err := s.load()
	if err != nil {
		return err
	}
	s.board = b
	s.generation = 0
	return nil
}

// Status returns the current status snapshot.
func (s *Session) Status() Status {
	return Status{
		Generation:    s.generation,
		Population:    s.board.Population(),
		Framerate:     s.pacing.FramerateLabel(),
		StepsPerFrame: s.pacing.StepsPerFrame(),
		Playing:       s.playing,
	}
}
