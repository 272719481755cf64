package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"torus-life/internal/core"
)

const clearScreen = "\x1b[H\x1b[2J"

// TerminalOptions configures RunTerminal.
type TerminalOptions struct {
	// Frames is the number of frames printed after the initial board.
	Frames int
	// Clear emits an ANSI clear-screen sequence before every frame.
	Clear bool
}

// RunTerminal plays the session and prints a text frame per tick to w, waiting
// the session's frame interval between frames. It stops after opts.Frames
// frames or when ctx is done.
func RunTerminal(ctx context.Context, s *core.Session, w io.Writer, opts TerminalOptions) error {
	s.Play()
	for frame := 0; ; frame++ {
		if err := writeFrame(w, s, opts.Clear); err != nil {
			return err
		}
		slog.Debug("frame", "generation", s.Generation(), "population", s.Board().Population())
		if frame >= opts.Frames {
			return nil
		}
		if err := sleep(ctx, s.Pacing().FrameInterval()); err != nil {
			return err
		}
		s.Tick()
	}
}

func writeFrame(w io.Writer, s *core.Session, clearFirst bool) error {
	prefix := ""
	if clearFirst {
		prefix = clearScreen
	}
	_, err := fmt.Fprintf(w, "%s%s\n%s\n\n", prefix, s.Status().Title(), s.Board())
	return err
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
