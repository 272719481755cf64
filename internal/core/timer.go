package core

import (
	"strconv"
	"time"
)

const (
	DefaultFramerate     = 24
	MaxFramerate         = 120
	DefaultStepsPerFrame = 1
	MaxStepsPerFrame     = 50
)

// Pacing tracks how often a driver renders and how many generations it advances per frame.
// A framerate above MaxFramerate means frames are not throttled at all.
type Pacing struct {
	framerate int
	steps     int
}

// NewPacing returns a Pacing clamped to the supported ranges. A framerate of zero
// or more than MaxFramerate selects unthrottled rendering.
func NewPacing(framerate, steps int) *Pacing {
	if framerate <= 0 || framerate > MaxFramerate {
		framerate = MaxFramerate + 1
	}
	steps = min(max(steps, 1), MaxStepsPerFrame)
	return &Pacing{framerate: framerate, steps: steps}
}

// DefaultPacing returns 24 frames per second at one generation per frame.
func DefaultPacing() *Pacing { return NewPacing(DefaultFramerate, DefaultStepsPerFrame) }

// Framerate returns the target frames per second.
func (p *Pacing) Framerate() int { return p.framerate }

// Unthrottled reports whether frames run as fast as possible.
func (p *Pacing) Unthrottled() bool { return p.framerate > MaxFramerate }

// StepsPerFrame returns the generations advanced per frame.
func (p *Pacing) StepsPerFrame() int { return p.steps }

// IncFramerate raises the framerate by one; one press past MaxFramerate unthrottles.
func (p *Pacing) IncFramerate() {
	if p.framerate <= MaxFramerate {
		p.framerate++
	}
}

// DecFramerate lowers the framerate by one, down to 1.
func (p *Pacing) DecFramerate() {
	if p.framerate > 1 {
		p.framerate--
	}
}

// IncSteps advances one more generation per frame, up to MaxStepsPerFrame.
func (p *Pacing) IncSteps() {
	if p.steps < MaxStepsPerFrame {
		p.steps++
	}
}

// DecSteps advances one fewer generation per frame, down to 1.
func (p *Pacing) DecSteps() {
	if p.steps > 1 {
		p.steps--
	}
}

// FrameInterval is the minimum time between frames; zero when unthrottled.
func (p *Pacing) FrameInterval() time.Duration {
	if p.Unthrottled() {
		return 0
	}
	return time.Second / time.Duration(p.framerate)
}

// FramerateLabel returns the framerate for display, "max" when unthrottled.
func (p *Pacing) FramerateLabel() string {
	if p.Unthrottled() {
		return "max"
	}
	return strconv.Itoa(p.framerate)
}
