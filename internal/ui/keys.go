package ui

import "fmt"

// KeyBinding documents one keyboard control.
type KeyBinding struct {
	Keys   string
	Action string
}

// KeyBindings lists the controls handled by the game loop, in display order.
var KeyBindings = []KeyBinding{
	{Keys: "Space", Action: "play / pause"},
	{Keys: "N", Action: "single step while paused"},
	{Keys: "Up / Down", Action: "framerate +1 / -1"},
	{Keys: "Right / Left", Action: "generations per frame +1 / -1"},
	{Keys: "R", Action: "reload the starting board"},
	{Keys: "H", Action: "toggle this help"},
	{Keys: "Q / Esc", Action: "quit"},
}

// HelpLines renders KeyBindings as aligned text lines.
func HelpLines() []string {
	width := 0
	for _, kb := range KeyBindings {
		width = max(width, len(kb.Keys))
	}
	lines := make([]string, len(KeyBindings))
	for i, kb := range KeyBindings {
		lines[i] = fmt.Sprintf("%-*s  %s", width, kb.Keys, kb.Action)
	}
	return lines
}
