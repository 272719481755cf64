package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelpLinesAligned(t *testing.T) {
	lines := HelpLines()
	assert.Len(t, lines, len(KeyBindings))

	col := strings.Index(lines[0], KeyBindings[0].Action)
	for i, line := range lines {
		assert.Equal(t, col, strings.Index(line, KeyBindings[i].Action), "line %q", line)
		assert.True(t, strings.HasPrefix(line, KeyBindings[i].Keys))
	}
}
