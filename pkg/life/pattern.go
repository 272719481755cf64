package life

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Format identifies a pattern text encoding.
type Format int

const (
	// FormatChars is a picture of the pattern drawn with a dead and an alive glyph.
	FormatChars Format = iota + 1
	// FormatCoords is a list of row,col pairs.
	FormatCoords
)

var formatMarkers = []struct {
	marker string
	format Format
}{
	{"chars", FormatChars},
	{"coords", FormatCoords},
}

var parsers = map[Format]func(string) ([]Cell, error){
	FormatChars:  parseChars,
	FormatCoords: parseCoords,
}

var (
	glyphToken = regexp.MustCompile(`\{(.)(.)\}`)
	coordPair  = regexp.MustCompile(`(\d+),(\d+)`)
)

// String returns the marker that introduces the format.
func (f Format) String() string {
	for _, m := range formatMarkers {
		if m.format == f {
			return m.marker
		}
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// DetectFormat selects a format from the marker at the very start of text.
func DetectFormat(text string) (Format, error) {
	for _, m := range formatMarkers {
		if strings.HasPrefix(text, m.marker) {
			return m.format, nil
		}
	}
	head := text
	if i := strings.IndexByte(head, '\n'); i >= 0 {
		head = head[:i]
	}
	if len(head) > 16 {
		head = head[:16]
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, head)
}

// ParsePattern decodes pattern text into cells relative to the pattern's own origin.
// Duplicates are dropped; order follows the text.
func ParsePattern(text string) ([]Cell, error) {
	f, err := DetectFormat(text)
	if err != nil {
		return nil, err
	}
	return parsers[f](text)
}

func parseChars(text string) ([]Cell, error) {
	loc := glyphToken.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil, ErrMissingGlyphs
	}
	dead := []rune(text[loc[2]:loc[3]])[0]
	alive := []rune(text[loc[4]:loc[5]])[0]

	body := text[loc[1]:]
	if i := strings.IndexByte(body, '\n'); i >= 0 {
		body = body[i+1:]
	} else {
		body = ""
	}

	var cells []Cell
	row := 0
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if !glyphLine(line, dead, alive) {
			continue
		}
		col := 0
		for _, g := range line {
			if g == alive {
				cells = append(cells, Cell{Row: row, Col: col})
			}
			col++
		}
		row++
	}
	return cells, nil
}

func glyphLine(line string, dead, alive rune) bool {
	if line == "" {
		return false
	}
	for _, g := range line {
		if g != dead && g != alive {
			return false
		}
	}
	return true
}

func parseCoords(text string) ([]Cell, error) {
	seen := make(map[Cell]struct{})
	var cells []Cell
	for _, m := range coordPair.FindAllStringSubmatch(text, -1) {
		r, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrBadCoordinate, m[0])
		}
		c, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrBadCoordinate, m[0])
		}
		cell := Cell{Row: r, Col: c}
		if _, ok := seen[cell]; ok {
			continue
		}
		seen[cell] = struct{}{}
		cells = append(cells, cell)
	}
	return cells, nil
}

// Center shifts pattern-local cells toward the middle of a rows x cols board.
//
// The shift is derived from the largest row and column only, so a pattern whose
// smallest coordinate is not zero lands off center by half that offset.
func Center(cells []Cell, rows, cols int) ([]Cell, error) {
	if err := checkDimensions(rows, cols); err != nil {
		return nil, err
	}
	maxRow, maxCol := 0, 0
	for _, c := range cells {
		maxRow = max(maxRow, c.Row)
		maxCol = max(maxCol, c.Col)
	}
	if maxRow >= rows || maxCol >= cols {
		return nil, fmt.Errorf("%w: pattern reaches %v, board is %dx%d", ErrPatternTooLarge, Cell{Row: maxRow, Col: maxCol}, rows, cols)
	}

	rowShift := (rows - maxRow) / 2
	colShift := (cols - maxCol) / 2
	out := make([]Cell, len(cells))
	for i, c := range cells {
		out[i] = Cell{Row: c.Row + rowShift, Col: c.Col + colShift}
	}
	return out, nil
}

// FromPattern parses pattern text and centers it on a new rows x cols board.
func FromPattern(text string, rows, cols int) (*Board, error) {
	if err := checkDimensions(rows, cols); err != nil {
		return nil, err
	}
	cells, err := ParsePattern(text)
	if err != nil {
		return nil, err
	}
	centered, err := Center(cells, rows, cols)
	if err != nil {
		return nil, err
	}
	return New(rows, cols, centered)
}

// FromFile reads a pattern file and centers it on a new rows x cols board.
func FromFile(path string, rows, cols int) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pattern: %w", err)
	}
	b, err := FromPattern(string(data), rows, cols)
	if err != nil {
		return nil, fmt.Errorf("load pattern %s: %w", path, err)
	}
	return b, nil
}
