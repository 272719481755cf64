package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Size describes the dimensions of a board in cells.
type Size struct {
	Rows int
	Cols int
}

var sizePattern = regexp.MustCompile(`^(\d+)x(\d+)$`)

// ParseSize parses dimensions written as ROWSxCOLS, e.g. "80x120".
func ParseSize(s string) (Size, error) {
	m := sizePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Size{}, fmt.Errorf("invalid dimensions %q: want ROWSxCOLS", s)
	}
	rows, err := strconv.Atoi(m[1])
	if err != nil {
		return Size{}, fmt.Errorf("invalid rows in %q: %w", s, err)
	}
	cols, err := strconv.Atoi(m[2])
	if err != nil {
		return Size{}, fmt.Errorf("invalid cols in %q: %w", s, err)
	}
	if rows == 0 || cols == 0 {
		return Size{}, fmt.Errorf("invalid dimensions %q: rows and cols must be positive", s)
	}
	return Size{Rows: rows, Cols: cols}, nil
}

// String formats the size as ROWSxCOLS.
func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }
