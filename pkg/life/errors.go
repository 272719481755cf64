package life

import "errors"

// Parse errors.
var (
	ErrUnknownFormat = errors.New("pattern does not start with a known format marker")
	ErrMissingGlyphs = errors.New("chars pattern has no {dead alive} glyph token")
	ErrBadCoordinate = errors.New("coordinate out of range")
)

// Geometry errors.
var (
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	ErrPatternTooLarge   = errors.New("pattern does not fit on the board")
	ErrOutOfBounds       = errors.New("cell outside the board")
)
