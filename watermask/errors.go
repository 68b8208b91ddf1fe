package watermask

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("watermask: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("watermask: all rows must have the same length")
	// ErrBadSymbol indicates an ASCII map character that is neither water nor land.
	ErrBadSymbol = errors.New("watermask: unknown map symbol")
)
