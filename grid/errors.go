package grid

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no columns or no rows.
	ErrEmptyGrid = errors.New("grid: width and height must be positive")
	// ErrOverlapTooLarge indicates a bounded grid smaller than its overlap size.
	ErrOverlapTooLarge = errors.New("grid: overlap size exceeds bounded grid dimensions")
	// ErrOutOfRange indicates a coordinate or rectangle outside the grid.
	ErrOutOfRange = errors.New("grid: coordinate out of range")
)
