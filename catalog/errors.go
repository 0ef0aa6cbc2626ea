package catalog

import "errors"

// Sentinel errors for catalog construction. Detailed causes wrap these with %w.
var (
	// ErrInvalidRuleSet indicates an inconsistent adjacency relation, an undefined
	// tile or rotation, a non-positive weight, or an empty catalog.
	ErrInvalidRuleSet = errors.New("catalog: invalid rule set")

	// ErrEmptySample indicates a sample grid with no rows or no columns.
	ErrEmptySample = errors.New("catalog: sample must have at least one row and one column")

	// ErrNonRectangular indicates sample rows of differing lengths.
	ErrNonRectangular = errors.New("catalog: all sample rows must have the same length")

	// ErrBadPatternSize indicates N < 1, or N larger than a non-periodic sample.
	ErrBadPatternSize = errors.New("catalog: pattern size out of range")

	// ErrBadSymmetry indicates a symmetry variant count outside 1..8.
	ErrBadSymmetry = errors.New("catalog: symmetry must be in 1..8")
)
