package wave

import "errors"

var (
	// ErrNilRules indicates New was called without a pattern relation.
	ErrNilRules = errors.New("wave: rules are nil")
	// ErrNoPatterns indicates a relation with zero patterns.
	ErrNoPatterns = errors.New("wave: rules define no patterns")
)
