package wave

import "github.com/katalvlaran/wfc/grid"

// Rules is the read-only pattern relation a Wave propagates over.
// *catalog.Catalog satisfies it. Neighbors must be symmetric:
// b ∈ Neighbors(a, d) iff a ∈ Neighbors(b, d.Opposite()).
type Rules interface {
	Len() int
	Weight(t int) float64
	Neighbors(t int, d grid.Direction) []int
}

// ClearReport describes the outcome of ClearRegion.
type ClearReport struct {
	// Cleared is the number of cells reset inside the rectangle.
	Cleared int
	// Disturbed lists cells outside the rectangle whose possibility set shrank
	// while re-propagating, in ascending order.
	Disturbed []int
	// Contradiction is set when some cell has no possible pattern afterwards.
	Contradiction bool
}

// Stats counts propagation work since the last Reset.
type Stats struct {
	Bans     uint64
	Enqueued uint64
}
