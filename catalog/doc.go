// Package catalog builds the pattern catalogs a wfc solver collapses over.
//
// A Catalog is an immutable list of P patterns. Each pattern has a positive
// weight, an N×N footprint of Tiles, and for every grid.Direction the set of
// patterns allowed to sit next to it in that direction. The relation is stored
// twice: as sorted neighbor lists (walked by the propagator) and as a dense
// bit-matrix (for O(1) Compatible lookups and validation).
//
// Constructors:
//
//   - BuildFromSamples: the overlapping strategy. Slides an N×N window over a
//     Sample, deduplicates windows, counts occurrences as weights, optionally
//     adds up to 8 dihedral variants, and makes two patterns compatible when
//     their footprints agree on the overlap.
//   - BuildFromRules: the simple tiled strategy. Expands a RuleSet of tiles with
//     symmetry classes and explicit neighbor rules into rotated variants (N=1).
//   - FromAdjacency: an explicit relation supplied as-is, validated but never
//     symmetrized.
//
// Guarantee: for every catalog, Compatible(a, b, d) == Compatible(b, a, d.Opposite()).
// A violation, an unknown tile or rotation, or a non-positive weight fails the
// constructor with ErrInvalidRuleSet; no partially built catalog is returned.
//
// Complexity:
//
//   - BuildFromSamples: O(W·H·S·N²) extraction + O(P²·N²) compatibility (S = symmetry).
//   - BuildFromRules:   O(R·8 + P²/64) for R rules.
//   - Validation:       O(P²) per direction.
//
// A Catalog is safe for concurrent reads; several solver Models may share one.
package catalog
