// Package wfc is a Wave Function Collapse toolkit: build a pattern catalog from a
// sample grid or from declarative tile rules, then fill an output grid whose every
// neighborhood is consistent with it.
//
// 🚀 What is wfc?
//
//	A deterministic, single-threaded solver library that brings together:
//		• Catalogs: overlapping N×N patterns from samples, or tiled rules with symmetry classes
//		• Wave: flat bitset arena, support counters, explicit FIFO propagation
//		• Observer: minimum-entropy cell choice and weighted collapse
//		• Model: time-sliced Run(seed, budget), Sample, ClearSubsec, snapshots
//		• Rule documents: XML, YAML and schema-checked JSON; rules recorded from samples
//
// ✨ Guarantees
//
//   - Same catalog, size and seed ⇒ identical output on every platform
//   - Contradiction is a value, never an error or a panic
//   - Propagation never recurses; memory is O(cells × patterns)
//
// Packages:
//
//	grid/    output topology: directions, rectangles, periodic wrap, overlap boundary
//	bitset/  fixed-width bit sets over flat []uint64 arenas
//	catalog/ patterns, weights and the direction-indexed compatibility relation
//	wave/    per-cell possibilities, support counters, Ban, PropagateAll, ClearRegion
//	solver/  Model: observer, run state machine, Sample, snapshots
//	ruleset/ rule and sample documents
//	config/  YAML run configuration
//	cmd/wfc  command-line generator
//
// Quick example: a two-tile checkerboard sample yields two 2×2 patterns that only
// fit next to each other, so any output is a checkerboard:
//
//	. #      . # . # . #
//	# .  ⇒   # . # . # .
//	         . # . # . #
//
//	go get github.com/katalvlaran/wfc
package wfc
