// Package wave holds the per-cell state of a wfc run and the constraint propagator.
//
// State, for a grid of C cells over P patterns:
//
//   - possibility bits: one P-bit set per cell, all in one flat arena
//     indexed cell*words + word;
//   - remaining count, Σw and Σw·log w per cell, and the cached Shannon entropy
//     log(Σw) − Σw·log w / Σw;
//   - support counters compat[(cell*P + t)*4 + d]: how many patterns still possible
//     in the neighbor opposite to d allow t one step in direction d.
//
// A pattern is eliminated the moment one of its live counters reaches zero.
// Counters are live only where constraints can flow (see grid.Grid.Link); other
// counters hold a non-zero placeholder and are never decremented.
//
// Propagation is an explicit FIFO of pending (cell, pattern) eliminations, with no
// recursion, so stack depth does not depend on grid size. Each pop is re-verified, so
// stale entries (e.g. for a cell reset by ClearRegion) are skipped.
//
// Complexity:
//
//   - Reset:        O(C·P).
//   - Ban:          O(Σ_d |Neighbors(t,d)|).
//   - PropagateAll: O(bans × directions × average compatible patterns).
//   - ClearRegion:  O((area + perimeter)·P·avg-compatible) plus propagation.
//
// A Wave is not safe for concurrent use; it has exactly one mutator.
package wave
