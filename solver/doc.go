// Package solver drives Wave Function Collapse generation over a catalog.
//
// A Model owns one wave.Wave, one seeded random source and the run state machine
//
//	Ready → Running → {Success, Contradiction}
//
// Each step of Run picks the undecided cell of minimum entropy (ties go to the
// first cell in row-major order), draws one of its patterns with probability
// proportional to weight, bans every other pattern there and propagates.
//
// Run is cooperative time-slicing: call it repeatedly with a Steps budget and it
// resumes where it stopped. Contradiction is an Outcome, not an error; whether to
// retry with another seed is up to the caller.
//
// A Model is single-threaded and owns all of its state. Distinct Models may run in
// parallel goroutines and share only the immutable *catalog.Catalog.
//
// Determinism: for a fixed catalog, grid size and seed, Run produces identical
// output on every platform. Floating-point sums run in ascending pattern order and
// products are never fused.
package solver
