package solver

import "math/rand"

// defaultRNGSeed is used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// replay returns a source for seed advanced past draws Float64 calls.
// Complexity: O(draws).
func replay(seed int64, draws uint64) *rand.Rand {
	r := rngFromSeed(seed)
	for i := uint64(0); i < draws; i++ {
		r.Float64()
	}
	return r
}
