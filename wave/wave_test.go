package wave_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc/catalog"
	"github.com/katalvlaran/wfc/grid"
	"github.com/katalvlaran/wfc/wave"
)

// relation builds a catalog from a per-direction adjacency table.
func relation(t testing.TB, weights []float64, allowed [4][][]int) *catalog.Catalog {
	t.Helper()
	c, err := catalog.FromAdjacency(weights, allowed)
	require.NoError(t, err)
	return c
}

// anything allows every pair in every direction.
func anything(p int) [4][][]int {
	var allowed [4][][]int
	all := make([]int, p)
	for i := range all {
		all[i] = i
	}
	for _, d := range grid.Directions {
		allowed[d] = make([][]int, p)
		for t := 0; t < p; t++ {
			allowed[d][t] = all
		}
	}
	return allowed
}

// checker allows A next to B only.
func checker() [4][][]int {
	var allowed [4][][]int
	for _, d := range grid.Directions {
		allowed[d] = [][]int{{1}, {0}}
	}
	return allowed
}

// stripes alternates A and B horizontally and allows anything vertically.
func stripes() [4][][]int {
	return [4][][]int{
		grid.Right: {{1}, {0}},
		grid.Left:  {{1}, {0}},
		grid.Down:  {{0, 1}, {0, 1}},
		grid.Up:    {{0, 1}, {0, 1}},
	}
}

// random builds a symmetric relation where each pair is allowed with probability q.
func random(rng *rand.Rand, p int, q float64) [4][][]int {
	var allowed [4][][]int
	for _, d := range grid.Directions {
		allowed[d] = make([][]int, p)
	}
	for _, d := range []grid.Direction{grid.Right, grid.Down} {
		for a := 0; a < p; a++ {
			for b := 0; b < p; b++ {
				if rng.Float64() < q {
					allowed[d][a] = append(allowed[d][a], b)
					allowed[d.Opposite()][b] = append(allowed[d.Opposite()][b], a)
				}
			}
		}
	}
	return allowed
}

func newWave(t testing.TB, c *catalog.Catalog, w, h int, opts ...grid.Option) *wave.Wave {
	t.Helper()
	g, err := grid.New(w, h, opts...)
	require.NoError(t, err)
	wv, err := wave.New(g, c)
	require.NoError(t, err)
	return wv
}

// requireConsistent asserts that every possible pattern has a supporter on every
// live link and that the caches agree with the bits.
func requireConsistent(t *testing.T, wv *wave.Wave, c *catalog.Catalog) {
	t.Helper()
	g := wv.Grid()
	for i := 0; i < wv.Len(); i++ {
		cands := wv.Patterns(i)
		require.Len(t, cands, wv.Remaining(i), "cell %d", i)
		sum := 0.0
		for _, p := range cands {
			sum += c.Weight(p)
			for _, d := range grid.Directions {
				src, ok := g.Link(i, d)
				if !ok {
					continue
				}
				supported := false
				for _, q := range c.Neighbors(p, d.Opposite()) {
					if wv.Possible(src, q) {
						supported = true
						break
					}
				}
				require.True(t, supported, "cell %d pattern %d dir %v", i, p, d)
			}
		}
		require.InDelta(t, sum, wv.SumWeights(i), 1e-9)
	}
}

//----------------------------------------------------------------------------//
// New / Reset
//----------------------------------------------------------------------------//

type emptyRules struct{}

func (emptyRules) Len() int                             { return 0 }
func (emptyRules) Weight(int) float64                   { return 0 }
func (emptyRules) Neighbors(int, grid.Direction) []int { return nil }

func TestNew_Errors(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	_, err = wave.New(g, nil)
	assert.ErrorIs(t, err, wave.ErrNilRules)

	_, err = wave.New(g, emptyRules{})
	assert.ErrorIs(t, err, wave.ErrNoPatterns)
}

func TestReset_AllPossible(t *testing.T) {
	c := relation(t, []float64{1, 3}, anything(2))
	wv := newWave(t, c, 3, 2)

	assert.Equal(t, 6, wv.Len())
	assert.Equal(t, 2, wv.PatternCount())
	assert.Zero(t, wv.Pending())
	want := math.Log(4) - 3*math.Log(3)/4
	for i := 0; i < wv.Len(); i++ {
		assert.Equal(t, 2, wv.Remaining(i))
		assert.Equal(t, []int{0, 1}, wv.Patterns(i))
		assert.InDelta(t, want, wv.Entropy(i), 1e-12)
		assert.Equal(t, 4.0, wv.SumWeights(i))
		_, ok := wv.Decided(i)
		assert.False(t, ok)
	}
}

func TestReset_QueuesUnsupported(t *testing.T) {
	// Pattern 1 has no right-hand supporter, so it cannot sit right of anything.
	allowed := [4][][]int{
		grid.Right: {{0}, {0}},
		grid.Left:  {{0, 1}, nil},
		grid.Down:  {{0, 1}, {0, 1}},
		grid.Up:    {{0, 1}, {0, 1}},
	}
	c := relation(t, []float64{1, 1}, allowed)
	wv := newWave(t, c, 3, 1)

	assert.Equal(t, 2, wv.Pending())
	require.False(t, wv.PropagateAll())
	assert.Equal(t, 2, wv.Remaining(0))
	for _, i := range []int{1, 2} {
		p, ok := wv.Decided(i)
		require.True(t, ok)
		assert.Equal(t, 0, p)
	}
	requireConsistent(t, wv, c)
}

//----------------------------------------------------------------------------//
// Ban / PropagateAll
//----------------------------------------------------------------------------//

func TestBan_Idempotent(t *testing.T) {
	c := relation(t, []float64{1, 3}, anything(2))
	wv := newWave(t, c, 2, 2)

	assert.False(t, wv.Ban(0, 1))
	assert.False(t, wv.Ban(0, 1))
	assert.Equal(t, 1, wv.Remaining(0))
	assert.Equal(t, uint64(1), wv.Stats().Bans)
	assert.InDelta(t, 0, wv.Entropy(0), 1e-12)

	p, ok := wv.Decided(0)
	require.True(t, ok)
	assert.Equal(t, 0, p)

	assert.True(t, wv.Ban(0, 0))
	assert.Zero(t, wv.Remaining(0))
}

func TestPropagate_Checkerboard(t *testing.T) {
	c := relation(t, []float64{1, 1}, checker())
	wv := newWave(t, c, 4, 3)

	require.False(t, wv.Ban(0, 1))
	require.False(t, wv.PropagateAll())
	g := wv.Grid()
	for i := 0; i < wv.Len(); i++ {
		x, y := g.Coordinate(i)
		p, ok := wv.Decided(i)
		require.True(t, ok, "cell %d", i)
		assert.Equal(t, (x+y)%2, p, "cell (%d,%d)", x, y)
	}
	assert.Zero(t, wv.Pending())
	requireConsistent(t, wv, c)
}

func TestPropagate_OddCycleContradiction(t *testing.T) {
	c := relation(t, []float64{1, 1}, stripes())
	wv := newWave(t, c, 3, 1, grid.WithPeriodic(true))
	require.False(t, wv.PropagateAll())

	wv.Ban(0, 1)
	assert.True(t, wv.PropagateAll())

	empty := 0
	for i := 0; i < wv.Len(); i++ {
		if wv.Remaining(i) == 0 {
			empty++
		}
	}
	assert.Equal(t, 1, empty)
}

func TestPropagate_EvenCycle(t *testing.T) {
	c := relation(t, []float64{1, 1}, stripes())
	wv := newWave(t, c, 4, 2, grid.WithPeriodic(true))

	wv.Ban(5, 0)
	wv.Ban(0, 1)
	require.False(t, wv.PropagateAll())
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			p, ok := wv.Decided(y*4 + x)
			require.True(t, ok)
			assert.Equal(t, x%2, p, "cell (%d,%d)", x, y)
		}
	}
}

func TestPropagate_MonotonicAndConsistent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := relation(t, []float64{1, 2, 3, 1, 2, 1}, random(rng, 6, 0.6))
	wv := newWave(t, c, 8, 8)
	if wv.PropagateAll() {
		t.Skip("relation is unsatisfiable from the start")
	}

	for step := 0; step < 40; step++ {
		before := make([][]int, wv.Len())
		for i := range before {
			before[i] = wv.Patterns(i)
		}
		i := rng.Intn(wv.Len())
		if wv.Remaining(i) < 2 {
			continue
		}
		cands := wv.Patterns(i)
		wv.Ban(i, cands[rng.Intn(len(cands))])
		if wv.PropagateAll() {
			return
		}
		for j := range before {
			require.Subset(t, before[j], wv.Patterns(j), "cell %d grew", j)
		}
		requireConsistent(t, wv, c)
	}
}

//----------------------------------------------------------------------------//
// ClearRegion
//----------------------------------------------------------------------------//

func TestClearRegion_Restores(t *testing.T) {
	c := relation(t, []float64{1, 1}, anything(2))
	wv := newWave(t, c, 3, 3)
	wv.Ban(4, 1)
	wv.Ban(0, 0)
	require.False(t, wv.PropagateAll())

	rep, err := wv.ClearRegion(grid.R(1, 1, 2, 2))
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Cleared)
	assert.Empty(t, rep.Disturbed)
	assert.False(t, rep.Contradiction)
	assert.Equal(t, 2, wv.Remaining(4))
	assert.Equal(t, 1, wv.Remaining(0), "cells outside the region keep their state")
}

func TestClearRegion_RepropagatesFromBorder(t *testing.T) {
	c := relation(t, []float64{1, 1}, checker())
	wv := newWave(t, c, 4, 4)
	wv.Ban(0, 1)
	require.False(t, wv.PropagateAll())

	rep, err := wv.ClearRegion(grid.R(1, 1, 3, 3))
	require.NoError(t, err)
	assert.Equal(t, 4, rep.Cleared)
	assert.False(t, rep.Contradiction)
	g := wv.Grid()
	for i := 0; i < wv.Len(); i++ {
		x, y := g.Coordinate(i)
		p, ok := wv.Decided(i)
		require.True(t, ok)
		assert.Equal(t, (x+y)%2, p)
	}
	requireConsistent(t, wv, c)
}

func TestClearRegion_AfterContradiction(t *testing.T) {
	c := relation(t, []float64{1, 1}, stripes())
	wv := newWave(t, c, 3, 1, grid.WithPeriodic(true))
	wv.Ban(0, 1)
	require.True(t, wv.PropagateAll())

	rep, err := wv.ClearRegion(grid.R(0, 0, 3, 1))
	require.NoError(t, err)
	assert.False(t, rep.Contradiction)
	for i := 0; i < wv.Len(); i++ {
		assert.Equal(t, 2, wv.Remaining(i))
	}
	requireConsistent(t, wv, c)
}

func TestClearRegion_StaleQueueDisturbsOutside(t *testing.T) {
	c := relation(t, []float64{1, 1}, stripes())
	wv := newWave(t, c, 3, 1)
	wv.Ban(0, 1) // left unpropagated
	require.NotZero(t, wv.Pending())

	rep, err := wv.ClearRegion(grid.R(2, 0, 3, 1))
	require.NoError(t, err)
	assert.False(t, rep.Contradiction)
	assert.Equal(t, []int{1}, rep.Disturbed)
	for i, want := range []int{0, 1, 0} {
		p, ok := wv.Decided(i)
		require.True(t, ok)
		assert.Equal(t, want, p)
	}
}

func TestClearRegion_OutOfRange(t *testing.T) {
	c := relation(t, []float64{1, 1}, anything(2))
	wv := newWave(t, c, 3, 3)

	for _, r := range []grid.Rect{grid.R(0, 0, 4, 3), grid.R(-1, 0, 1, 1), grid.R(1, 1, 1, 2)} {
		_, err := wv.ClearRegion(r)
		assert.ErrorIs(t, err, grid.ErrOutOfRange, "%v", r)
	}
}
