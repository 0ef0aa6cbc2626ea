package wave

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wfc/bitset"
	"github.com/katalvlaran/wfc/grid"
)

// unconstrained is the placeholder held by counters that are not live.
const unconstrained = 1

// Wave is the possibility state of every cell plus the propagator's counters.
type Wave struct {
	g     grid.Grid
	rules Rules
	p     int
	words int

	bits      []uint64
	remaining []int32
	sumW      []float64
	sumWLogW  []float64
	entropy   []float64
	compat    []int32

	weights []float64
	wLogW   []float64
	full    [4][]int32 // full[d][t] = |Neighbors(t, d.Opposite())|

	startSumW, startSumWLogW, startEntropy float64

	queue queue
	stats Stats
}

// New allocates a Wave for g over rules and initializes it with Reset.
// Returns ErrNilRules or ErrNoPatterns for an unusable relation.
// Complexity: O(C·P) time and memory.
func New(g grid.Grid, rules Rules) (*Wave, error) {
	if rules == nil {
		return nil, ErrNilRules
	}
	p := rules.Len()
	if p <= 0 {
		return nil, ErrNoPatterns
	}
	c := g.Len()

	w := &Wave{
		g:         g,
		rules:     rules,
		p:         p,
		words:     bitset.Words(p),
		bits:      bitset.Arena(c, p),
		remaining: make([]int32, c),
		sumW:      make([]float64, c),
		sumWLogW:  make([]float64, c),
		entropy:   make([]float64, c),
		compat:    make([]int32, c*p*4),
		weights:   make([]float64, p),
		wLogW:     make([]float64, p),
	}
	for t := 0; t < p; t++ {
		wt := rules.Weight(t)
		w.weights[t] = wt
		// No FMA: the conversion forces rounding of the product.
		w.wLogW[t] = float64(wt * math.Log(wt))
		w.startSumW += wt
		w.startSumWLogW += w.wLogW[t]
	}
	w.startEntropy = entropyOf(w.startSumW, w.startSumWLogW)
	for _, d := range grid.Directions {
		w.full[d] = make([]int32, p)
		for t := 0; t < p; t++ {
			w.full[d][t] = int32(len(rules.Neighbors(t, d.Opposite())))
		}
	}

	w.Reset()
	return w, nil
}

// Reset makes every pattern possible in every cell, restores the entropy caches to
// the catalog totals and the counters to their full values. Patterns that have no
// supporter at all on some live link are queued for elimination; call PropagateAll
// before observing.
// Complexity: O(C·P).
func (w *Wave) Reset() {
	w.queue.reset()
	w.stats = Stats{}
	for i := 0; i < w.g.Len(); i++ {
		w.resetCell(i)
		for t := 0; t < w.p; t++ {
			base := (i*w.p + t) * 4
			for _, d := range grid.Directions {
				if _, ok := w.g.Link(i, d); ok {
					w.compat[base+int(d)] = w.full[d][t]
				} else {
					w.compat[base+int(d)] = unconstrained
				}
			}
		}
		w.enqueueUnsupported(i)
	}
}

// Ban removes pattern t from cell i and updates the neighbors' counters, queueing any
// neighbor pattern left without support. Banning an excluded pattern is a no-op.
// contradiction reports whether cell i has no possible pattern left.
func (w *Wave) Ban(i, t int) (contradiction bool) {
	cell := w.cell(i)
	if !cell.Has(t) {
		return w.remaining[i] == 0
	}
	cell.Remove(t)
	w.remaining[i]--
	w.sumW[i] -= w.weights[t]
	w.sumWLogW[i] -= w.wLogW[t]
	if w.remaining[i] > 0 {
		w.entropy[i] = entropyOf(w.sumW[i], w.sumWLogW[i])
	} else {
		w.entropy[i] = 0
	}
	base := (i*w.p + t) * 4
	for d := 0; d < 4; d++ {
		w.compat[base+d] = 0
	}
	w.stats.Bans++

	for _, d := range grid.Directions {
		j, ok := w.g.Neighbor(i, d)
		if !ok {
			continue
		}
		if x, y := w.g.Coordinate(j); w.g.OnBoundary(x, y) {
			continue
		}
		for _, t2 := range w.rules.Neighbors(t, d) {
			k := (j*w.p+t2)*4 + int(d)
			if w.compat[k] == 0 {
				continue
			}
			w.compat[k]--
			if w.compat[k] == 0 {
				w.queue.push(j, t2)
				w.stats.Enqueued++
			}
		}
	}

	if debug {
		w.check(i)
	}
	return w.remaining[i] == 0
}

// PropagateAll drains the elimination queue, banning transitively, until a fixed
// point or the first contradiction. After a contradiction the remaining queue is
// kept; the run is over for the current seed until Reset or ClearRegion.
func (w *Wave) PropagateAll() (contradiction bool) {
	for w.queue.len() > 0 {
		i, t := w.queue.pop()
		if !w.unsupported(i, t) {
			continue
		}
		if w.Ban(i, t) {
			return true
		}
	}
	return false
}

// Pending returns the number of queued eliminations.
func (w *Wave) Pending() int { return w.queue.len() }

// Grid returns the topology.
func (w *Wave) Grid() grid.Grid { return w.g }

// Len returns the number of cells.
func (w *Wave) Len() int { return w.g.Len() }

// PatternCount returns P.
func (w *Wave) PatternCount() int { return w.p }

// Possible reports whether pattern t is still possible in cell i.
func (w *Wave) Possible(i, t int) bool { return w.cell(i).Has(t) }

// Remaining returns how many patterns are still possible in cell i.
func (w *Wave) Remaining(i int) int { return int(w.remaining[i]) }

// Entropy returns the cached weighted entropy of cell i.
func (w *Wave) Entropy(i int) float64 { return w.entropy[i] }

// SumWeights returns Σw over the possible patterns of cell i.
func (w *Wave) SumWeights(i int) float64 { return w.sumW[i] }

// Weight returns the weight of pattern t.
func (w *Wave) Weight(t int) float64 { return w.weights[t] }

// Decided returns the single remaining pattern of cell i, if exactly one remains.
func (w *Wave) Decided(i int) (int, bool) {
	if w.remaining[i] != 1 {
		return 0, false
	}
	return w.cell(i).First(), true
}

// Patterns returns the possible patterns of cell i in ascending order.
func (w *Wave) Patterns(i int) []int { return w.cell(i).Slice() }

// EachPattern calls fn for every possible pattern of cell i in ascending order.
// fn must not ban patterns of cell i.
func (w *Wave) EachPattern(i int, fn func(t int)) { w.cell(i).Each(fn) }

// Stats returns propagation counters since the last Reset.
func (w *Wave) Stats() Stats { return w.stats }

func (w *Wave) cell(i int) bitset.Set {
	return bitset.Set(w.bits[i*w.words : (i+1)*w.words : (i+1)*w.words])
}

func (w *Wave) resetCell(i int) {
	w.cell(i).Fill(w.p)
	w.remaining[i] = int32(w.p)
	w.sumW[i] = w.startSumW
	w.sumWLogW[i] = w.startSumWLogW
	w.entropy[i] = w.startEntropy
}

// unsupported reports whether t is possible in i but has a live counter at zero.
func (w *Wave) unsupported(i, t int) bool {
	if !w.cell(i).Has(t) {
		return false
	}
	base := (i*w.p + t) * 4
	for d := 0; d < 4; d++ {
		if w.compat[base+d] == 0 {
			return true
		}
	}
	return false
}

func (w *Wave) enqueueUnsupported(i int) {
	w.cell(i).Each(func(t int) {
		if w.unsupported(i, t) {
			w.queue.push(i, t)
			w.stats.Enqueued++
		}
	})
}

func entropyOf(sumW, sumWLogW float64) float64 {
	return math.Log(sumW) - sumWLogW/sumW
}

// check panics when cell i's caches disagree with its bits.
func (w *Wave) check(i int) {
	if n := w.cell(i).Count(); n != int(w.remaining[i]) || n < 0 {
		panic(fmt.Sprintf("wave: invariant violated: cell %d has %d bits but remaining=%d", i, n, w.remaining[i]))
	}
}
