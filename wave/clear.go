package wave

import "github.com/katalvlaran/wfc/grid"

// ClearRegion resets every cell in r to "all patterns possible" and re-establishes
// arc consistency with the rest of the grid.
//
// Counters are recomputed from scratch for the cells of r and for the ring of cells
// bordering it (wrapping on periodic grids); patterns in that area left without
// support are queued and propagated. When the wave was left mid-propagation by a
// contradiction, the stale queue is dropped and the whole grid is recounted instead.
//
// Returns grid.ErrOutOfRange if r is empty or not inside the grid. Cells outside r
// are never re-enabled; propagation may only shrink them further, and those that do
// shrink are listed in ClearReport.Disturbed.
func (w *Wave) ClearRegion(r grid.Rect) (ClearReport, error) {
	if err := w.g.Validate(r); err != nil {
		return ClearReport{}, err
	}

	stale := w.queue.len() > 0
	w.queue.reset()
	before := append([]int32(nil), w.remaining...)

	inside := make([]bool, w.g.Len())
	w.g.Each(r, func(i int) {
		inside[i] = true
		w.resetCell(i)
	})

	var area []int
	if stale {
		area = make([]int, w.g.Len())
		for i := range area {
			area[i] = i
		}
	} else {
		seen := make([]bool, w.g.Len())
		w.g.Each(r, func(i int) {
			seen[i] = true
			area = append(area, i)
		})
		w.g.Each(r, func(i int) {
			for _, d := range grid.Directions {
				j, ok := w.g.Neighbor(i, d)
				if ok && !seen[j] {
					seen[j] = true
					area = append(area, j)
				}
			}
		})
	}
	for _, i := range area {
		w.recount(i)
	}
	for _, i := range area {
		w.enqueueUnsupported(i)
	}

	rep := ClearReport{Cleared: r.Area()}
	rep.Contradiction = w.PropagateAll()
	for i, n := range before {
		if !inside[i] && w.remaining[i] < n {
			rep.Disturbed = append(rep.Disturbed, i)
		}
		if w.remaining[i] == 0 {
			rep.Contradiction = true
		}
	}
	return rep, nil
}

// recount rebuilds the counters of cell i from its neighbors' current possibilities.
func (w *Wave) recount(i int) {
	cell := w.cell(i)
	for t := 0; t < w.p; t++ {
		base := (i*w.p + t) * 4
		if !cell.Has(t) {
			for d := 0; d < 4; d++ {
				w.compat[base+d] = 0
			}
			continue
		}
		for _, d := range grid.Directions {
			src, ok := w.g.Link(i, d)
			if !ok {
				w.compat[base+int(d)] = unconstrained
				continue
			}
			from := w.cell(src)
			var n int32
			for _, t1 := range w.rules.Neighbors(t, d.Opposite()) {
				if from.Has(t1) {
					n++
				}
			}
			w.compat[base+int(d)] = n
		}
	}
}
