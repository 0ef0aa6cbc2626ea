package solver

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/wfc/catalog"
	"github.com/katalvlaran/wfc/grid"
	"github.com/katalvlaran/wfc/wave"
)

// Model is one output grid being generated over a catalog.
type Model struct {
	cat      *catalog.Catalog
	g        grid.Grid
	wave     *wave.Wave
	boundary []bool
	log      logrus.FieldLogger

	rng    *rand.Rand
	seed   int64
	seeded bool
	draws  uint64
	steps  int
	state  State
}

// New builds a width×height Model over cat, ready to Run.
//
// Non-periodic output needs width and height of at least the catalog's pattern
// size; anything else returns ErrBadDimensions. The wave starts fully possible with
// the ground pattern (if any) forced and propagated, so a catalog that cannot fill
// the grid at all yields a Model already in StateContradiction.
// Complexity: O(C·P) plus initial propagation.
func New(cat *catalog.Catalog, width, height int, opts ...Option) (*Model, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g, err := grid.New(width, height, grid.WithPeriodic(o.Periodic), grid.WithOverlap(cat.PatternSize()))
	if err != nil {
		return nil, fmt.Errorf("%w: %dx%d with pattern size %d: %w", ErrBadDimensions, width, height, cat.PatternSize(), err)
	}
	w, err := wave.New(g, cat)
	if err != nil {
		return nil, err
	}

	m := &Model{cat: cat, g: g, wave: w, log: o.Logger, boundary: make([]bool, g.Len())}
	for i := range m.boundary {
		m.boundary[i] = g.OnBoundary(g.Coordinate(i))
	}
	m.initialize()
	return m, nil
}

// initialize resets the wave, forces the ground pattern and propagates.
func (m *Model) initialize() {
	m.wave.Reset()
	m.steps, m.state = 0, StateReady
	m.forceGround(grid.R(0, 0, m.g.Width, m.g.Height))
	if m.wave.PropagateAll() {
		m.state = StateContradiction
		m.log.Warn("contradiction during initialization")
	}
}

// forceGround bans every pattern but the ground one from the bottom row of r's
// cells, and the ground pattern from every other row of r.
func (m *Model) forceGround(r grid.Rect) {
	ground, ok := m.cat.Ground()
	if !ok {
		return
	}
	bottom := m.g.Height - 1
	m.g.Each(r, func(i int) {
		if _, y := m.g.Coordinate(i); y == bottom {
			for t := 0; t < m.cat.Len(); t++ {
				if t != ground {
					m.wave.Ban(i, t)
				}
			}
		} else {
			m.wave.Ban(i, ground)
		}
	})
}

// Run performs up to budget collapses with the random source for seed.
//
// The first Run adopts seed without touching the wave, so bans applied before it
// hold. A later Run with a different seed reseeds and re-initializes the wave; the
// same seed resumes where the previous call stopped. Once a seed has hit a
// Contradiction, Run keeps returning it until the seed changes or ClearSubsec
// repairs the grid.
func (m *Model) Run(seed int64, budget Budget) Outcome {
	switch {
	case !m.seeded:
		m.reseed(seed)
	case seed != m.seed:
		m.reseed(seed)
		m.initialize()
		m.log.WithField("seed", seed).Info("wave re-initialized")
	}
	if m.state == StateContradiction {
		return Contradiction
	}

	limit, bounded := budget.Bounded()
	for n := 0; ; n++ {
		cell, status := m.nextCell()
		switch status {
		case Success:
			if m.state != StateSuccess {
				m.log.WithFields(logrus.Fields{"seed": m.seed, "steps": m.steps}).Info("success")
			}
			m.state = StateSuccess
			return Success
		case Contradiction:
			m.contradict(cell)
			return Contradiction
		}
		if bounded && n >= limit {
			m.state = StateRunning
			return Incomplete
		}

		m.state = StateRunning
		m.collapse(cell)
		m.steps++
		if m.wave.PropagateAll() {
			m.contradict(cell)
			return Contradiction
		}
	}
}

func (m *Model) reseed(seed int64) {
	m.rng, m.seed, m.seeded, m.draws = rngFromSeed(seed), seed, true, 0
}

func (m *Model) contradict(cell int) {
	m.state = StateContradiction
	x, y := m.g.Coordinate(cell)
	m.log.WithFields(logrus.Fields{
		"seed":  m.seed,
		"x":     x,
		"y":     y,
		"steps": m.steps,
	}).Warn("contradiction")
}

// Ban excludes pattern from cell (x,y) and propagates, forcing content before or
// between runs. Returns ErrOutOfRange for a position outside the grid or an
// undefined pattern.
func (m *Model) Ban(x, y, pattern int) (Outcome, error) {
	if !m.g.InBounds(x, y) {
		return Incomplete, fmt.Errorf("%w: cell (%d,%d)", ErrOutOfRange, x, y)
	}
	if pattern < 0 || pattern >= m.cat.Len() {
		return Incomplete, fmt.Errorf("%w: pattern %d", ErrOutOfRange, pattern)
	}
	if m.state == StateContradiction {
		return Contradiction, nil
	}

	i := m.g.Index(x, y)
	if m.wave.Ban(i, pattern) || m.wave.PropagateAll() {
		m.contradict(i)
		return Contradiction, nil
	}
	cell, status := m.nextCell()
	switch status {
	case Contradiction:
		m.contradict(cell)
	case Success:
		m.state = StateSuccess
	default:
		if m.state == StateSuccess {
			m.state = StateRunning
		}
	}
	return status, nil
}

// Sample returns the content of output position (x,y), or ErrOutOfRange outside
// the grid. On non-periodic output, positions whose pattern footprint would leave
// the grid read the matching offset of the nearest interior pattern.
func (m *Model) Sample(x, y int) (Sample, error) {
	if !m.g.InBounds(x, y) {
		return Sample{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, x, y)
	}
	cell, ox, oy := m.g.Anchor(x, y)
	t, ok := m.wave.Decided(cell)
	if !ok {
		return Sample{}, nil
	}
	n := m.cat.PatternSize()
	return Sample{Pattern: t, Tile: m.cat.Pattern(t).Cells[ox+oy*n], Resolved: true}, nil
}

// Grid returns every Sample, indexed [y][x].
func (m *Model) Grid() [][]Sample {
	out := make([][]Sample, m.g.Height)
	for y := range out {
		out[y] = make([]Sample, m.g.Width)
		for x := range out[y] {
			out[y][x], _ = m.Sample(x, y)
		}
	}
	return out
}

// ClearSubsec makes every cell of r undecided again and re-propagates from its
// border, so the next Run regenerates only that region. Ground forcing is
// re-applied inside r. Cells outside r that lose patterns in the process are
// listed in the report. Returns ErrOutOfRange when r is empty or leaves the grid.
func (m *Model) ClearSubsec(r grid.Rect) (wave.ClearReport, error) {
	rep, err := m.wave.ClearRegion(r)
	if err != nil {
		return rep, err
	}
	if _, ok := m.cat.Ground(); ok {
		m.forceGround(r)
		if m.wave.PropagateAll() {
			rep.Contradiction = true
		}
	}

	switch {
	case rep.Contradiction:
		m.state = StateContradiction
	case m.state != StateReady:
		m.state = StateRunning
	}
	m.log.WithFields(logrus.Fields{
		"rect":          r,
		"cleared":       rep.Cleared,
		"disturbed":     len(rep.Disturbed),
		"contradiction": rep.Contradiction,
	}).Info("cleared subsection")
	return rep, nil
}

// Width returns the output width.
func (m *Model) Width() int { return m.g.Width }

// Height returns the output height.
func (m *Model) Height() int { return m.g.Height }

// Periodic reports whether the output wraps.
func (m *Model) Periodic() bool { return m.g.Periodic }

// State returns the lifecycle state.
func (m *Model) State() State { return m.state }

// Steps returns the number of collapses since the wave was last initialized.
func (m *Model) Steps() int { return m.steps }

// Seed returns the seed of the last Run, and false before the first Run.
func (m *Model) Seed() (int64, bool) { return m.seed, m.seeded }

// Catalog returns the catalog the Model generates from.
func (m *Model) Catalog() *catalog.Catalog { return m.cat }
