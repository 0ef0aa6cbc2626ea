package solver

import "math"

// nextCell returns the undecided interior cell of minimum entropy.
// status is Incomplete when a cell was found, Success when every interior cell is
// decided, and Contradiction as soon as any cell has no possible pattern.
// Complexity: O(C).
func (m *Model) nextCell() (cell int, status Outcome) {
	best, cell := math.Inf(1), -1
	for i := 0; i < m.wave.Len(); i++ {
		n := m.wave.Remaining(i)
		if n == 0 {
			return i, Contradiction
		}
		if n == 1 || m.boundary[i] {
			continue
		}
		if e := m.wave.Entropy(i); e < best {
			best, cell = e, i
		}
	}
	if cell < 0 {
		return -1, Success
	}
	return cell, Incomplete
}

// collapse draws one possible pattern of cell weighted by its weight and bans the
// others. It consumes exactly one Float64 from the random source.
// Complexity: O(P) plus the bans.
func (m *Model) collapse(cell int) int {
	pats := m.wave.Patterns(cell)
	sum := 0.0
	for _, t := range pats {
		sum += m.wave.Weight(t)
	}
	x := float64(m.rng.Float64() * sum)
	m.draws++

	chosen := pats[len(pats)-1]
	for _, t := range pats {
		x -= m.wave.Weight(t)
		if x < 0 {
			chosen = t
			break
		}
	}
	for _, t := range pats {
		if t != chosen {
			m.wave.Ban(cell, t)
		}
	}
	return chosen
}
