package catalog

import (
	"encoding/binary"

	"github.com/katalvlaran/wfc/bitset"
	"github.com/katalvlaran/wfc/grid"
)

// BuildFromSamples extracts an overlapping-model catalog from sample.
//
// Behavior:
//  1. Every N×N window of the sample (wrapping when WithPeriodicInput is set,
//     otherwise only windows fully inside) is read in row-major scan order.
//  2. For each window, the first k dihedral variants (WithSymmetry) are taken in
//     the order identity, mirror, rotate, mirror∘rotate, rotate², ...
//  3. Identical footprints are merged; the occurrence count is the weight.
//     Patterns are numbered by first occurrence.
//  4. b may sit one step from a in direction d iff a's footprint shifted by d
//     agrees with b's on every overlapping cell.
//
// Tile rotations inside footprints are carried verbatim; a rotated window moves
// tiles but does not re-orient them.
//
// Errors: ErrBadPatternSize, ErrBadSymmetry, ErrInvalidRuleSet (empty catalog).
// Complexity: O(W·H·k·N²) extraction, O(P²·N²) compatibility.
func BuildFromSamples(sample *Sample, opts ...Option) (*Catalog, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if sample == nil {
		return nil, ErrEmptySample
	}
	n := o.PatternSize
	if n < 1 || (!o.PeriodicInput && (n > sample.Width || n > sample.Height)) {
		return nil, ErrBadPatternSize
	}
	if o.Symmetry < 1 || o.Symmetry > 8 {
		return nil, ErrBadSymmetry
	}

	// Palette of distinct tiles, in scan order.
	index := make(map[Tile]int)
	var palette []Tile
	colors := make([]int, len(sample.cells))
	for i, t := range sample.cells {
		c, ok := index[t]
		if !ok {
			c = len(palette)
			index[t] = c
			palette = append(palette, t)
		}
		colors[i] = c
	}

	xmax, ymax := sample.Width, sample.Height
	if !o.PeriodicInput {
		xmax, ymax = sample.Width-n+1, sample.Height-n+1
	}

	var (
		footprints [][]int
		weights    []float64
		seen       = make(map[string]int)
		variants   [8][]int
		key        []byte
	)
	for y := 0; y < ymax; y++ {
		for x := 0; x < xmax; x++ {
			variants[0] = window(n, func(dx, dy int) int {
				return colors[(x+dx)%sample.Width+((y+dy)%sample.Height)*sample.Width]
			})
			variants[1] = reflect(variants[0], n)
			variants[2] = rotate(variants[0], n)
			variants[3] = reflect(variants[2], n)
			variants[4] = rotate(variants[2], n)
			variants[5] = reflect(variants[4], n)
			variants[6] = rotate(variants[4], n)
			variants[7] = reflect(variants[6], n)

			for k := 0; k < o.Symmetry; k++ {
				key = key[:0]
				for _, c := range variants[k] {
					key = binary.AppendUvarint(key, uint64(c))
				}
				if t, ok := seen[string(key)]; ok {
					weights[t]++
					continue
				}
				seen[string(key)] = len(footprints)
				footprints = append(footprints, variants[k])
				weights = append(weights, 1)
			}
		}
	}

	p := len(footprints)
	patterns := make([]Pattern, p)
	for t, fp := range footprints {
		cells := make([]Tile, len(fp))
		for i, c := range fp {
			cells[i] = palette[c]
		}
		patterns[t] = Pattern{Weight: weights[t], Cells: cells}
	}

	var dense [4][]uint64
	for _, d := range grid.Directions {
		dense[d] = bitset.Arena(p, p)
		for a := 0; a < p; a++ {
			row := bitset.At(dense[d], a, p)
			for b := 0; b < p; b++ {
				if agrees(footprints[a], footprints[b], d.DX(), d.DY(), n) {
					row.Add(b)
				}
			}
		}
	}

	return finalize(n, sample.names, patterns, dense, o)
}

// window builds an N×N footprint from f(dx,dy).
func window(n int, f func(dx, dy int) int) []int {
	out := make([]int, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			out[x+y*n] = f(x, y)
		}
	}
	return out
}

// rotate turns a footprint a quarter turn.
func rotate(p []int, n int) []int {
	return window(n, func(x, y int) int { return p[n-1-y+x*n] })
}

// reflect mirrors a footprint across its vertical axis.
func reflect(p []int, n int) []int {
	return window(n, func(x, y int) int { return p[n-1-x+y*n] })
}

// agrees reports whether p2 placed at offset (dx,dy) from p1 matches it on the overlap.
func agrees(p1, p2 []int, dx, dy, n int) bool {
	xmin, xmax := max(dx, 0), min(dx+n, n)
	ymin, ymax := max(dy, 0), min(dy+n, n)
	for y := ymin; y < ymax; y++ {
		for x := xmin; x < xmax; x++ {
			if p1[x+n*y] != p2[x-dx+n*(y-dy)] {
				return false
			}
		}
	}
	return true
}
