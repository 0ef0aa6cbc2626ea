package catalog

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"

	"github.com/katalvlaran/wfc/bitset"
	"github.com/katalvlaran/wfc/grid"
)

// FromAdjacency builds a catalog from an explicit relation: allowed[d][a] lists the
// patterns that may sit one step from a in direction d. Duplicate entries collapse.
// The relation is validated, not repaired: if b is allowed to the Right of a but a is
// not allowed to the Left of b, ErrInvalidRuleSet is returned.
//
// Patterns get one-cell footprints Tile{ID: t}; WithTileNames names them.
// WithGround is honored; other options are ignored.
func FromAdjacency(weights []float64, allowed [4][][]int, opts ...Option) (*Catalog, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p := len(weights)
	if o.TileNames != nil && len(o.TileNames) != p {
		return nil, fmt.Errorf("%w: %d tile names for %d patterns", ErrInvalidRuleSet, len(o.TileNames), p)
	}

	patterns := make([]Pattern, p)
	for t := range patterns {
		patterns[t] = Pattern{Weight: weights[t], Cells: []Tile{{ID: t}}}
	}
	dense, err := denseFromLists(p, allowed)
	if err != nil {
		return nil, err
	}

	return finalize(1, o.TileNames, patterns, dense, o)
}

// denseFromLists converts neighbor lists into per-direction bit-matrices.
func denseFromLists(p int, allowed [4][][]int) ([4][]uint64, error) {
	var dense [4][]uint64
	for _, d := range grid.Directions {
		dense[d] = bitset.Arena(p, p)
		if allowed[d] == nil {
			continue
		}
		if len(allowed[d]) != p {
			return dense, fmt.Errorf("%w: direction %v lists %d patterns, want %d",
				ErrInvalidRuleSet, d, len(allowed[d]), p)
		}
		for a, list := range allowed[d] {
			row := bitset.At(dense[d], a, p)
			for _, b := range list {
				if b < 0 || b >= p {
					return dense, fmt.Errorf("%w: pattern %d references undefined pattern %d", ErrInvalidRuleSet, a, b)
				}
				row.Add(b)
			}
		}
	}
	return dense, nil
}

// finalize validates weights, the ground index and direction symmetry, derives the
// neighbor lists from the dense matrices, and assembles the Catalog.
func finalize(n int, names []string, patterns []Pattern, dense [4][]uint64, o Options) (*Catalog, error) {
	p := len(patterns)
	if p == 0 {
		return nil, fmt.Errorf("%w: no patterns", ErrInvalidRuleSet)
	}
	for t, pat := range patterns {
		if !(pat.Weight > 0) || math.IsInf(pat.Weight, 0) {
			return nil, fmt.Errorf("%w: pattern %d has weight %v", ErrInvalidRuleSet, t, pat.Weight)
		}
	}

	ground := -1
	if o.UseGround {
		ground = ((o.Ground % p) + p) % p
	}

	for _, d := range grid.Directions {
		opp := d.Opposite()
		for a := 0; a < p; a++ {
			var bad error
			bitset.At(dense[d], a, p).Each(func(b int) {
				if bad == nil && !bitset.At(dense[opp], b, p).Has(a) {
					bad = fmt.Errorf("%w: %d allows %d to the %v, but %d does not allow %d to the %v",
						ErrInvalidRuleSet, a, b, d, b, a, opp)
				}
			})
			if bad != nil {
				return nil, bad
			}
		}
	}

	c := &Catalog{
		n:        n,
		names:    append([]string(nil), names...),
		patterns: patterns,
		ground:   ground,
		dense:    dense,
	}
	for _, d := range grid.Directions {
		c.neighbors[d] = make([][]int, p)
		for a := 0; a < p; a++ {
			c.neighbors[d][a] = bitset.At(dense[d], a, p).Slice()
		}
	}
	return c, nil
}

// Digest returns a stable hex SHA-256 over everything that influences solving:
// footprint size, weights, footprints, tile names, ground and the relation.
// Two catalogs with the same digest produce identical runs for the same seed.
func (c *Catalog) Digest() string {
	h := sha256.New()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	put(uint64(c.n))
	put(uint64(len(c.patterns)))
	put(uint64(int64(c.ground)))
	for _, pat := range c.patterns {
		put(math.Float64bits(pat.Weight))
		for _, cell := range pat.Cells {
			put(uint64(cell.ID))
			put(uint64(cell.Rotation))
		}
	}
	for _, name := range c.names {
		put(uint64(len(name)))
		h.Write([]byte(name))
	}
	for _, d := range grid.Directions {
		for _, w := range c.dense[d] {
			put(w)
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
