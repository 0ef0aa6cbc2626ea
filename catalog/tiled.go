package catalog

import (
	"fmt"

	"github.com/katalvlaran/wfc/bitset"
	"github.com/katalvlaran/wfc/grid"
)

// TileDef declares one tile of a tiled rule set.
type TileDef struct {
	Name     string
	Symmetry Symmetry
	Weight   float64
}

// Rule allows tile B turned RotB quarter turns to sit one step in direction Dir
// from tile A turned RotA quarter turns.
type Rule struct {
	A    string
	RotA int
	B    string
	RotB int
	Dir  grid.Direction
}

// RuleSet is the declarative input of BuildFromRules.
type RuleSet struct {
	Tiles []TileDef
	Rules []Rule
	// Subsets names groups of tiles selectable with WithSubset.
	Subsets map[string][]string
}

// BuildFromRules expands a RuleSet into a tiled catalog (N=1).
//
// Each tile contributes Symmetry.Cardinality() patterns, one per distinct rotation,
// all with the tile's weight; pattern footprints are Tile{ID: tile index, Rotation}.
// Each rule is expanded by every rotation of the whole picture, and by every
// reflection when both tiles' mirror images are representable. The mirrored pair
// (B, A, opposite direction) is added alongside, so the relation is symmetric by
// construction.
//
// With WithSubset, only the subset's tiles are kept and rules touching other tiles
// are dropped.
//
// Errors (all wrap ErrInvalidRuleSet): empty or duplicate tile names, non-positive
// weights, unknown symmetry classes, unknown subsets, rules naming undefined tiles,
// rotations outside 0..3 or invalid directions.
// Complexity: O(T + R·8 + P²).
func BuildFromRules(rs RuleSet, opts ...Option) (*Catalog, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	declared := make(map[string]bool, len(rs.Tiles))
	for _, td := range rs.Tiles {
		if td.Name == "" {
			return nil, fmt.Errorf("%w: tile with empty name", ErrInvalidRuleSet)
		}
		if declared[td.Name] {
			return nil, fmt.Errorf("%w: duplicate tile %q", ErrInvalidRuleSet, td.Name)
		}
		if td.Symmetry < SymmetryX || td.Symmetry > SymmetryNone {
			return nil, fmt.Errorf("%w: tile %q has unknown symmetry %v", ErrInvalidRuleSet, td.Name, td.Symmetry)
		}
		declared[td.Name] = true
	}

	var keep map[string]bool
	if o.Subset != "" {
		members, ok := rs.Subsets[o.Subset]
		if !ok {
			return nil, fmt.Errorf("%w: unknown subset %q", ErrInvalidRuleSet, o.Subset)
		}
		keep = make(map[string]bool, len(members))
		for _, name := range members {
			if !declared[name] {
				return nil, fmt.Errorf("%w: subset %q names undefined tile %q", ErrInvalidRuleSet, o.Subset, name)
			}
			keep[name] = true
		}
	}

	type kept struct {
		id    int
		first int
		sym   Symmetry
	}
	var (
		names    []string
		patterns []Pattern
		byName   = make(map[string]kept)
	)
	for _, td := range rs.Tiles {
		if keep != nil && !keep[td.Name] {
			continue
		}
		k := kept{id: len(names), first: len(patterns), sym: td.Symmetry}
		byName[td.Name] = k
		names = append(names, td.Name)
		for v := 0; v < td.Symmetry.Cardinality(); v++ {
			patterns = append(patterns, Pattern{
				Weight: td.Weight,
				Cells:  []Tile{{ID: k.id, Rotation: v}},
			})
		}
	}

	p := len(patterns)
	var dense [4][]uint64
	for _, d := range grid.Directions {
		dense[d] = bitset.Arena(p, p)
	}
	allow := func(a, b int, d grid.Direction) {
		bitset.At(dense[d], a, p).Add(b)
		bitset.At(dense[d.Opposite()], b, p).Add(a)
	}

	for i, r := range rs.Rules {
		if !declared[r.A] || !declared[r.B] {
			return nil, fmt.Errorf("%w: rule %d names undefined tile (%q, %q)", ErrInvalidRuleSet, i, r.A, r.B)
		}
		if r.RotA < 0 || r.RotA > 3 || r.RotB < 0 || r.RotB > 3 {
			return nil, fmt.Errorf("%w: rule %d rotation out of range 0..3", ErrInvalidRuleSet, i)
		}
		if !r.Dir.Valid() {
			return nil, fmt.Errorf("%w: rule %d has invalid direction %v", ErrInvalidRuleSet, i, r.Dir)
		}
		ka, okA := byName[r.A]
		kb, okB := byName[r.B]
		if !okA || !okB {
			continue // outside the selected subset
		}
		va, vb := ka.sym.variant(r.RotA), kb.sym.variant(r.RotB)

		for _, m := range []bool{false, true} {
			for rot := 0; rot < 4; rot++ {
				ta, okA := ka.sym.transform(va, rot, m)
				tb, okB := kb.sym.transform(vb, rot, m)
				if !okA || !okB {
					continue
				}
				d := r.Dir
				if m {
					d = d.Mirror()
				}
				for j := 0; j < rot; j++ {
					d = d.Rotate()
				}
				allow(ka.first+ta, kb.first+tb, d)
			}
		}
	}

	return finalize(1, names, patterns, dense, o)
}
