package ruleset

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/wfc/catalog"
	"github.com/katalvlaran/wfc/grid"
)

// ToRuleSet converts doc into the input of catalog.BuildFromRules.
// Malformed tile references, symmetry classes or directions wrap
// catalog.ErrInvalidRuleSet; whether referenced tiles exist is checked by
// BuildFromRules.
func ToRuleSet(doc Document) (catalog.RuleSet, error) {
	var rs catalog.RuleSet
	for _, t := range doc.Tiles {
		sym, err := catalog.ParseSymmetry(t.Symmetry)
		if err != nil {
			return rs, fmt.Errorf("tile %q: %w", t.Name, err)
		}
		w := t.Weight
		if w == 0 {
			w = 1
		}
		rs.Tiles = append(rs.Tiles, catalog.TileDef{Name: t.Name, Symmetry: sym, Weight: w})
	}

	for i, n := range doc.Neighbors {
		a, ra, err := parseRef(n.Left)
		if err != nil {
			return rs, fmt.Errorf("neighbor %d: %w", i, err)
		}
		b, rb, err := parseRef(n.Right)
		if err != nil {
			return rs, fmt.Errorf("neighbor %d: %w", i, err)
		}
		d := grid.Right
		if n.Direction != "" {
			if d, err = grid.ParseDirection(n.Direction); err != nil {
				return rs, fmt.Errorf("%w: neighbor %d: %v", catalog.ErrInvalidRuleSet, i, err)
			}
		}
		rs.Rules = append(rs.Rules, catalog.Rule{A: a, RotA: ra, B: b, RotB: rb, Dir: d})
	}

	if len(doc.Subsets) > 0 {
		rs.Subsets = make(map[string][]string, len(doc.Subsets))
		for _, s := range doc.Subsets {
			names := make([]string, 0, len(s.Tiles))
			for _, t := range s.Tiles {
				names = append(names, t.Name)
			}
			rs.Subsets[s.Name] = names
		}
	}
	return rs, nil
}

// FromRuleSet converts rs back into a Document. Rules pointing right omit the
// direction; subsets are emitted sorted by name.
func FromRuleSet(rs catalog.RuleSet) Document {
	var doc Document
	for _, t := range rs.Tiles {
		doc.Tiles = append(doc.Tiles, Tile{Name: t.Name, Symmetry: t.Symmetry.String(), Weight: t.Weight})
	}
	for _, r := range rs.Rules {
		n := Neighbor{Left: formatRef(r.A, r.RotA), Right: formatRef(r.B, r.RotB)}
		if r.Dir != grid.Right {
			n.Direction = r.Dir.String()
		}
		doc.Neighbors = append(doc.Neighbors, n)
	}

	names := make([]string, 0, len(rs.Subsets))
	for name := range rs.Subsets {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s := Subset{Name: name}
		for _, t := range rs.Subsets[name] {
			s.Tiles = append(s.Tiles, SubsetRef{Name: t})
		}
		doc.Subsets = append(doc.Subsets, s)
	}
	return doc
}

// Build converts doc and builds the tiled catalog.
func Build(doc Document, opts ...catalog.Option) (*catalog.Catalog, error) {
	rs, err := ToRuleSet(doc)
	if err != nil {
		return nil, err
	}
	return catalog.BuildFromRules(rs, opts...)
}

// parseRef splits "name" or "name rotation".
func parseRef(s string) (string, int, error) {
	f := strings.Fields(s)
	switch len(f) {
	case 1:
		return f[0], 0, nil
	case 2:
		r, err := strconv.Atoi(f[1])
		if err != nil || r < 0 || r > 3 {
			return "", 0, fmt.Errorf("%w: bad rotation in %q", catalog.ErrInvalidRuleSet, s)
		}
		return f[0], r, nil
	}
	return "", 0, fmt.Errorf("%w: bad tile reference %q", catalog.ErrInvalidRuleSet, s)
}

func formatRef(name string, rot int) string {
	if rot == 0 {
		return name
	}
	return name + " " + strconv.Itoa(rot)
}
