package ruleset

import (
	"fmt"

	"github.com/katalvlaran/wfc/catalog"
	"github.com/katalvlaran/wfc/grid"
)

// Record derives a rule document from a sample grid: every tile used by the sample
// is declared once (symmetry taken from a trailing X/I/L/T/D letter of its name,
// weight 1), and every distinct pair of horizontally or vertically adjacent cells
// becomes a neighbor rule. Pairs are listed in scan order. Unnamed tile ids are
// called "tile<id>".
//
// Every rule is written in the horizontal <set> form. A vertical pair, a above b,
// is stored as b and a each turned one quarter, b on the left: turning that rule
// back a quarter counterclockwise puts a directly above b.
// Complexity: O(W×H).
func Record(s *catalog.Sample) Document {
	names := s.Names()
	name := func(id int) string {
		if id < len(names) {
			return names[id]
		}
		return fmt.Sprintf("tile%d", id)
	}

	var doc Document
	declared := make(map[int]bool)
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			if id := s.At(x, y).ID; !declared[id] {
				declared[id] = true
				n := name(id)
				doc.Tiles = append(doc.Tiles, Tile{Name: n, Symmetry: catalog.SymmetryFromName(n).String(), Weight: 1})
			}
		}
	}

	seen := make(map[Neighbor]bool)
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			for _, d := range []grid.Direction{grid.Right, grid.Down} {
				x2, y2 := x+d.DX(), y+d.DY()
				if x2 >= s.Width || y2 >= s.Height {
					continue
				}
				a, b := s.At(x, y), s.At(x2, y2)
				n := Neighbor{Left: formatRef(name(a.ID), a.Rotation), Right: formatRef(name(b.ID), b.Rotation)}
				if d == grid.Down {
					n = Neighbor{
						Left:  formatRef(name(b.ID), (b.Rotation+1)%4),
						Right: formatRef(name(a.ID), (a.Rotation+1)%4),
					}
				}
				if !seen[n] {
					seen[n] = true
					doc.Neighbors = append(doc.Neighbors, n)
				}
			}
		}
	}
	return doc
}
