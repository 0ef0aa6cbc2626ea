package catalog

import "fmt"

// Sample is a rectangular training grid of tiles, as scanned from placed objects.
type Sample struct {
	Width, Height int
	cells         []Tile
	names         []string
}

// NewSample validates and deep-copies rows (rows[y][x]) into a Sample.
// names, when non-nil, names every tile id used by the sample.
// Returns ErrEmptySample, ErrNonRectangular, or ErrInvalidRuleSet for tile ids
// outside names or rotations outside 0..3.
// Complexity: O(W×H).
func NewSample(rows [][]Tile, names []string) (*Sample, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptySample
	}
	h, w := len(rows), len(rows[0])
	cells := make([]Tile, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for x, t := range row {
			if t.Rotation < 0 || t.Rotation > 3 {
				return nil, fmt.Errorf("%w: rotation %d at (%d,%d)", ErrInvalidRuleSet, t.Rotation, x, y)
			}
			if t.ID < 0 || (names != nil && t.ID >= len(names)) {
				return nil, fmt.Errorf("%w: undefined tile id %d at (%d,%d)", ErrInvalidRuleSet, t.ID, x, y)
			}
			cells = append(cells, t)
		}
	}

	return &Sample{
		Width:  w,
		Height: h,
		cells:  cells,
		names:  append([]string(nil), names...),
	}, nil
}

// At returns the tile at (x,y). Coordinates must lie inside the sample.
func (s *Sample) At(x, y int) Tile {
	return s.cells[y*s.Width+x]
}

// Names returns a copy of the tile names.
func (s *Sample) Names() []string {
	return append([]string(nil), s.names...)
}
