package grid

// New constructs a Grid of width×height cells.
// Returns ErrEmptyGrid for non-positive dimensions and ErrOverlapTooLarge when a
// bounded grid cannot hold a single N×N footprint.
// Complexity: O(1).
func New(width, height int, opts ...Option) (Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if width <= 0 || height <= 0 {
		return Grid{}, ErrEmptyGrid
	}
	if !o.Periodic && (o.Overlap > width || o.Overlap > height) {
		return Grid{}, ErrOverlapTooLarge
	}

	return Grid{
		Width:    width,
		Height:   height,
		Periodic: o.Periodic,
		Overlap:  o.Overlap,
	}, nil
}

// Len returns the number of cells.
func (g Grid) Len() int { return g.Width * g.Height }

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps (x,y) to a row-major index: y*Width + x.
func (g Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (g Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// Neighbor returns the index of the cell one step from idx in direction d.
// Periodic grids always have a neighbor; bounded grids report false at the edge.
func (g Grid) Neighbor(idx int, d Direction) (int, bool) {
	x, y := g.Coordinate(idx)
	x, y = x+d.DX(), y+d.DY()
	if g.Periodic {
		x = (x + g.Width) % g.Width
		y = (y + g.Height) % g.Height
	} else if !g.InBounds(x, y) {
		return 0, false
	}

	return g.Index(x, y), true
}

// OnBoundary reports whether the N×N footprint anchored at (x,y) leaves a bounded grid.
// Periodic grids have no boundary.
func (g Grid) OnBoundary(x, y int) bool {
	return !g.Periodic && (x+g.Overlap > g.Width || y+g.Overlap > g.Height)
}

// Anchor resolves an output position to the interior cell whose footprint covers it,
// and the offset of (x,y) inside that footprint. Interior cells anchor to themselves
// at offset (0,0).
func (g Grid) Anchor(x, y int) (cell, ox, oy int) {
	if g.OnBoundary(x, y) {
		if lim := g.Width - g.Overlap; x > lim {
			ox = x - lim
		}
		if lim := g.Height - g.Overlap; y > lim {
			oy = y - lim
		}
	}

	return g.Index(x-ox, y-oy), ox, oy
}

// Link reports whether constraints flow into cell idx from its neighbor opposite to d,
// i.e. whether idx's support counter for direction d is live, and returns that source cell.
func (g Grid) Link(idx int, d Direction) (src int, ok bool) {
	x, y := g.Coordinate(idx)
	if g.OnBoundary(x, y) {
		return 0, false
	}
	return g.Neighbor(idx, d.Opposite())
}

// Validate checks that r is non-empty and lies within the grid.
func (g Grid) Validate(r Rect) error {
	if r.Empty() || r.MinX < 0 || r.MinY < 0 || r.MaxX > g.Width || r.MaxY > g.Height {
		return ErrOutOfRange
	}
	return nil
}

// Each calls fn for every cell index inside r in row-major order.
// r must already be validated.
func (g Grid) Each(r Rect, fn func(idx int)) {
	for y := r.MinY; y < r.MaxY; y++ {
		for x := r.MinX; x < r.MaxX; x++ {
			fn(g.Index(x, y))
		}
	}
}
