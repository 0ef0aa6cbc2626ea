package catalog

import (
	"fmt"

	"github.com/katalvlaran/wfc/bitset"
	"github.com/katalvlaran/wfc/grid"
)

// Tile is one sample-grid value: a tile id (index into the catalog's tile names)
// and a quarter-turn rotation in 0..3.
type Tile struct {
	ID       int
	Rotation int
}

func (t Tile) String() string {
	return fmt.Sprintf("%d.%d", t.ID, t.Rotation)
}

// Pattern is one candidate a cell may collapse to.
// Cells holds the N×N footprint in row-major order; callers must not modify it.
type Pattern struct {
	Weight float64
	Cells  []Tile
}

// Options configures the catalog constructors. Fields irrelevant to a given
// constructor are ignored.
type Options struct {
	// PatternSize is the overlapping window size N (BuildFromSamples). Default 2.
	PatternSize int
	// PeriodicInput wraps the sample at its edges when extracting windows.
	PeriodicInput bool
	// Symmetry is the number of dihedral variants per window, 1..8. Default 1.
	Symmetry int
	// Ground designates the foundation pattern; negative values count from the end.
	// Only meaningful when UseGround is set.
	Ground    int
	UseGround bool
	// Subset restricts BuildFromRules to the named subset of tiles.
	Subset string
	// TileNames names the tiles of a FromAdjacency catalog (one per pattern).
	TileNames []string
}

// Option is a functional option for catalog constructors.
type Option func(*Options)

// WithPatternSize sets the overlapping window size N.
func WithPatternSize(n int) Option {
	return func(o *Options) {
		o.PatternSize = n
	}
}

// WithPeriodicInput toggles wrap-around sampling of the input.
func WithPeriodicInput(periodic bool) Option {
	return func(o *Options) {
		o.PeriodicInput = periodic
	}
}

// WithSymmetry sets how many dihedral variants of each window are added (1..8).
func WithSymmetry(k int) Option {
	return func(o *Options) {
		o.Symmetry = k
	}
}

// WithGround designates the foundation pattern forced along the bottom row.
// Negative indices count from the end (-1 is the last pattern).
func WithGround(index int) Option {
	return func(o *Options) {
		o.Ground = index
		o.UseGround = true
	}
}

// WithSubset restricts a tiled catalog to one named subset of its tiles.
func WithSubset(name string) Option {
	return func(o *Options) {
		o.Subset = name
	}
}

// WithTileNames names the patterns of an explicit adjacency catalog.
func WithTileNames(names ...string) Option {
	return func(o *Options) {
		o.TileNames = names
	}
}

// DefaultOptions mirrors the overlapping defaults: N=2, no wrap, one variant, no ground.
func DefaultOptions() Options {
	return Options{
		PatternSize:   2,
		PeriodicInput: false,
		Symmetry:      1,
	}
}

// Catalog is an immutable set of weighted patterns with a directional
// compatibility relation. Build one with BuildFromSamples, BuildFromRules or
// FromAdjacency.
type Catalog struct {
	n         int
	names     []string
	patterns  []Pattern
	ground    int // -1 when no ground pattern is designated
	neighbors [4][][]int
	dense     [4][]uint64 // per direction: P rows of P bits
}

// Len returns the number of patterns P.
func (c *Catalog) Len() int { return len(c.patterns) }

// PatternSize returns the footprint size N (1 for tiled catalogs).
func (c *Catalog) PatternSize() int { return c.n }

// Pattern returns pattern t.
func (c *Catalog) Pattern(t int) Pattern { return c.patterns[t] }

// Weight returns the relative weight of pattern t.
func (c *Catalog) Weight(t int) float64 { return c.patterns[t].Weight }

// Neighbors returns the patterns allowed one step from t in direction d, ascending.
// The returned slice is shared; callers must not modify it.
func (c *Catalog) Neighbors(t int, d grid.Direction) []int { return c.neighbors[d][t] }

// Compatible reports whether b may sit one step from a in direction d.
func (c *Catalog) Compatible(a, b int, d grid.Direction) bool {
	return bitset.At(c.dense[d], a, len(c.patterns)).Has(b)
}

// Ground returns the foundation pattern, if one was designated.
func (c *Catalog) Ground() (int, bool) {
	return c.ground, c.ground >= 0
}

// TileName returns the name of tile id, or its decimal form when the catalog is unnamed.
func (c *Catalog) TileName(id int) string {
	if id >= 0 && id < len(c.names) {
		return c.names[id]
	}
	return fmt.Sprint(id)
}

// TileNames returns a copy of the tile names indexed by Tile.ID.
func (c *Catalog) TileNames() []string {
	return append([]string(nil), c.names...)
}
