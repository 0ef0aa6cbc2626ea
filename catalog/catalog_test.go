package catalog_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc/catalog"
	"github.com/katalvlaran/wfc/grid"
)

// selfOnly allows every pattern next to itself only, in every direction.
func selfOnly(p int) [4][][]int {
	var allowed [4][][]int
	for _, d := range grid.Directions {
		allowed[d] = make([][]int, p)
		for t := 0; t < p; t++ {
			allowed[d][t] = []int{t}
		}
	}
	return allowed
}

// requireSymmetric asserts the direction-symmetry guarantee and that neighbor
// lists agree with the dense relation.
func requireSymmetric(t *testing.T, c *catalog.Catalog) {
	t.Helper()
	p := c.Len()
	for _, d := range grid.Directions {
		for a := 0; a < p; a++ {
			var fromDense []int
			for b := 0; b < p; b++ {
				require.Equal(t, c.Compatible(a, b, d), c.Compatible(b, a, d.Opposite()),
					"a=%d b=%d d=%v", a, b, d)
				if c.Compatible(a, b, d) {
					fromDense = append(fromDense, b)
				}
			}
			if fromDense == nil {
				require.Empty(t, c.Neighbors(a, d))
			} else {
				require.Equal(t, fromDense, c.Neighbors(a, d))
			}
		}
	}
}

//----------------------------------------------------------------------------//
// FromAdjacency
//----------------------------------------------------------------------------//

func TestFromAdjacency_SelfOnly(t *testing.T) {
	c, err := catalog.FromAdjacency([]float64{1, 3}, selfOnly(2), catalog.WithTileNames("A", "B"))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 1, c.PatternSize())
	assert.Equal(t, 3.0, c.Weight(1))
	assert.True(t, c.Compatible(0, 0, grid.Right))
	assert.False(t, c.Compatible(0, 1, grid.Right))
	assert.Equal(t, "B", c.TileName(c.Pattern(1).Cells[0].ID))
	_, ok := c.Ground()
	assert.False(t, ok)
	requireSymmetric(t, c)
}

func TestFromAdjacency_Errors(t *testing.T) {
	asym := selfOnly(2)
	asym[grid.Right][0] = []int{0, 1} // 1 right of 0, but 0 never left of 1

	outOfRange := selfOnly(2)
	outOfRange[grid.Up][1] = []int{7}

	short := selfOnly(2)
	short[grid.Down] = [][]int{{0}}

	cases := []struct {
		name    string
		weights []float64
		allowed [4][][]int
		opts    []catalog.Option
	}{
		{"Asymmetric", []float64{1, 1}, asym, nil},
		{"UndefinedPattern", []float64{1, 1}, outOfRange, nil},
		{"ShortDirection", []float64{1, 1}, short, nil},
		{"ZeroWeight", []float64{1, 0}, selfOnly(2), nil},
		{"Empty", nil, [4][][]int{}, nil},
		{"NameCount", []float64{1, 1}, selfOnly(2), []catalog.Option{catalog.WithTileNames("A")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := catalog.FromAdjacency(tc.weights, tc.allowed, tc.opts...)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, catalog.ErrInvalidRuleSet)
		})
	}
}

func TestFromAdjacency_Ground(t *testing.T) {
	c, err := catalog.FromAdjacency([]float64{1, 1, 1}, selfOnly(3), catalog.WithGround(-1))
	require.NoError(t, err)
	g, ok := c.Ground()
	assert.True(t, ok)
	assert.Equal(t, 2, g)

	c, err = catalog.FromAdjacency([]float64{1, 1, 1}, selfOnly(3), catalog.WithGround(0))
	require.NoError(t, err)
	g, ok = c.Ground()
	assert.True(t, ok)
	assert.Equal(t, 0, g)
}

func TestDigest(t *testing.T) {
	a, err := catalog.FromAdjacency([]float64{1, 2}, selfOnly(2))
	require.NoError(t, err)
	b, err := catalog.FromAdjacency([]float64{1, 2}, selfOnly(2))
	require.NoError(t, err)
	c, err := catalog.FromAdjacency([]float64{2, 1}, selfOnly(2))
	require.NoError(t, err)

	assert.Len(t, a.Digest(), 64)
	assert.Equal(t, a.Digest(), b.Digest())
	assert.NotEqual(t, a.Digest(), c.Digest())
}

//----------------------------------------------------------------------------//
// Sample / BuildFromSamples
//----------------------------------------------------------------------------//

func TestNewSample_Errors(t *testing.T) {
	_, err := catalog.NewSample(nil, nil)
	assert.ErrorIs(t, err, catalog.ErrEmptySample)
	_, err = catalog.NewSample([][]catalog.Tile{{}}, nil)
	assert.ErrorIs(t, err, catalog.ErrEmptySample)
	_, err = catalog.NewSample([][]catalog.Tile{{{}, {}}, {{}}}, nil)
	assert.ErrorIs(t, err, catalog.ErrNonRectangular)
	_, err = catalog.NewSample([][]catalog.Tile{{{ID: 2}}}, []string{"a"})
	assert.ErrorIs(t, err, catalog.ErrInvalidRuleSet)
	_, err = catalog.NewSample([][]catalog.Tile{{{Rotation: 4}}}, nil)
	assert.ErrorIs(t, err, catalog.ErrInvalidRuleSet)
}

// TestBuildFromSamples_Checker extracts the two diagonal footprints of a periodic
// checkerboard and checks their weights and the overlap relation.
func TestBuildFromSamples_Checker(t *testing.T) {
	a, b := catalog.Tile{ID: 0}, catalog.Tile{ID: 1}
	s, err := catalog.NewSample([][]catalog.Tile{{a, b}, {b, a}}, []string{"white", "black"})
	require.NoError(t, err)

	c, err := catalog.BuildFromSamples(s, catalog.WithPatternSize(2), catalog.WithPeriodicInput(true))
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	assert.Equal(t, 2, c.PatternSize())
	assert.Equal(t, []catalog.Tile{a, b, b, a}, c.Pattern(0).Cells)
	assert.Equal(t, []catalog.Tile{b, a, a, b}, c.Pattern(1).Cells)
	assert.Equal(t, 2.0, c.Weight(0))
	assert.Equal(t, 2.0, c.Weight(1))

	for _, d := range grid.Directions {
		assert.False(t, c.Compatible(0, 0, d), "%v", d)
		assert.True(t, c.Compatible(0, 1, d), "%v", d)
	}
	assert.Equal(t, []string{"white", "black"}, c.TileNames())
	requireSymmetric(t, c)
}

func TestBuildFromSamples_Errors(t *testing.T) {
	s, err := catalog.NewSample([][]catalog.Tile{{{ID: 0}, {ID: 1}}}, nil)
	require.NoError(t, err)

	_, err = catalog.BuildFromSamples(s, catalog.WithPatternSize(2))
	assert.ErrorIs(t, err, catalog.ErrBadPatternSize)
	_, err = catalog.BuildFromSamples(s, catalog.WithPatternSize(0))
	assert.ErrorIs(t, err, catalog.ErrBadPatternSize)
	_, err = catalog.BuildFromSamples(s, catalog.WithPatternSize(1), catalog.WithSymmetry(9))
	assert.ErrorIs(t, err, catalog.ErrBadSymmetry)
	_, err = catalog.BuildFromSamples(nil)
	assert.ErrorIs(t, err, catalog.ErrEmptySample)

	// Periodic input lifts the size limit.
	_, err = catalog.BuildFromSamples(s, catalog.WithPatternSize(2), catalog.WithPeriodicInput(true))
	assert.NoError(t, err)
}

// TestBuildFromSamples_SymmetryVariants checks that extra dihedral variants add
// patterns without losing weight, and that the relation stays symmetric.
func TestBuildFromSamples_SymmetryVariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	rows := make([][]catalog.Tile, 6)
	for y := range rows {
		rows[y] = make([]catalog.Tile, 6)
		for x := range rows[y] {
			rows[y][x] = catalog.Tile{ID: rng.Intn(3)}
		}
	}
	s, err := catalog.NewSample(rows, nil)
	require.NoError(t, err)

	one, err := catalog.BuildFromSamples(s, catalog.WithPatternSize(2))
	require.NoError(t, err)
	eight, err := catalog.BuildFromSamples(s, catalog.WithPatternSize(2), catalog.WithSymmetry(8))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, eight.Len(), one.Len())

	total := func(c *catalog.Catalog) float64 {
		sum := 0.0
		for p := 0; p < c.Len(); p++ {
			sum += c.Weight(p)
		}
		return sum
	}
	assert.Equal(t, 25.0, total(one))
	assert.Equal(t, 200.0, total(eight))
	requireSymmetric(t, one)
	requireSymmetric(t, eight)
}

func TestBuildFromSamples_N1(t *testing.T) {
	a, b := catalog.Tile{ID: 0}, catalog.Tile{ID: 1, Rotation: 2}
	s, err := catalog.NewSample([][]catalog.Tile{{a, a, b}}, nil)
	require.NoError(t, err)
	c, err := catalog.BuildFromSamples(s, catalog.WithPatternSize(1))
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	assert.Equal(t, 2.0, c.Weight(0))
	assert.Equal(t, b, c.Pattern(1).Cells[0])
	// With N=1 every footprint overlaps nothing, so everything is compatible.
	assert.True(t, c.Compatible(0, 1, grid.Left))
	assert.True(t, c.Compatible(1, 1, grid.Up))
}
