package solver_test

import (
	"fmt"

	"github.com/katalvlaran/wfc/catalog"
	"github.com/katalvlaran/wfc/grid"
	"github.com/katalvlaran/wfc/solver"
)

// ExampleModel_Run fills a 6×3 grid from a two-tile checkerboard sample.
func ExampleModel_Run() {
	w, b := catalog.Tile{ID: 0}, catalog.Tile{ID: 1}
	sample, _ := catalog.NewSample([][]catalog.Tile{{w, b}, {b, w}}, []string{".", "#"})
	cat, _ := catalog.BuildFromSamples(sample, catalog.WithPatternSize(2), catalog.WithPeriodicInput(true))

	m, _ := solver.New(cat, 6, 3)
	// Force a white top-left corner so the output does not depend on the seed.
	corner := cat.Pattern(0).Cells[0]
	if corner.ID != 0 {
		corner = cat.Pattern(1).Cells[0]
	}
	for t := 0; t < cat.Len(); t++ {
		if cat.Pattern(t).Cells[0] != corner {
			_, _ = m.Ban(0, 0, t)
		}
	}

	fmt.Println(m.Run(1, solver.Unbounded()))
	for _, row := range m.Grid() {
		for _, s := range row {
			fmt.Print(cat.TileName(s.Tile.ID))
		}
		fmt.Println()
	}
	// Output:
	// success
	// .#.#.#
	// #.#.#.
	// .#.#.#
}

// ExampleModel_ClearSubsec regenerates part of a finished grid.
func ExampleModel_ClearSubsec() {
	allowed := [4][][]int{}
	for _, d := range grid.Directions {
		allowed[d] = [][]int{{0, 1}, {0, 1}}
	}
	cat, _ := catalog.FromAdjacency([]float64{1, 1}, allowed)

	m, _ := solver.New(cat, 4, 4)
	m.Run(1, solver.Unbounded())

	rep, _ := m.ClearSubsec(grid.R(1, 1, 3, 3))
	fmt.Println(rep.Cleared, len(rep.Disturbed), m.State())
	fmt.Println(m.Run(1, solver.Unbounded()))
	// Output:
	// 4 0 running
	// success
}
