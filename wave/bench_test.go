package wave_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/wfc/grid"
)

// BenchmarkPropagate measures Reset plus a fixed sequence of bans on a 64×64 grid
// over a random 16-pattern relation.
func BenchmarkPropagate(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	weights := make([]float64, 16)
	for i := range weights {
		weights[i] = 1 + float64(i%4)
	}
	c := relation(b, weights, random(rng, 16, 0.5))
	wv := newWave(b, c, 64, 64, grid.WithPeriodic(true))
	cells := make([]int, 256)
	pats := make([]int, 256)
	for i := range cells {
		cells[i], pats[i] = rng.Intn(wv.Len()), rng.Intn(16)
	}

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		wv.Reset()
		for i := range cells {
			wv.Ban(cells[i], pats[i])
			if wv.PropagateAll() {
				break
			}
		}
	}
}

// BenchmarkClearRegion measures clearing an 8×8 window on a settled 64×64 wave.
func BenchmarkClearRegion(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	c := relation(b, []float64{1, 2, 3, 4}, random(rng, 4, 0.7))
	wv := newWave(b, c, 64, 64)
	wv.PropagateAll()
	r := grid.R(28, 28, 36, 36)

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := wv.ClearRegion(r); err != nil {
			b.Fatal(err)
		}
	}
}
