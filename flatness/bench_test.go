package flatness_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/terrain50/dem"
	"github.com/katalvlaran/terrain50/flatness"
)

// benchGrid builds an n×n grid with a large flat lake in rolling terrain,
// from a fixed seed so every run sees the same input.
func benchGrid(b *testing.B, n int) dem.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	values := make([][]float64, n)
	for r := range values {
		values[r] = make([]float64, n)
		for c := range values[r] {
			if r > n/4 && r < 3*n/4 && c > n/4 && c < 3*n/4 {
				values[r][c] = 35.0 // the lake
			} else {
				values[r][c] = 100 * rng.Float64()
			}
		}
	}
	g, err := dem.NewGrid(values)
	if err != nil {
		b.Fatalf("setup grid failed: %v", err)
	}

	return g
}

// BenchmarkDetect measures a full serial detection run on a 500×500 grid.
func BenchmarkDetect(b *testing.B) {
	g := benchGrid(b, 500)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := flatness.Detect(g); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDetect_Parallel measures the same run with 4 Phase 1 workers.
func BenchmarkDetect_Parallel(b *testing.B) {
	g := benchGrid(b, 500)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := flatness.Detect(g, flatness.WithWorkers(4)); err != nil {
			b.Fatal(err)
		}
	}
}
