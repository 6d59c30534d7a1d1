package flatness_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terrain50/dem"
	"github.com/katalvlaran/terrain50/flatness"
)

// mustGrid builds a dem.Grid or fails the test.
func mustGrid(t *testing.T, values [][]float64) dem.Grid {
	t.Helper()
	g, err := dem.NewGrid(values)
	require.NoError(t, err)

	return g
}

// uniformGrid builds an n×n grid filled with v.
func uniformGrid(t *testing.T, n int, v float64) dem.Grid {
	t.Helper()
	g, err := dem.Filled(n, n, v)
	require.NoError(t, err)

	return g
}

// TestDetect_OptionErrors verifies invalid options surface as
// ErrOptionViolation before any work happens.
func TestDetect_OptionErrors(t *testing.T) {
	g := uniformGrid(t, 3, 10.0)

	_, err := flatness.Detect(g, flatness.WithWorkers(-1))
	assert.ErrorIs(t, err, flatness.ErrOptionViolation)

	_, err = flatness.Detect(g, flatness.WithTolerance(0))
	assert.ErrorIs(t, err, flatness.ErrOptionViolation)

	_, err = flatness.Detect(g, flatness.WithTolerance(-0.5))
	assert.ErrorIs(t, err, flatness.ErrOptionViolation)
}

// TestDetect_DegenerateGrid yields an empty result, not an error.
func TestDetect_DegenerateGrid(t *testing.T) {
	var g dem.Grid

	res, err := flatness.Detect(g)
	require.NoError(t, err)
	assert.Empty(t, res.Status)
	assert.Zero(t, res.Seeds)
	assert.Zero(t, res.Flat)
	assert.Zero(t, res.Passes)
}

// TestDetect_SentinelInvariant: every NoAltitude cell is a Seed, whatever
// its neighbors hold — and, being data-free, it never grows the region.
func TestDetect_SentinelInvariant(t *testing.T) {
	g := mustGrid(t, [][]float64{
		{dem.NoAltitude, 50.0},
		{12.0, dem.NoAltitude},
	})

	res, err := flatness.Detect(g)
	require.NoError(t, err)

	assert.Equal(t, flatness.Seed, res.Status[0][0])
	assert.Equal(t, flatness.Seed, res.Status[1][1])
	assert.Equal(t, flatness.NotFlat, res.Status[0][1])
	assert.Equal(t, flatness.NotFlat, res.Status[1][0])
	assert.Equal(t, 2, res.Seeds)
	assert.Equal(t, 2, res.Flat)
}

// TestDetect_CornerEdgeExclusion: on a uniform 2×2 grid every cell misses
// more than two neighbors, so Phase 1 assigns nothing at all.
func TestDetect_CornerEdgeExclusion(t *testing.T) {
	res, err := flatness.Detect(uniformGrid(t, 2, 10.0))
	require.NoError(t, err)

	assert.Zero(t, res.Seeds)
	assert.Zero(t, res.Flat)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			assert.Equal(t, flatness.NotFlat, res.Status[r][c])
		}
	}
}

// TestDetect_Uniform3x3: only the center cell has all 8 neighbors in
// bounds; it seeds and the border follows by growth.
func TestDetect_Uniform3x3(t *testing.T) {
	res, err := flatness.Detect(uniformGrid(t, 3, 10.0))
	require.NoError(t, err)

	assert.Equal(t, 1, res.Seeds)
	assert.Equal(t, 9, res.Flat)
	assert.Equal(t, flatness.Seed, res.Status[1][1])
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if r == 1 && c == 1 {
				continue
			}
			assert.Equal(t, flatness.Extended, res.Status[r][c], "cell (%d,%d)", r, c)
		}
	}
}

// TestDetect_Uniform5x5: the 3×3 interior seeds, growth covers all 25 cells.
func TestDetect_Uniform5x5(t *testing.T) {
	res, err := flatness.Detect(uniformGrid(t, 5, 10.0))
	require.NoError(t, err)

	assert.Equal(t, 9, res.Seeds)
	assert.Equal(t, 25, res.Flat)
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			interior := r >= 1 && r <= 3 && c >= 1 && c <= 3
			want := flatness.Extended
			if interior {
				want = flatness.Seed
			}
			assert.Equal(t, want, res.Status[r][c], "cell (%d,%d)", r, c)
		}
	}
}

// TestDetect_ThresholdBoundary: an interior cell with exactly 6 matching
// neighbors seeds; with exactly 5 it does not.
func TestDetect_ThresholdBoundary(t *testing.T) {
	t.Run("SixOfEight", func(t *testing.T) {
		g := mustGrid(t, [][]float64{
			{50.0, 50.0, 10.0},
			{10.0, 10.0, 10.0},
			{10.0, 10.0, 10.0},
		})
		res, err := flatness.Detect(g)
		require.NoError(t, err)

		assert.Equal(t, flatness.Seed, res.Status[1][1])
		assert.Equal(t, 1, res.Seeds)
		assert.Equal(t, 7, res.Flat, "seed plus six matching neighbors")
		assert.Equal(t, flatness.NotFlat, res.Status[0][0])
		assert.Equal(t, flatness.NotFlat, res.Status[0][1])
	})

	t.Run("FiveOfEight", func(t *testing.T) {
		g := mustGrid(t, [][]float64{
			{50.0, 50.0, 50.0},
			{10.0, 10.0, 10.0},
			{10.0, 10.0, 10.0},
		})
		res, err := flatness.Detect(g)
		require.NoError(t, err)

		assert.Zero(t, res.Seeds)
		assert.Zero(t, res.Flat)
	})
}

// TestDetect_Idempotence: two runs over the same grid are bit-identical.
func TestDetect_Idempotence(t *testing.T) {
	g := mixedGrid(t, 12, 9)

	first, err := flatness.Detect(g)
	require.NoError(t, err)
	second, err := flatness.Detect(g)
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(first, second))
}

// TestDetect_ParallelMatchesSerial: WithWorkers must not change the result.
func TestDetect_ParallelMatchesSerial(t *testing.T) {
	g := mixedGrid(t, 12, 9)

	serial, err := flatness.Detect(g)
	require.NoError(t, err)

	for _, workers := range []int{2, 4, 8, 32} {
		parallel, err := flatness.Detect(g, flatness.WithWorkers(workers))
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(serial, parallel), "workers=%d", workers)
	}
}

// mixedGrid builds a deterministic rows×cols grid mixing a flat 10.0 patch,
// a sentinel block and varied relief.
func mixedGrid(t *testing.T, rows, cols int) dem.Grid {
	t.Helper()
	values := make([][]float64, rows)
	for r := range values {
		values[r] = make([]float64, cols)
		for c := range values[r] {
			switch {
			case r < 5 && c < 5:
				values[r][c] = 10.0 // flat patch
			case r >= rows-2 && c >= cols-2:
				values[r][c] = dem.NoAltitude
			default:
				values[r][c] = float64((r*31+c*17)%7) * 3.2
			}
		}
	}

	return mustGrid(t, values)
}
