package dem

// MooreOffsets lists the 8 [dRow, dCol] offsets of a cell's Moore
// neighborhood, precomputed for adjacency traversals.
var MooreOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is a rectangular, immutable grid of elevation samples in metres.
// Row 0 is the southernmost row, column 0 the westernmost column.
// The zero value is a degenerate 0×0 grid and is safe to use.
type Grid struct {
	rows, cols int
	samples    [][]float64
}

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrRaggedGrid if any row length differs.
func NewGrid(values [][]float64) (Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return Grid{}, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	samples := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		if len(values[r]) != cols {
			return Grid{}, ErrRaggedGrid
		}
		samples[r] = make([]float64, cols)
		copy(samples[r], values[r])
	}

	return Grid{rows: rows, cols: cols, samples: samples}, nil
}

// Filled constructs a rows×cols Grid with every sample set to fill.
// Returns ErrEmptyGrid if rows or cols is not positive.
func Filled(rows, cols int, fill float64) (Grid, error) {
	if rows <= 0 || cols <= 0 {
		return Grid{}, ErrEmptyGrid
	}
	samples := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		samples[r] = make([]float64, cols)
		for c := 0; c < cols; c++ {
			samples[r][c] = fill
		}
	}

	return Grid{rows: rows, cols: cols, samples: samples}, nil
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g Grid) Cols() int { return g.cols }

// At returns the sample at (r, c). It panics if (r, c) is out of bounds.
func (g Grid) At(r, c int) float64 { return g.samples[r][c] }

// InBounds reports whether (r, c) lies within the grid.
func (g Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// Row returns a copy of row r. It panics if r is out of bounds.
func (g Grid) Row(r int) []float64 {
	row := make([]float64, g.cols)
	copy(row, g.samples[r])

	return row
}

// Values returns a deep copy of all samples, row-major, row 0 = south.
func (g Grid) Values() [][]float64 {
	values := make([][]float64, g.rows)
	for r := 0; r < g.rows; r++ {
		values[r] = g.Row(r)
	}

	return values
}

// Clone returns an independent copy of the grid.
func (g Grid) Clone() Grid {
	if g.rows == 0 || g.cols == 0 {
		return Grid{}
	}
	c, _ := NewGrid(g.samples)

	return c
}

// MinMax returns the minimum and maximum real samples in the grid, skipping
// NoAltitude cells. ok is false when the grid holds no real sample at all.
func (g Grid) MinMax() (min, max float64, ok bool) {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			v := g.samples[r][c]
			if v == NoAltitude {
				continue
			}
			if !ok {
				min, max, ok = v, v, true
				continue
			}
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}

	return min, max, ok
}
