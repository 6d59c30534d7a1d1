package flatness

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/terrain50/dem"
)

// Detect classifies every cell of g into a flat-region status.
//
// Detect is a pure function of its input: g is read-only, the returned
// Result is freshly allocated, and two runs over the same grid yield
// identical results. A grid with zero rows or columns yields an empty
// Result. The only error is ErrOptionViolation for invalid options.
func Detect(g dem.Grid, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	rows, cols := g.Rows(), g.Cols()
	res := &Result{Status: make([][]CellStatus, rows)}
	for r := range res.Status {
		res.Status[r] = make([]CellStatus, cols)
	}
	if rows == 0 || cols == 0 {
		return res, nil
	}

	seeds := seedPhase(g, res.Status, o)
	res.Seeds = len(seeds)
	res.Flat = len(seeds)

	grow(g, res, seeds, o)

	return res, nil
}

// seedPhase runs Phase 1 over the whole grid and returns the seed cells in
// row-major order, regardless of worker count.
func seedPhase(g dem.Grid, status [][]CellStatus, o Options) []cell {
	bands := phase1Bands(g.Rows(), o.Workers)
	if len(bands) == 1 {
		return seedRows(g, 0, g.Rows(), status, o.Tolerance)
	}

	found := make([][]cell, len(bands))
	var eg errgroup.Group
	for i, b := range bands {
		i, b := i, b
		eg.Go(func() error {
			found[i] = seedRows(g, b.lo, b.hi, status, o.Tolerance)
			return nil
		})
	}
	// Workers never fail; Wait only synchronizes them.
	_ = eg.Wait()

	var seeds []cell
	for _, part := range found {
		seeds = append(seeds, part...)
	}

	return seeds
}

// band is a half-open row interval [lo, hi) owned by one Phase 1 worker.
type band struct {
	lo, hi int
}

// phase1Bands splits rows into at most workers near-equal bands.
func phase1Bands(rows, workers int) []band {
	if workers > rows {
		workers = rows
	}
	if workers <= 1 {
		return []band{{0, rows}}
	}
	bands := make([]band, 0, workers)
	size := (rows + workers - 1) / workers
	for lo := 0; lo < rows; lo += size {
		hi := lo + size
		if hi > rows {
			hi = rows
		}
		bands = append(bands, band{lo, hi})
	}

	return bands
}

// seedRows classifies rows [lo, hi): sentinel cells and cells matching at
// least 6 of their 8 neighbors become Seed. Writes are confined to
// status[lo:hi]; reads touch only the immutable grid.
func seedRows(g dem.Grid, lo, hi int, status [][]CellStatus, tol float64) []cell {
	var seeds []cell
	for r := lo; r < hi; r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.At(r, c) == dem.NoAltitude || isSeed(g, r, c, tol) {
				status[r][c] = Seed
				seeds = append(seeds, cell{r, c})
			}
		}
	}

	return seeds
}

// isSeed reports whether the non-sentinel cell (r, c) qualifies as a seed:
// out-of-bounds neighbors count as different, and more than two different or
// absent neighbors disqualify the cell immediately. Corner cells (5 absent)
// and edge cells (3 absent) therefore never qualify.
func isSeed(g dem.Grid, r, c int, tol float64) bool {
	alt := g.At(r, c)
	same, notSame := 0, 0
	for _, d := range dem.MooreOffsets {
		if notSame > 2 {
			return false
		}
		nr, nc := r+d[0], c+d[1]
		if !g.InBounds(nr, nc) {
			notSame++
			continue
		}
		if dem.SameAltitudeWithin(alt, g.At(nr, nc), tol) {
			same++
		} else {
			notSame++
		}
	}

	return same >= 6
}
