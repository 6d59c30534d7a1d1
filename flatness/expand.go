package flatness

import (
	"github.com/katalvlaran/terrain50/dem"
)

// grow runs Phase 2: repeated frontier expansion from the Phase 1 seeds.
//
// Each pass visits the current frontier; every unassigned Moore neighbor
// within tolerance of a frontier cell becomes Extended and joins the next
// frontier. When a pass adds nothing and the rescan fallback is enabled, one
// full-grid sweep rebuilds the frontier from every assigned non-sentinel
// cell; if that pass also adds nothing, growth terminates.
func grow(g dem.Grid, res *Result, frontier []cell, o Options) {
	rescanned := false
	for {
		if len(frontier) == 0 {
			if !o.Rescan || rescanned {
				return
			}
			rescanned = true
			frontier = assignedCells(g, res.Status)
			if len(frontier) == 0 {
				return
			}
		}

		res.Passes++
		var next []cell
		for _, f := range frontier {
			if res.Status[f.r][f.c] == NotFlat || g.At(f.r, f.c) == dem.NoAltitude {
				continue
			}
			next = extendNeighbors(g, res.Status, f, o.Tolerance, next)
		}
		if len(next) > 0 {
			rescanned = false
			res.Flat += len(next)
		}
		frontier = next
	}
}

// extendNeighbors marks every unassigned in-tolerance Moore neighbor of f
// as Extended, appending the new cells to next.
func extendNeighbors(g dem.Grid, status [][]CellStatus, f cell, tol float64, next []cell) []cell {
	alt := g.At(f.r, f.c)
	for _, d := range dem.MooreOffsets {
		nr, nc := f.r+d[0], f.c+d[1]
		if !g.InBounds(nr, nc) || status[nr][nc] != NotFlat {
			continue
		}
		if dem.SameAltitudeWithin(alt, g.At(nr, nc), tol) {
			status[nr][nc] = Extended
			next = append(next, cell{nr, nc})
		}
	}

	return next
}

// assignedCells lists every assigned, non-sentinel cell in row-major order;
// the fallback rescan grows from these.
func assignedCells(g dem.Grid, status [][]CellStatus) []cell {
	var cells []cell
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if status[r][c] != NotFlat && g.At(r, c) != dem.NoAltitude {
				cells = append(cells, cell{r, c})
			}
		}
	}

	return cells
}
