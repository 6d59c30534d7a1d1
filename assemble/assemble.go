package assemble

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/terrain50/asc"
	"github.com/katalvlaran/terrain50/dem"
)

// Assemble loads every tile named in layout through ld and stitches the OK
// tiles into one combined south-up grid, prefilled with dem.NoAltitude.
//
// The returned error covers invalid arguments only (ErrNilLoader,
// ErrBadLayout); tile-level failures never abort the assembly and are
// reported through Mosaic.Status, Mosaic.Tiles and Mosaic.Reports instead.
//
// Complexity: O(T·R·C) for T tiles of R×C samples.
func Assemble(ld asc.Loader, layout Layout) (*Mosaic, error) {
	if ld == nil {
		return nil, ErrNilLoader
	}
	if err := layout.validate(); err != nil {
		return nil, err
	}

	tilesNorth, tilesEast := len(layout), len(layout[0])
	m := &Mosaic{Tiles: make([][]Status, tilesNorth)}
	for n := range m.Tiles {
		m.Tiles[n] = make([]Status, tilesEast)
	}

	var (
		combined         [][]float64
		expected         asc.Header // shape fixed by the first OK tile
		okCount, errCount int
	)
	for n := 0; n < tilesNorth; n++ {
		for e := 0; e < tilesEast; e++ {
			name := layout[n][e]
			if name == "" {
				m.Tiles[n][e] = StatusOffgrid
				continue
			}

			header, grid, err := ld.Load(name)
			switch {
			case errors.Is(err, asc.ErrNotPresent):
				m.Tiles[n][e] = StatusSea
				continue
			case err != nil:
				m.Tiles[n][e] = StatusError
				m.Reports = append(m.Reports, TileReport{North: n, East: e, Name: name, Err: err})
				errCount++
				continue
			}

			if !m.Summary.Loaded {
				expected = header
				m.Summary = Summary{
					Loaded:   true,
					CellSize: header.CellSize,
					TileRows: header.NRows,
					TileCols: header.NCols,
				}
				combined = filled(tilesNorth*header.NRows, tilesEast*header.NCols, dem.NoAltitude)
			} else if header.CellSize != expected.CellSize ||
				header.NRows != expected.NRows || header.NCols != expected.NCols {
				m.Tiles[n][e] = StatusError
				m.Reports = append(m.Reports, TileReport{
					North: n, East: e, Name: name,
					Err: fmt.Errorf("%w: tile %s: got (cellsize=%d nrows=%d ncols=%d), expected (cellsize=%d nrows=%d ncols=%d)",
						ErrTileShape, header.Name,
						header.CellSize, header.NRows, header.NCols,
						expected.CellSize, expected.NRows, expected.NCols),
				})
				errCount++
				continue
			}

			m.Tiles[n][e] = StatusOK
			placeTile(combined, grid, n*expected.NRows, e*expected.NCols)
			mergeMinMax(&m.Summary, grid, okCount == 0)
			okCount++
		}
	}

	switch {
	case errCount > 0:
		m.Status = StatusError
	case okCount > 0:
		m.Status = StatusOK
	default:
		m.Status = StatusSea
	}
	if m.Summary.Loaded {
		grid, err := dem.NewGrid(combined)
		if err != nil {
			return nil, err
		}
		m.Grid = grid
	}

	return m, nil
}

// filled allocates a rows×cols slice with every value set to fill.
func filled(rows, cols int, fill float64) [][]float64 {
	out := make([][]float64, rows)
	for r := range out {
		out[r] = make([]float64, cols)
		for c := range out[r] {
			out[r][c] = fill
		}
	}

	return out
}

// placeTile copies grid into combined with its south-west corner at
// (rowOff, colOff).
func placeTile(combined [][]float64, grid dem.Grid, rowOff, colOff int) {
	for r := 0; r < grid.Rows(); r++ {
		copy(combined[rowOff+r][colOff:colOff+grid.Cols()], grid.Row(r))
	}
}

// mergeMinMax folds one OK tile's min/max into the running summary.
func mergeMinMax(s *Summary, grid dem.Grid, first bool) {
	for r := 0; r < grid.Rows(); r++ {
		row := grid.Row(r)
		rowMin, rowMax := floats.Min(row), floats.Max(row)
		if first && r == 0 {
			s.MinAltitude, s.MaxAltitude = rowMin, rowMax
			continue
		}
		if rowMin < s.MinAltitude {
			s.MinAltitude = rowMin
		}
		if rowMax > s.MaxAltitude {
			s.MaxAltitude = rowMax
		}
	}
}
