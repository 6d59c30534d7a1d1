package assemble

import (
	"github.com/katalvlaran/terrain50/dem"
)

// Status classifies one tile position, or the mosaic as a whole.
type Status uint8

const (
	// StatusOffgrid marks a lattice position outside the national grid.
	StatusOffgrid Status = iota
	// StatusSea marks a position whose source has no data: open water.
	StatusSea
	// StatusOK marks a tile that loaded and matched the expected shape.
	StatusOK
	// StatusError marks a tile that failed to load or disagreed on shape.
	StatusError
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case StatusOffgrid:
		return "offgrid"
	case StatusSea:
		return "sea"
	case StatusOK:
		return "ok"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Layout is the tilesNorth×tilesEast lattice of tile names to assemble.
// Row 0 is the southernmost tile row; "" marks an off-grid position.
type Layout [][]string

// validate reports ErrBadLayout for empty or ragged layouts.
func (l Layout) validate() error {
	if len(l) == 0 || len(l[0]) == 0 {
		return ErrBadLayout
	}
	cols := len(l[0])
	for _, row := range l {
		if len(row) != cols {
			return ErrBadLayout
		}
	}

	return nil
}

// TileReport records why a tile position failed, with enough detail to
// locate the bad tile: lattice position, tile name and the wrapped cause.
type TileReport struct {
	North int
	East  int
	Name  string
	Err   error
}

// Summary carries mosaic-wide statistics. MinAltitude and MaxAltitude are
// taken across OK tiles only and are meaningful only when Loaded is true.
type Summary struct {
	Loaded      bool
	MinAltitude float64
	MaxAltitude float64
	CellSize    int
	TileRows    int
	TileCols    int
}

// Mosaic is the assembled result: the combined south-up grid, the per-tile
// status lattice (same shape and orientation as the Layout), error reports
// and summary statistics. Grid is the zero dem.Grid when no tile loaded.
type Mosaic struct {
	Status  Status
	Grid    dem.Grid
	Tiles   [][]Status
	Reports []TileReport
	Summary Summary
}
