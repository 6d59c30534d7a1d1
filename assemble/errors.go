package assemble

import "errors"

var (
	// ErrNilLoader indicates Assemble was called with a nil Loader.
	ErrNilLoader = errors.New("assemble: loader is nil")
	// ErrBadLayout indicates an empty or ragged tile layout.
	ErrBadLayout = errors.New("assemble: layout must be rectangular and non-empty")
	// ErrTileShape indicates a tile whose shape disagrees with the first
	// loaded tile; surfaced per tile via Mosaic.Reports.
	ErrTileShape = errors.New("assemble: tile shape differs from first loaded tile")
)
