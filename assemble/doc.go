// Package assemble stitches a rectangular lattice of elevation tiles into
// one combined dem.Grid, with a per-tile status map and summary statistics.
//
// What:
//
//   - Layout names the tile at every lattice position (row 0 = southernmost
//     tile row, "" = off the national grid).
//   - Assemble loads every named tile through an asc.Loader and classifies
//     each position: Offgrid, Sea (the source has no data), Error (the tile
//     failed to load or disagrees on shape) or OK.
//   - The first OK tile fixes the expected (cellsize, nrows, ncols); any
//     later OK tile with a different shape is downgraded to Error. Mixed
//     tile resolutions are rejected, never resampled.
//   - OK tiles are block-copied into a combined grid prefilled with
//     dem.NoAltitude; min/max altitude is tracked across OK tiles only.
//
// Why:
//
//   - Per-tile fault isolation: one malformed tile must not prevent
//     processing the rest of the area, but the caller must still be able to
//     locate it (Mosaic.Reports).
//   - "No land here" and "bad data" are different answers: a lattice with
//     zero loadable and zero failing tiles is legitimately Sea, not an
//     error.
//
// Status aggregation:
//
//   - any Error tile      → Mosaic.Status == StatusError
//   - else any OK tile    → StatusOK
//   - else                → StatusSea
//
// Even with StatusError the combined grid and summary are populated from
// whatever tiles did load, so callers can inspect the partial mosaic.
//
// Complexity: O(T·R·C) time and memory for T tiles of R×C samples.
//
// Errors:
//
//   - ErrNilLoader: Assemble was handed a nil Loader.
//   - ErrBadLayout: the layout is empty or ragged.
//   - ErrTileShape: recorded in a TileReport when a tile disagrees with the
//     expected shape (never returned from Assemble itself).
package assemble
