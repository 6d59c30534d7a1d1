// Package asc loads OS Terrain 50 style elevation tiles: a 5-line integer
// header followed by nrows lines of ncols space-separated altitude samples,
// file-ordered north-to-south.
//
// What:
//
//   - ParseTile reads one tile from an io.Reader into a Header plus a
//     dem.Grid, flipping file order so that grid row 0 is the southernmost
//     row.
//   - Source abstracts "where tiles come from": DirSource reads <NAME>.asc
//     files from any fs.FS; ZipDirSource walks the unzipped OS Terrain 50
//     dataset layout (<base>/<gs>/<sq>_*.zip, each zip holding <SQ>.asc),
//     validating names with ValidateSquareName first. A valid tile a
//     Source knows nothing about is reported as ErrNotPresent, which
//     downstream code reads as "this square is in the sea".
//   - Loader is the load-by-name contract consumed by package assemble;
//     SourceLoader adapts a Source directly, Cache adds caller-owned
//     memoization on top.
//
// Why:
//
//   - The tile format defines the sentinel and orientation conventions the
//     flat-region detector depends on, so the loader owns them in one place.
//   - Missing data and malformed data are different outcomes: the first is
//     a legitimate sea square, the second an error the caller must see.
//
// Header format (order of lines does not matter, all five are required):
//
//	ncols <int>
//	nrows <int>
//	xllcorner <int>
//	yllcorner <int>
//	cellsize <int>
//
// Errors:
//
//   - ErrHeaderFormat: malformed, non-integer, missing, duplicate or
//     non-positive header fields.
//   - ErrDataShape: wrong number of data lines or values per line.
//   - ErrDataParse: a data token is not a floating-point number.
//   - ErrNotPresent: the Source has no data for the tile (sea square).
//   - ErrTileSource: the Source itself misbehaved (a name that is not a
//     national grid square, ambiguous zips, a zip without its .asc entry,
//     I/O failure).
package asc
