package asc

import "errors"

// Sentinel errors for tile loading. Parse failures carry tile and line
// context via fmt.Errorf("%w: ..."); match them with errors.Is.
var (
	// ErrHeaderFormat indicates a malformed 5-line tile header.
	ErrHeaderFormat = errors.New("asc: malformed tile header")
	// ErrDataShape indicates a wrong data line count or values-per-line count.
	ErrDataShape = errors.New("asc: unexpected tile data shape")
	// ErrDataParse indicates a data token that is not a float.
	ErrDataParse = errors.New("asc: non-numeric tile data value")
	// ErrNotPresent indicates the Source holds no data for the tile;
	// callers treat the square as sea.
	ErrNotPresent = errors.New("asc: no data for tile")
	// ErrTileSource indicates the Source itself failed (ambiguous archives,
	// missing zip entries, I/O errors).
	ErrTileSource = errors.New("asc: tile source failure")
)
