package asc

import "fmt"

// Names of the five required header fields.
const (
	fieldNCols     = "ncols"
	fieldNRows     = "nrows"
	fieldXLLCorner = "xllcorner"
	fieldYLLCorner = "yllcorner"
	fieldCellSize  = "cellsize"
)

// headerFields lists the required fields in canonical file order.
var headerFields = []string{fieldNCols, fieldNRows, fieldXLLCorner, fieldYLLCorner, fieldCellSize}

// Header is the parsed 5-line tile header plus the tile's name.
//
//   - NCols, NRows: samples per data line and number of data lines.
//   - XLLCorner, YLLCorner: easting/northing, in metres, of the tile's
//     lower-left (south-west) corner.
//   - CellSize: metres between adjacent samples.
type Header struct {
	Name      string
	NCols     int
	NRows     int
	XLLCorner int
	YLLCorner int
	CellSize  int
}

// Validate checks the header invariant: NCols, NRows and CellSize must all
// be positive. Violations are reported as ErrHeaderFormat.
func (h Header) Validate() error {
	if h.NCols <= 0 || h.NRows <= 0 || h.CellSize <= 0 {
		return fmt.Errorf("%w: tile %s: ncols=%d nrows=%d cellsize=%d must all be positive",
			ErrHeaderFormat, h.Name, h.NCols, h.NRows, h.CellSize)
	}

	return nil
}
