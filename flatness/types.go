package flatness

// CellStatus classifies one grid cell after detection.
type CellStatus uint8

const (
	// NotFlat marks a cell outside every flat region.
	NotFlat CellStatus = iota
	// Seed marks a cell classified flat in Phase 1, dem.NoAltitude cells
	// included.
	Seed
	// Extended marks a cell reached by Phase 2 region growing.
	Extended
)

// String returns a short status name.
func (s CellStatus) String() string {
	switch s {
	case NotFlat:
		return "notflat"
	case Seed:
		return "seed"
	case Extended:
		return "extended"
	default:
		return "unknown"
	}
}

// Result is the outcome of one detection run.
//
//   - Status has the input grid's shape, indexed [row][col] with row 0 =
//     south, and is owned by the caller once Detect returns.
//   - Seeds counts Phase 1 seed cells; Flat counts every cell with non-zero
//     status (seeds plus all extensions).
//   - Passes counts Phase 2 frontier passes, fallback rescans included;
//     useful as a growth diagnostic.
type Result struct {
	Status [][]CellStatus
	Seeds  int
	Flat   int
	Passes int
}

// cell addresses one grid position in frontier lists.
type cell struct {
	r, c int
}
