package asc

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/terrain50/dem"
)

// maxLineBytes bounds a single data line; 64 KiB covers thousands of samples
// per line, far beyond the 200 of the source dataset.
const maxLineBytes = 64 * 1024

// ParseTile reads one tile from r and returns its header and sample grid.
// name identifies the tile in error messages and Header.Name (upper-cased).
//
// The file presents rows north-to-south; the returned grid is row-flipped so
// that row 0 is the southernmost row, matching dem.Grid orientation.
//
// Returns ErrHeaderFormat, ErrDataShape or ErrDataParse on malformed input.
// Complexity: O(NRows×NCols) time and memory.
func ParseTile(name string, r io.Reader) (Header, dem.Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	header, err := parseHeader(name, sc)
	if err != nil {
		return Header{}, dem.Grid{}, err
	}

	grid, err := parseData(header, sc)
	if err != nil {
		return Header{}, dem.Grid{}, err
	}
	if err = sc.Err(); err != nil {
		return Header{}, dem.Grid{}, fmt.Errorf("%w: tile %s: %v", ErrTileSource, header.Name, err)
	}

	return header, grid, nil
}

// parseHeader consumes exactly five `<field> <int>` lines. Each of the five
// required fields must appear exactly once, in any order.
func parseHeader(name string, sc *bufio.Scanner) (Header, error) {
	upper := strings.ToUpper(name)
	seen := make(map[string]int, len(headerFields))
	for lineNo := 1; lineNo <= len(headerFields); lineNo++ {
		if !sc.Scan() {
			return Header{}, fmt.Errorf("%w: tile %s: only %d of %d header lines present",
				ErrHeaderFormat, upper, lineNo-1, len(headerFields))
		}
		tokens := strings.Fields(sc.Text())
		if len(tokens) != 2 {
			return Header{}, fmt.Errorf("%w: tile %s: header line %d: want `<field> <int>`, got %d tokens",
				ErrHeaderFormat, upper, lineNo, len(tokens))
		}
		field, raw := tokens[0], tokens[1]
		value, err := strconv.Atoi(raw)
		if err != nil {
			return Header{}, fmt.Errorf("%w: tile %s: header field %s: %q is not an integer",
				ErrHeaderFormat, upper, field, raw)
		}
		if _, dup := seen[field]; dup {
			return Header{}, fmt.Errorf("%w: tile %s: duplicate header field %s",
				ErrHeaderFormat, upper, field)
		}
		seen[field] = value
	}
	for _, field := range headerFields {
		if _, ok := seen[field]; !ok {
			return Header{}, fmt.Errorf("%w: tile %s: missing header field %s",
				ErrHeaderFormat, upper, field)
		}
	}

	header := Header{
		Name:      upper,
		NCols:     seen[fieldNCols],
		NRows:     seen[fieldNRows],
		XLLCorner: seen[fieldXLLCorner],
		YLLCorner: seen[fieldYLLCorner],
		CellSize:  seen[fieldCellSize],
	}
	if err := header.Validate(); err != nil {
		return Header{}, err
	}

	return header, nil
}

// parseData consumes exactly header.NRows lines of header.NCols floats.
// Line i of the file (0 = northernmost) lands in grid row NRows-1-i.
func parseData(header Header, sc *bufio.Scanner) (dem.Grid, error) {
	samples := make([][]float64, header.NRows)
	for lineNo := 0; lineNo < header.NRows; lineNo++ {
		if !sc.Scan() {
			return dem.Grid{}, fmt.Errorf("%w: tile %s: %d data lines instead of %d",
				ErrDataShape, header.Name, lineNo, header.NRows)
		}
		tokens := strings.Fields(sc.Text())
		if len(tokens) != header.NCols {
			return dem.Grid{}, fmt.Errorf("%w: tile %s: data line %d: %d values instead of %d",
				ErrDataShape, header.Name, lineNo+1, len(tokens), header.NCols)
		}
		row := make([]float64, header.NCols)
		for col, token := range tokens {
			v, err := strconv.ParseFloat(token, 64)
			if err != nil {
				return dem.Grid{}, fmt.Errorf("%w: tile %s: data line %d, value %d: %q",
					ErrDataParse, header.Name, lineNo+1, col+1, token)
			}
			row[col] = v
		}
		samples[header.NRows-1-lineNo] = row
	}
	if sc.Scan() {
		return dem.Grid{}, fmt.Errorf("%w: tile %s: more than %d data lines",
			ErrDataShape, header.Name, header.NRows)
	}

	grid, err := dem.NewGrid(samples)
	if err != nil {
		return dem.Grid{}, fmt.Errorf("%w: tile %s: %v", ErrDataShape, header.Name, err)
	}

	return grid, nil
}
