package asc_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/terrain50/asc"
)

// ExampleParseTile parses a tiny 3×2 tile and shows the south-up
// orientation: the last line of the file becomes grid row 0.
func ExampleParseTile() {
	data := `ncols 3
nrows 2
xllcorner 320000
yllcorner 520000
cellsize 50
1.5 2.5 3.5
4.5 5.5 6.5
`
	h, g, err := asc.ParseTile("ny12", strings.NewReader(data))
	if err != nil {
		fmt.Println("parse failed:", err)
		return
	}

	fmt.Println(h.Name, h.NCols, h.NRows, h.CellSize)
	fmt.Println("south-west corner sample:", g.At(0, 0))
	fmt.Println("north-west corner sample:", g.At(1, 0))
	// Output:
	// NY12 3 2 50
	// south-west corner sample: 4.5
	// north-west corner sample: 1.5
}
