package assemble_test

import (
	"fmt"
	"testing/fstest"

	"github.com/katalvlaran/terrain50/asc"
	"github.com/katalvlaran/terrain50/assemble"
)

// ExampleAssemble stitches a 1×2 lattice where the eastern square has no
// data file: a legitimate sea square, not an error.
func ExampleAssemble() {
	fsys := fstest.MapFS{
		"NY12.asc": &fstest.MapFile{Data: []byte(
			"ncols 2\nnrows 2\nxllcorner 0\nyllcorner 0\ncellsize 50\n" +
				"1.0 2.0\n" +
				"3.0 4.0\n",
		)},
	}
	ld := asc.SourceLoader{Src: asc.NewDirSource(fsys)}

	m, err := assemble.Assemble(ld, assemble.Layout{{"NY12", "NY22"}})
	if err != nil {
		fmt.Println("assemble failed:", err)
		return
	}

	fmt.Println("status:", m.Status)
	fmt.Println("tiles:", m.Tiles[0][0], m.Tiles[0][1])
	fmt.Println("grid:", m.Grid.Rows(), "rows,", m.Grid.Cols(), "cols")
	fmt.Printf("altitude range: %.1f to %.1f\n", m.Summary.MinAltitude, m.Summary.MaxAltitude)
	// Output:
	// status: ok
	// tiles: ok sea
	// grid: 2 rows, 4 cols
	// altitude range: 1.0 to 4.0
}
