package dem_test

import (
	"fmt"

	"github.com/katalvlaran/terrain50/dem"
)

// ExampleGrid shows the south-up orientation and sentinel-aware statistics.
func ExampleGrid() {
	g, err := dem.NewGrid([][]float64{
		{4.5, 5.5, 6.5}, // south row
		{1.5, dem.NoAltitude, 3.5},
	})
	if err != nil {
		fmt.Println("bad grid:", err)
		return
	}

	min, max, ok := g.MinMax()
	fmt.Println("shape:", g.Rows(), "x", g.Cols())
	fmt.Println("south-west sample:", g.At(0, 0))
	fmt.Println("range:", min, "-", max, ok)
	fmt.Println("same altitude:", dem.SameAltitude(4.5, 4.505))
	// Output:
	// shape: 2 x 3
	// south-west sample: 4.5
	// range: 1.5 - 6.5 true
	// same altitude: true
}
