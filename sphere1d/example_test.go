package sphere1d_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bspgeom/partitioning"
	"github.com/katalvlaran/bspgeom/sphere1d"
)

// ExampleNewArcsSet builds an arc crossing the 0/2π wrapping point.
func ExampleNewArcsSet() {
	set, err := sphere1d.NewArcsSet(1.5*math.Pi, 0.5*math.Pi, partitioning.DefaultTolerance)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, arc := range set.Arcs() {
		fmt.Printf("[%.4fπ, %.4fπ]\n", arc.Lower().Radians()/math.Pi, arc.Upper().Radians()/math.Pi)
	}
	fmt.Printf("size %.4fπ\n", set.Size()/math.Pi)
	fmt.Println(set.CheckPoint(0), set.CheckPoint(math.Pi))

	// Output:
	// [1.5000π, 2.5000π]
	// size 1.0000π
	// inside outside
}
