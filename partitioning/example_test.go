package partitioning_test

import (
	"fmt"

	"github.com/katalvlaran/bspgeom/euclidean1d"
	"github.com/katalvlaran/bspgeom/partitioning"
)

// ExampleRegionFactory combines two intervals of the real line with the
// boolean operations of the factory.
func ExampleRegionFactory() {
	// [0, 2] and [1, 3]
	a, _ := euclidean1d.NewIntervalsSet(0, 2, partitioning.DefaultTolerance)
	b, _ := euclidean1d.NewIntervalsSet(1, 3, partitioning.DefaultTolerance)

	f := partitioning.NewRegionFactory[float64]()
	for _, op := range []struct {
		name   string
		result partitioning.Region[float64]
	}{
		{"union", f.Union(a, b)},
		{"intersection", f.Intersection(a, b)},
		{"xor", f.Xor(a, b)},
		{"difference", f.Difference(a, b)},
	} {
		fmt.Printf("%-12s", op.name)
		for _, i := range op.result.(*euclidean1d.IntervalsSet).Intervals() {
			fmt.Printf(" [%g, %g]", i.Lo, i.Hi)
		}
		fmt.Println()
	}

	// Output:
	// union        [0, 3]
	// intersection [1, 2]
	// xor          [0, 1] [2, 3]
	// difference   [0, 1]
}

// ExampleBSPTree_Cell locates points in the tree of [0, 1]: points on a cut
// stop at the internal node owning it.
func ExampleBSPTree_Cell() {
	set, _ := euclidean1d.NewIntervalsSet(0, 1, partitioning.DefaultTolerance)
	tree := set.Tree(false)

	for _, x := range []float64{0.5, 1, 2} {
		cell := tree.Cell(x, partitioning.DefaultTolerance)
		if cell.IsLeaf() {
			fmt.Printf("%g: leaf inside=%v\n", x, cell.Attribute())
			continue
		}
		fmt.Printf("%g: cut %v\n", x, cell.Cut().Hyperplane())
	}

	// Output:
	// 0.5: leaf inside=true
	// 1: cut x > 1
	// 2: leaf inside=false
}
