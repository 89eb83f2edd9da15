package partitioning_test

import (
	"testing"

	"github.com/katalvlaran/bspgeom/euclidean1d"
	"github.com/katalvlaran/bspgeom/partitioning"
)

// BenchmarkRegionFactory_Union100 measures the union of 100 disjoint
// intervals, one at a time.
func BenchmarkRegionFactory_Union100(b *testing.B) {
	// 1. Prepare the operands once
	f := partitioning.NewRegionFactory[float64]()
	sets := make([]partitioning.Region[float64], 100)
	for i := range sets {
		sets[i], _ = euclidean1d.NewIntervalsSet(float64(2*i), float64(2*i+1), tol)
	}
	b.ResetTimer()

	// 2. Operands are copied by the factory, so they can be reused
	for i := 0; i < b.N; i++ {
		acc := sets[0]
		for _, s := range sets[1:] {
			acc = f.Union(acc, s)
		}
	}
}

// BenchmarkBSPTree_Cell measures point location in a deep tree.
func BenchmarkBSPTree_Cell(b *testing.B) {
	f := partitioning.NewRegionFactory[float64]()
	acc, _ := euclidean1d.NewIntervalsSet(0, 1, tol)
	var region partitioning.Region[float64] = acc
	for i := 1; i < 200; i++ {
		next, _ := euclidean1d.NewIntervalsSet(float64(2*i), float64(2*i+1), tol)
		region = f.Union(region, next)
	}
	tree := region.Tree(false)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = tree.Cell(float64(i%400)+0.5, tol)
	}
}
