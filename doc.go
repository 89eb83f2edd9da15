// Package bspgeom partitions spaces with binary space partitioning trees
// and represents regions of those spaces exactly.
//
// A region is a BSP tree whose internal nodes carry cut sub-hyperplanes and
// whose leaves are marked inside or outside. Boolean operations merge trees,
// point classification walks a single root-to-leaf path, and measures
// (size, barycenter, boundary size) are computed from the tree.
//
// Subpackages:
//
//	partitioning/ — BSPTree, generic region base, sub-hyperplane glue, RegionFactory
//	euclidean1d/  — oriented points and interval sets on the real line
//	euclidean2d/  — lines, segments, polygon sets and affine transforms in the plane
//	sphere1d/     — limit angles and arc sets on the unit circle
//	cmd/regionplot — builds a polygon from the command line and plots its boundary
//
// Quick example:
//
//	a, _ := euclidean1d.NewIntervalsSet(0, 2, partitioning.DefaultTolerance)
//	b, _ := euclidean1d.NewIntervalsSet(1, 3, partitioning.DefaultTolerance)
//	u := partitioning.NewRegionFactory[float64]().Union(a, b) // [0, 3]
//
//	go get github.com/katalvlaran/bspgeom
package bspgeom
