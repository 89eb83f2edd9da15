package euclidean2d_test

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/bspgeom/euclidean2d"
)

// regularPolygon returns the n vertices of a regular polygon of radius 1.
func regularPolygon(n int) []r2.Point {
	vertices := make([]r2.Point, n)
	for i := range vertices {
		a := 2 * math.Pi * float64(i) / float64(n)
		vertices[i] = r2.Point{X: math.Cos(a), Y: math.Sin(a)}
	}

	return vertices
}

// BenchmarkNewPolygon_64 measures the tree construction from 64 edges
// followed by the area computation.
func BenchmarkNewPolygon_64(b *testing.B) {
	vertices := regularPolygon(64)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p, err := euclidean2d.NewPolygon(tol, vertices...)
		if err != nil {
			b.Fatal(err)
		}
		_ = p.Size()
	}
}

// BenchmarkPolygonsSet_CheckPoint measures point location in a 64-gon.
func BenchmarkPolygonsSet_CheckPoint(b *testing.B) {
	p, err := euclidean2d.NewPolygon(tol, regularPolygon(64)...)
	if err != nil {
		b.Fatal(err)
	}
	probes := regularPolygon(7)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = p.CheckPoint(probes[i%len(probes)].Mul(0.5))
	}
}
