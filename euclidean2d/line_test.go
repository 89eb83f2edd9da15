package euclidean2d_test

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bspgeom/euclidean2d"
	"github.com/katalvlaran/bspgeom/partitioning"
)

const tol = 1e-10

func pt(x, y float64) r2.Point { return r2.Point{X: x, Y: y} }

func assertPoint(t *testing.T, expected, actual r2.Point, delta float64) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, delta, "x of %v", actual)
	assert.InDelta(t, expected.Y, actual.Y, delta, "y of %v", actual)
}

func TestLine_Offset(t *testing.T) {
	horizontal := euclidean2d.NewLine(pt(0, 1), pt(1, 1), tol)
	assert.InDelta(t, 1, horizontal.OriginOffset(), 1e-12)
	assert.InDelta(t, 1, horizontal.Offset(pt(0, 0)), 1e-12, "right side is plus")
	assert.InDelta(t, -2, horizontal.Offset(pt(7, 3)), 1e-12, "left side is minus")

	diagonal := euclidean2d.NewLine(pt(0, 0), pt(1, 1), tol)
	assert.InDelta(t, math.Pi/4, diagonal.Angle(), 1e-12)
	assert.InDelta(t, -math.Sqrt2/2, diagonal.Offset(pt(0, 1)), 1e-12)
	assert.InDelta(t, math.Sqrt2/2, diagonal.Distance(pt(0, 1)), 1e-12)
	assert.True(t, diagonal.Contains(pt(5, 5)))
	assert.False(t, diagonal.Contains(pt(5, 5.1)))
}

func TestLine_Angle(t *testing.T) {
	cases := []struct {
		to    r2.Point
		angle float64
	}{
		{pt(1, 0), 0},
		{pt(0, 1), math.Pi / 2},
		{pt(-1, 0), math.Pi},
		{pt(0, -1), 3 * math.Pi / 2},
	}
	for _, tc := range cases {
		line := euclidean2d.NewLine(pt(0, 0), tc.to, tol)
		assert.InDelta(t, tc.angle, line.Angle(), 1e-12, "towards %v", tc.to)
		assertPoint(t, tc.to, line.Direction(), 1e-12)
	}

	same := euclidean2d.NewLine(pt(3, 4), pt(3, 4), tol)
	assert.Zero(t, same.Angle())
	assert.InDelta(t, 0, same.Offset(pt(9, 4)), 1e-12)
}

func TestLine_FromAngle(t *testing.T) {
	vertical := euclidean2d.NewLineFromAngle(pt(1, 1), math.Pi/2, tol)
	assert.True(t, vertical.Contains(pt(1, 5)))
	assert.InDelta(t, 1, vertical.Offset(pt(2, 0)), 1e-12)

	wrapped := euclidean2d.NewLineFromAngle(pt(0, 0), -math.Pi/2, tol)
	assert.InDelta(t, 3*math.Pi/2, wrapped.Angle(), 1e-12)
}

func TestLine_SubSpace(t *testing.T) {
	line := euclidean2d.NewLine(pt(1, 2), pt(4, 6), tol)
	for _, p := range []r2.Point{pt(1, 2), pt(4, 6), pt(-2, -2)} {
		assertPoint(t, p, line.ToSpace(line.ToSubSpace(p)), 1e-12)
	}
	assert.InDelta(t, 5, line.ToSubSpace(pt(4, 6))-line.ToSubSpace(pt(1, 2)), 1e-12)

	// projections land on the line
	projected := line.Project(pt(10, -3))
	assert.True(t, line.Contains(projected))
}

func TestLine_Reverse(t *testing.T) {
	line := euclidean2d.NewLine(pt(0, 0), pt(0, -1), tol)
	reversed := line.Reverse()

	assert.InDelta(t, math.Pi/2, reversed.Angle(), 1e-12)
	assert.InDelta(t, -line.Offset(pt(3, 1)), reversed.Offset(pt(3, 1)), 1e-12)
	assert.False(t, line.SameOrientationAs(reversed))
	assert.True(t, line.SameOrientationAs(line.Copy()))
}

func TestLine_Intersection(t *testing.T) {
	bottom := euclidean2d.NewLine(pt(0, 0), pt(1, 0), tol)
	right := euclidean2d.NewLine(pt(1, 0), pt(1, 1), tol)

	crossing, ok := bottom.Intersection(right)
	require.True(t, ok)
	assertPoint(t, pt(1, 0), crossing, 1e-12)

	parallel := euclidean2d.NewLine(pt(0, 2), pt(1, 2), tol)
	_, ok = bottom.Intersection(parallel)
	assert.False(t, ok)
	assert.True(t, bottom.IsParallelTo(parallel))
	assert.InDelta(t, -2, bottom.OffsetOfLine(parallel), 1e-12)
	assert.InDelta(t, -2, bottom.OffsetOfLine(parallel.Reverse()), 1e-12)
}

func TestLine_WholeHyperplaneAndSpace(t *testing.T) {
	line := euclidean2d.NewLine(pt(0, 0), pt(1, 0), tol)

	whole := line.WholeHyperplane()
	assert.False(t, whole.IsEmpty())
	assert.True(t, math.IsInf(whole.Size(), 1))

	space := line.WholeSpace()
	assert.True(t, space.IsFull())
	assert.IsType(t, &euclidean2d.PolygonsSet{}, space)
	assert.Equal(t, partitioning.Inside, space.CheckPoint(pt(3, 3)))
}
