package euclidean2d_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bspgeom/euclidean2d"
	"github.com/katalvlaran/bspgeom/partitioning"
)

func unitSquare(t *testing.T) *euclidean2d.PolygonsSet {
	square, err := euclidean2d.NewBox(0, 1, 0, 1, tol)
	require.NoError(t, err)

	return square
}

func TestAffineTransform_ApplyPoint(t *testing.T) {
	tr, err := euclidean2d.NewAffineTransform(1, 2, 3, 4, 5, 6)
	require.NoError(t, err)
	assertPoint(t, pt(1+4+3, 4+10+6), tr.ApplyPoint(pt(1, 2)), 1e-12)

	rotation := euclidean2d.NewRotation(pt(1, 1), math.Pi/2)
	assertPoint(t, pt(1, 1), rotation.ApplyPoint(pt(1, 1)), 1e-12)
	assertPoint(t, pt(1, 2), rotation.ApplyPoint(pt(2, 1)), 1e-12)

	composed := euclidean2d.NewTranslation(1, 0).Then(euclidean2d.NewRotation(pt(0, 0), math.Pi))
	assertPoint(t, pt(-2, 0), composed.ApplyPoint(pt(1, 0)), 1e-12)
}

func TestAffineTransform_NonInvertible(t *testing.T) {
	_, err := euclidean2d.NewAffineTransform(1, 2, 0, 2, 4, 0)
	assert.ErrorIs(t, err, euclidean2d.ErrNonInvertibleTransform)

	_, err = euclidean2d.NewScaling(0, 1)
	assert.ErrorIs(t, err, euclidean2d.ErrNonInvertibleTransform)
}

func TestAffineTransform_Line(t *testing.T) {
	line := euclidean2d.NewLine(pt(0, 0), pt(1, 0), tol)
	moved := euclidean2d.NewTranslation(0, 2).ApplyHyperplane(line).(*euclidean2d.Line)

	assert.True(t, moved.Contains(pt(7, 2)))
	assert.InDelta(t, 0, moved.Angle(), 1e-12)
}

func TestPolygonsSet_Transform(t *testing.T) {
	scaling, err := euclidean2d.NewScaling(2, 3)
	require.NoError(t, err)
	reflection, err := euclidean2d.NewAffineTransform(-1, 0, 0, 0, 1, 0)
	require.NoError(t, err)

	cases := []struct {
		name       string
		transform  *euclidean2d.AffineTransform
		area       float64
		barycenter [2]float64
		inside     [2]float64
		outside    [2]float64
	}{
		{"translation", euclidean2d.NewTranslation(1, 2), 1, [2]float64{1.5, 2.5}, [2]float64{1.5, 2.5}, [2]float64{0.5, 0.5}},
		{"rotation", euclidean2d.NewRotation(pt(0, 0), math.Pi/2), 1, [2]float64{-0.5, 0.5}, [2]float64{-0.5, 0.5}, [2]float64{0.5, 0.5}},
		{"scaling", scaling, 6, [2]float64{1, 1.5}, [2]float64{1.9, 2.9}, [2]float64{2.1, 1}},
		{"reflection", reflection, 1, [2]float64{-0.5, 0.5}, [2]float64{-0.5, 0.5}, [2]float64{0.5, 0.5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			moved, err := unitSquare(t).Transform(tc.transform)
			require.NoError(t, err)

			assert.InDelta(t, tc.area, moved.Size(), 1e-9)
			assertPoint(t, pt(tc.barycenter[0], tc.barycenter[1]), moved.Barycenter(), 1e-9)
			assert.Equal(t, partitioning.Inside, moved.CheckPoint(pt(tc.inside[0], tc.inside[1])))
			assert.Equal(t, partitioning.Outside, moved.CheckPoint(pt(tc.outside[0], tc.outside[1])))
			assert.Len(t, moved.BoundarySegments(), 4)
		})
	}
}

func TestPolygonsSet_Transform_KeepsOriginal(t *testing.T) {
	square := unitSquare(t)
	_, err := square.Transform(euclidean2d.NewTranslation(5, 5))
	require.NoError(t, err)

	assert.Equal(t, partitioning.Inside, square.CheckPoint(pt(0.5, 0.5)))
	assertPoint(t, pt(0.5, 0.5), square.Barycenter(), 1e-10)
}
