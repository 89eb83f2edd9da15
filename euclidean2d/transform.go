package euclidean2d

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bspgeom/euclidean1d"
	"github.com/katalvlaran/bspgeom/partitioning"
)

// ErrNonInvertibleTransform is returned for singular affine maps.
var ErrNonInvertibleTransform = errors.New("euclidean2d: affine transform is not invertible")

// minDeterminant is the smallest linear part determinant accepted.
const minDeterminant = 1e-20

// AffineTransform is an invertible affine map of the plane, stored as the
// homogeneous 3x3 matrix
//
//	| cXX cXY cX1 |
//	| cYX cYY cY1 |
//	|  0   0   1  |
//
// Orientation reversing maps (negative determinant) are supported: the
// images of lines are reversed so that regions keep their interior.
type AffineTransform struct {
	m       *mat.Dense
	reverse bool
}

// NewAffineTransform builds the map (x, y) -> (cXX x + cXY y + cX1,
// cYX x + cYY y + cY1).
func NewAffineTransform(cXX, cXY, cX1, cYX, cYY, cY1 float64) (*AffineTransform, error) {
	m := mat.NewDense(3, 3, []float64{
		cXX, cXY, cX1,
		cYX, cYY, cY1,
		0, 0, 1,
	})
	det := mat.Det(m)
	if math.Abs(det) < minDeterminant {
		return nil, fmt.Errorf("%w: determinant %g", ErrNonInvertibleTransform, det)
	}

	return &AffineTransform{m: m, reverse: det < 0}, nil
}

// NewTranslation returns the translation by (dx, dy).
func NewTranslation(dx, dy float64) *AffineTransform {
	t, _ := NewAffineTransform(1, 0, dx, 0, 1, dy)

	return t
}

// NewRotation returns the counter-clockwise rotation by angle around center.
func NewRotation(center r2.Point, angle float64) *AffineTransform {
	cos, sin := math.Cos(angle), math.Sin(angle)
	t, _ := NewAffineTransform(
		cos, -sin, center.X-cos*center.X+sin*center.Y,
		sin, cos, center.Y-sin*center.X-cos*center.Y,
	)

	return t
}

// NewScaling returns the scaling by (sx, sy) around the origin.
func NewScaling(sx, sy float64) (*AffineTransform, error) {
	return NewAffineTransform(sx, 0, 0, 0, sy, 0)
}

// Then returns the map applying t first, then next.
func (t *AffineTransform) Then(next *AffineTransform) *AffineTransform {
	var m mat.Dense
	m.Mul(next.m, t.m)

	return &AffineTransform{m: &m, reverse: t.reverse != next.reverse}
}

// ApplyPoint transforms a point.
func (t *AffineTransform) ApplyPoint(p r2.Point) r2.Point {
	var out mat.VecDense
	out.MulVec(t.m, mat.NewVecDense(3, []float64{p.X, p.Y, 1}))

	return r2.Point{X: out.AtVec(0), Y: out.AtVec(1)}
}

// ApplyHyperplane transforms a line through the images of two of its
// points.
func (t *AffineTransform) ApplyHyperplane(h partitioning.Hyperplane[r2.Point]) partitioning.Hyperplane[r2.Point] {
	line := h.(*Line)
	q1 := t.ApplyPoint(line.ToSpace(0))
	q2 := t.ApplyPoint(line.ToSpace(1))
	if t.reverse {
		return NewLine(q2, q1, line.Tolerance())
	}

	return NewLine(q1, q2, line.Tolerance())
}

// ApplySubHyperplane moves an oriented point of the sub-space of original
// to the sub-space of transformed.
func (t *AffineTransform) ApplySubHyperplane(sub partitioning.SubHyperplane[float64], original, transformed partitioning.Hyperplane[r2.Point]) partitioning.SubHyperplane[float64] {
	op := sub.Hyperplane().(*euclidean1d.OrientedPoint)
	from := original.(*Line)
	to := transformed.(*Line)
	location := to.ToSubSpace(t.ApplyPoint(from.ToSpace(op.Location())))

	return euclidean1d.NewOrientedPoint(location, op.IsDirect() != t.reverse, op.Tolerance()).WholeHyperplane()
}
