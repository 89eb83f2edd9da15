package euclidean2d

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/bspgeom/euclidean1d"
	"github.com/katalvlaran/bspgeom/partitioning"
)

// Line is an oriented line of the plane. The offset of a point is positive
// on the right of the line direction and negative on its left.
// Instances are immutable.
type Line struct {
	angle        float64 // direction angle, in [0, 2π)
	cos          float64
	sin          float64
	originOffset float64 // offset of the origin
	tolerance    float64
}

// NewLine returns the line going from p1 to p2. Equal points give the
// horizontal line through p1.
func NewLine(p1, p2 r2.Point, tolerance float64) *Line {
	d := p2.Sub(p1)
	norm := d.Norm()
	if norm == 0 {
		return &Line{angle: 0, cos: 1, sin: 0, originOffset: p1.Y, tolerance: tolerance}
	}

	return &Line{
		angle:        normalizeAngle(math.Atan2(d.Y, d.X), math.Pi),
		cos:          d.X / norm,
		sin:          d.Y / norm,
		originOffset: (p2.X*p1.Y - p1.X*p2.Y) / norm,
		tolerance:    tolerance,
	}
}

// NewLineFromAngle returns the line through p with direction angle alpha.
func NewLineFromAngle(p r2.Point, alpha, tolerance float64) *Line {
	angle := normalizeAngle(alpha, math.Pi)
	cos, sin := math.Cos(angle), math.Sin(angle)

	return &Line{
		angle:        angle,
		cos:          cos,
		sin:          sin,
		originOffset: cos*p.Y - sin*p.X,
		tolerance:    tolerance,
	}
}

// normalizeAngle brings a into [center-π, center+π).
func normalizeAngle(a, center float64) float64 {
	return a - 2*math.Pi*math.Floor((a+math.Pi-center)/(2*math.Pi))
}

// Angle returns the direction angle in [0, 2π).
func (l *Line) Angle() float64 { return l.angle }

// OriginOffset returns the offset of the origin.
func (l *Line) OriginOffset() float64 { return l.originOffset }

// Direction returns the unit direction vector.
func (l *Line) Direction() r2.Point { return r2.Point{X: l.cos, Y: l.sin} }

// Reverse returns the same line with the opposite direction.
func (l *Line) Reverse() *Line {
	angle := l.angle + math.Pi
	if l.angle >= math.Pi {
		angle = l.angle - math.Pi
	}

	return &Line{angle: angle, cos: -l.cos, sin: -l.sin, originOffset: -l.originOffset, tolerance: l.tolerance}
}

// ToSubSpace returns the abscissa of the projection of p on the line.
func (l *Line) ToSubSpace(p r2.Point) float64 {
	return l.cos*p.X + l.sin*p.Y
}

// ToSpace returns the point of the line at abscissa a. Infinite abscissas
// give infinite coordinates only along the axes the line actually spans.
func (l *Line) ToSpace(a float64) r2.Point {
	p := r2.Point{X: -l.originOffset * l.sin, Y: l.originOffset * l.cos}
	if l.cos != 0 {
		p.X += a * l.cos
	}
	if l.sin != 0 {
		p.Y += a * l.sin
	}

	return p
}

// Intersection returns the crossing point of two lines, false when they
// are parallel within tolerance.
func (l *Line) Intersection(other *Line) (r2.Point, bool) {
	d := l.sin*other.cos - other.sin*l.cos
	if math.Abs(d) < l.tolerance {
		return r2.Point{}, false
	}

	return r2.Point{
		X: (l.cos*other.originOffset - other.cos*l.originOffset) / d,
		Y: (l.sin*other.originOffset - other.sin*l.originOffset) / d,
	}, true
}

// IsParallelTo reports whether the two lines are parallel within tolerance.
func (l *Line) IsParallelTo(other *Line) bool {
	return math.Abs(l.sin*other.cos-l.cos*other.sin) < l.tolerance
}

// OffsetOfLine returns the offset of a line parallel to the receiver.
func (l *Line) OffsetOfLine(other *Line) float64 {
	if l.cos*other.cos+l.sin*other.sin > 0 {
		return l.originOffset - other.originOffset
	}

	return l.originOffset + other.originOffset
}

// Contains reports whether p lies on the line within tolerance.
func (l *Line) Contains(p r2.Point) bool {
	return math.Abs(l.Offset(p)) < l.tolerance
}

// Distance returns the unsigned distance from p to the line.
func (l *Line) Distance(p r2.Point) float64 {
	return math.Abs(l.Offset(p))
}

// Copy returns the receiver, lines being immutable.
func (l *Line) Copy() partitioning.Hyperplane[r2.Point] { return l }

// Offset returns the signed distance of p to the line.
func (l *Line) Offset(p r2.Point) float64 {
	return l.sin*p.X - l.cos*p.Y + l.originOffset
}

// Project returns the orthogonal projection of p on the line.
func (l *Line) Project(p r2.Point) r2.Point {
	return l.ToSpace(l.ToSubSpace(p))
}

// Tolerance returns the tolerance of the line.
func (l *Line) Tolerance() float64 { return l.tolerance }

// SameOrientationAs reports whether other points in the same half-turn.
func (l *Line) SameOrientationAs(other partitioning.Hyperplane[r2.Point]) bool {
	o := other.(*Line)

	return l.sin*o.sin+l.cos*o.cos >= 0
}

// WholeHyperplane returns the sub-line covering the whole line.
func (l *Line) WholeHyperplane() partitioning.SubHyperplane[r2.Point] {
	whole, err := euclidean1d.NewWholeLine(l.tolerance)
	if err != nil {
		panic(err)
	}

	return NewSubLine(l, whole)
}

// WholeSpace returns the whole plane.
func (l *Line) WholeSpace() partitioning.Region[r2.Point] {
	return fromTree(partitioning.NewLeaf[r2.Point](true), l.tolerance)
}

// String implements fmt.Stringer.
func (l *Line) String() string {
	return fmt.Sprintf("line through %v angle %.6f", l.ToSpace(0), l.angle)
}
