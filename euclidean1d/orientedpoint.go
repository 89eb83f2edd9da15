package euclidean1d

import (
	"fmt"

	"github.com/katalvlaran/bspgeom/partitioning"
)

// OrientedPoint is the hyperplane of the real line: a location splitting the
// line, with the plus side above the location when direct, below otherwise.
// Instances are immutable.
type OrientedPoint struct {
	location  float64
	direct    bool
	tolerance float64
}

// NewOrientedPoint creates an oriented point. tolerance must be >= 0.
func NewOrientedPoint(location float64, direct bool, tolerance float64) *OrientedPoint {
	return &OrientedPoint{location: location, direct: direct, tolerance: tolerance}
}

// Location returns the abscissa of the point.
func (o *OrientedPoint) Location() float64 { return o.location }

// IsDirect reports whether the plus side is towards increasing abscissas.
func (o *OrientedPoint) IsDirect() bool { return o.direct }

// Reverse returns the oriented point with the opposite orientation.
func (o *OrientedPoint) Reverse() *OrientedPoint {
	return NewOrientedPoint(o.location, !o.direct, o.tolerance)
}

// Copy returns the receiver, oriented points being immutable.
func (o *OrientedPoint) Copy() partitioning.Hyperplane[float64] { return o }

// Offset returns the signed distance of x to the point.
func (o *OrientedPoint) Offset(x float64) float64 {
	delta := x - o.location
	if o.direct {
		return delta
	}

	return -delta
}

// Project returns the location: every point of the line projects on it.
func (o *OrientedPoint) Project(float64) float64 { return o.location }

// Tolerance returns the tolerance of the hyperplane.
func (o *OrientedPoint) Tolerance() float64 { return o.tolerance }

// SameOrientationAs reports whether other has the same orientation.
func (o *OrientedPoint) SameOrientationAs(other partitioning.Hyperplane[float64]) bool {
	return o.direct == other.(*OrientedPoint).direct
}

// WholeHyperplane returns the sub-hyperplane made of the point itself.
func (o *OrientedPoint) WholeHyperplane() partitioning.SubHyperplane[float64] {
	return NewSubOrientedPoint(o)
}

// WholeSpace returns the whole real line.
func (o *OrientedPoint) WholeSpace() partitioning.Region[float64] {
	return fromTree(partitioning.NewLeaf[float64](true), o.tolerance)
}

// String implements fmt.Stringer.
func (o *OrientedPoint) String() string {
	if o.direct {
		return fmt.Sprintf("x > %g", o.location)
	}

	return fmt.Sprintf("x < %g", o.location)
}

// SubOrientedPoint is the sub-hyperplane of an oriented point. It has no
// remaining region: a point cannot be bounded further.
type SubOrientedPoint struct {
	*partitioning.SubHyperplaneBase[float64, float64]
}

// NewSubOrientedPoint wraps an oriented point in a sub-hyperplane.
func NewSubOrientedPoint(o *OrientedPoint) *SubOrientedPoint {
	s := &SubOrientedPoint{}
	s.SubHyperplaneBase = partitioning.NewSubHyperplaneBase[float64, float64](o, nil, s)

	return s
}

// BuildNew creates a sub-oriented point on h; remaining is ignored.
func (s *SubOrientedPoint) BuildNew(h partitioning.Hyperplane[float64], _ partitioning.Region[float64]) partitioning.SubHyperplane[float64] {
	return NewSubOrientedPoint(h.(*OrientedPoint))
}

// Size is always 0.
func (s *SubOrientedPoint) Size() float64 { return 0 }

// IsEmpty is always false.
func (s *SubOrientedPoint) IsEmpty() bool { return false }

// Reunite returns the receiver: two points on the same hyperplane coincide.
func (s *SubOrientedPoint) Reunite(partitioning.SubHyperplane[float64]) partitioning.SubHyperplane[float64] {
	return s
}

// Split puts the point entirely on one side of h, or on neither when it is
// within tolerance of h.
func (s *SubOrientedPoint) Split(h partitioning.Hyperplane[float64]) partitioning.Split[float64] {
	global := h.Offset(s.Hyperplane().(*OrientedPoint).location)
	switch {
	case global < -h.Tolerance():
		return partitioning.Split[float64]{Minus: s}
	case global > h.Tolerance():
		return partitioning.Split[float64]{Plus: s}
	default:
		return partitioning.Split[float64]{}
	}
}
