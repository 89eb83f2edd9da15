package sphere1d

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"

	"github.com/katalvlaran/bspgeom/partitioning"
)

// LimitAngle is the hyperplane of the circle: an angle splitting it, with
// the plus side towards larger angles when direct. Instances are immutable.
type LimitAngle struct {
	location  float64 // radians, in [0, 2π)
	direct    bool
	tolerance float64
}

// NewLimitAngle creates a limit angle at location.
func NewLimitAngle(location s1.Angle, direct bool, tolerance float64) *LimitAngle {
	return &LimitAngle{
		location:  NormalizeAngle(location.Radians(), math.Pi),
		direct:    direct,
		tolerance: tolerance,
	}
}

// newLimitAngle keeps location as is: callers already normalized it.
func newLimitAngle(location float64, direct bool, tolerance float64) *LimitAngle {
	return &LimitAngle{location: location, direct: direct, tolerance: tolerance}
}

// Location returns the angle of the limit.
func (l *LimitAngle) Location() s1.Angle { return s1.Angle(l.location) }

// IsDirect reports whether the plus side is towards increasing angles.
func (l *LimitAngle) IsDirect() bool { return l.direct }

// Reverse returns the limit angle with the opposite orientation.
func (l *LimitAngle) Reverse() *LimitAngle {
	return newLimitAngle(l.location, !l.direct, l.tolerance)
}

// Copy returns the receiver, limit angles being immutable.
func (l *LimitAngle) Copy() partitioning.Hyperplane[s1.Angle] { return l }

// Offset returns the signed angular distance of the normalized point to the
// limit.
func (l *LimitAngle) Offset(point s1.Angle) float64 {
	delta := NormalizeAngle(point.Radians(), math.Pi) - l.location
	if l.direct {
		return delta
	}

	return -delta
}

// Project returns the location of the limit.
func (l *LimitAngle) Project(s1.Angle) s1.Angle { return s1.Angle(l.location) }

// Tolerance returns the tolerance of the hyperplane.
func (l *LimitAngle) Tolerance() float64 { return l.tolerance }

// SameOrientationAs reports whether other has the same orientation.
func (l *LimitAngle) SameOrientationAs(other partitioning.Hyperplane[s1.Angle]) bool {
	return l.direct == other.(*LimitAngle).direct
}

// WholeHyperplane returns the sub-hyperplane made of the limit itself.
func (l *LimitAngle) WholeHyperplane() partitioning.SubHyperplane[s1.Angle] {
	return NewSubLimitAngle(l)
}

// WholeSpace returns the whole circle.
func (l *LimitAngle) WholeSpace() partitioning.Region[s1.Angle] {
	return fromTree(partitioning.NewLeaf[s1.Angle](true), l.tolerance)
}

// String implements fmt.Stringer.
func (l *LimitAngle) String() string {
	if l.direct {
		return fmt.Sprintf("θ > %.6f", l.location)
	}

	return fmt.Sprintf("θ < %.6f", l.location)
}

// SubLimitAngle is the sub-hyperplane of a limit angle. Like a point on a
// line it has no remaining region.
type SubLimitAngle struct {
	*partitioning.SubHyperplaneBase[s1.Angle, s1.Angle]
}

// NewSubLimitAngle wraps a limit angle in a sub-hyperplane.
func NewSubLimitAngle(l *LimitAngle) *SubLimitAngle {
	s := &SubLimitAngle{}
	s.SubHyperplaneBase = partitioning.NewSubHyperplaneBase[s1.Angle, s1.Angle](l, nil, s)

	return s
}

// BuildNew creates a sub-limit angle on h; remaining is ignored.
func (s *SubLimitAngle) BuildNew(h partitioning.Hyperplane[s1.Angle], _ partitioning.Region[s1.Angle]) partitioning.SubHyperplane[s1.Angle] {
	return NewSubLimitAngle(h.(*LimitAngle))
}

// Size is always 0.
func (s *SubLimitAngle) Size() float64 { return 0 }

// IsEmpty is always false.
func (s *SubLimitAngle) IsEmpty() bool { return false }

// Reunite returns the receiver.
func (s *SubLimitAngle) Reunite(partitioning.SubHyperplane[s1.Angle]) partitioning.SubHyperplane[s1.Angle] {
	return s
}

// Split puts the limit on one side of h, or on neither within tolerance.
func (s *SubLimitAngle) Split(h partitioning.Hyperplane[s1.Angle]) partitioning.Split[s1.Angle] {
	global := h.Offset(s.Hyperplane().(*LimitAngle).Location())
	switch {
	case global < -h.Tolerance():
		return partitioning.Split[s1.Angle]{Minus: s}
	case global > h.Tolerance():
		return partitioning.Split[s1.Angle]{Plus: s}
	default:
		return partitioning.Split[s1.Angle]{}
	}
}
