package sphere1d

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"

	"github.com/katalvlaran/bspgeom/partitioning"
)

// Arc is a single connected arc of the circle, from Lower to Upper going
// counter-clockwise. Lower <= Upper <= Lower + 2π.
type Arc struct {
	lower     float64
	upper     float64
	middle    float64
	tolerance float64
}

// NewArc creates the arc from lower to upper. When upper is smaller than
// lower the arc goes through the 0/2π wrapping point. Equal bounds or a
// length of at least 2π give the full circle.
func NewArc(lower, upper s1.Angle, tolerance float64) Arc {
	lo, hi := lower.Radians(), upper.Radians()
	if lo > hi {
		hi += TwoPi
	}
	if lo == hi || hi-lo >= TwoPi {
		return Arc{lower: 0, upper: TwoPi, middle: math.Pi, tolerance: tolerance}
	}

	return Arc{lower: lo, upper: hi, middle: 0.5 * (lo + hi), tolerance: tolerance}
}

// Lower returns the arc start.
func (a Arc) Lower() s1.Angle { return s1.Angle(a.lower) }

// Upper returns the arc end, possibly larger than 2π.
func (a Arc) Upper() s1.Angle { return s1.Angle(a.upper) }

// Middle returns the arc middle.
func (a Arc) Middle() s1.Angle { return s1.Angle(a.middle) }

// Size returns the angular length of the arc.
func (a Arc) Size() float64 { return a.upper - a.lower }

// Tolerance returns the tolerance of the arc.
func (a Arc) Tolerance() float64 { return a.tolerance }

// CheckPoint classifies point with respect to the arc.
func (a Arc) CheckPoint(point s1.Angle) partitioning.Location {
	p := NormalizeAngle(point.Radians(), a.middle)
	switch {
	case p < a.lower-a.tolerance || p > a.upper+a.tolerance:
		return partitioning.Outside
	case p > a.lower+a.tolerance && p < a.upper-a.tolerance:
		return partitioning.Inside
	case a.Size() >= TwoPi-a.tolerance:
		return partitioning.Inside
	default:
		return partitioning.Boundary
	}
}

// Interval returns the arc as an s1.Interval, whose endpoints live in
// [-π, π].
func (a Arc) Interval() s1.Interval {
	if a.Size() >= TwoPi {
		return s1.FullInterval()
	}

	return s1.IntervalFromEndpoints(math.Remainder(a.lower, TwoPi), math.Remainder(a.upper, TwoPi))
}

// String implements fmt.Stringer.
func (a Arc) String() string {
	return fmt.Sprintf("[%.6f, %.6f]", a.lower, a.upper)
}
