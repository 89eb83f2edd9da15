package sphere1d_test

import (
	"math"
	"testing"

	"github.com/golang/geo/s1"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/bspgeom/partitioning"
	"github.com/katalvlaran/bspgeom/sphere1d"
)

func TestArc_CheckPoint(t *testing.T) {
	arc := sphere1d.NewArc(1, 2, tol)
	assert.InDelta(t, 1, arc.Size(), 1e-12)
	assert.InDelta(t, 1.5, arc.Middle().Radians(), 1e-12)

	assert.Equal(t, partitioning.Inside, arc.CheckPoint(1.5))
	assert.Equal(t, partitioning.Inside, arc.CheckPoint(s1.Angle(1.5-2*math.Pi)))
	assert.Equal(t, partitioning.Boundary, arc.CheckPoint(1))
	assert.Equal(t, partitioning.Boundary, arc.CheckPoint(2))
	assert.Equal(t, partitioning.Outside, arc.CheckPoint(3))
}

func TestArc_Wrapping(t *testing.T) {
	arc := sphere1d.NewArc(2, 1, tol)
	assert.InDelta(t, 2*math.Pi-1, arc.Size(), 1e-12)
	assert.Equal(t, partitioning.Inside, arc.CheckPoint(0))
	assert.Equal(t, partitioning.Outside, arc.CheckPoint(1.5))

	full := sphere1d.NewArc(3, 3, tol)
	assert.InDelta(t, 2*math.Pi, full.Size(), 1e-12)
	assert.Equal(t, partitioning.Inside, full.CheckPoint(0))
}

func TestArc_Interval(t *testing.T) {
	across := sphere1d.NewArc(3, 4, tol).Interval()
	assert.True(t, across.IsInverted())
	assert.True(t, across.Contains(math.Pi))
	assert.False(t, across.Contains(0))

	plain := sphere1d.NewArc(0.5, 1, tol).Interval()
	assert.InDelta(t, 0.5, plain.Length(), 1e-12)

	assert.True(t, sphere1d.NewArc(0, 7, tol).Interval().IsFull())
}

func TestLimitAngle_Offset(t *testing.T) {
	l := sphere1d.NewLimitAngle(s1.Angle(-math.Pi/2), true, tol)
	assert.InDelta(t, 1.5*math.Pi, l.Location().Radians(), 1e-12)
	assert.InDelta(t, 0.25-1.5*math.Pi, l.Offset(s1.Angle(2*math.Pi+0.25)), 1e-12)
	assert.InDelta(t, 1.5*math.Pi, l.Reverse().Offset(0), 1e-12)
	assert.False(t, l.SameOrientationAs(l.Reverse()))

	sub := l.WholeHyperplane()
	assert.False(t, sub.IsEmpty())
	assert.Equal(t, partitioning.Minus, sub.Side(sphere1d.NewLimitAngle(5, true, tol)))
	assert.Equal(t, partitioning.Hyper, sub.Side(l.Reverse()))
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0.5, sphere1d.NormalizeAngle(0.5+4*math.Pi, math.Pi), 1e-12)
	assert.InDelta(t, -0.5, sphere1d.NormalizeAngle(-0.5, 0), 1e-12)
	assert.InDelta(t, 2*math.Pi-0.5, sphere1d.NormalizeAngle(-0.5, math.Pi), 1e-12)
}
