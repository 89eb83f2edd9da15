package euclidean2d

import (
	"fmt"
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"github.com/samber/lo"

	"github.com/katalvlaran/bspgeom/euclidean1d"
	"github.com/katalvlaran/bspgeom/partitioning"
)

// Segment is an oriented piece of a line. Either end may be infinite.
type Segment struct {
	Start r2.Point
	End   r2.Point
	Line  *Line
}

// Length returns the distance between the ends.
func (s Segment) Length() float64 {
	return s.End.Sub(s.Start).Norm()
}

// SubLine is a part of a line made of disjoint segments, described by an
// IntervalsSet of abscissas along the line.
type SubLine struct {
	*partitioning.SubHyperplaneBase[r2.Point, float64]
}

// NewSubLine creates the sub-line of line covering remaining.
func NewSubLine(line *Line, remaining partitioning.Region[float64]) *SubLine {
	s := &SubLine{}
	s.SubHyperplaneBase = partitioning.NewSubHyperplaneBase[r2.Point, float64](line, remaining, s)

	return s
}

// NewSegment creates the sub-line holding the single segment [start, end].
func NewSegment(start, end r2.Point, tolerance float64) (*SubLine, error) {
	line := NewLine(start, end, tolerance)
	remaining, err := euclidean1d.NewIntervalsSet(line.ToSubSpace(start), line.ToSubSpace(end), tolerance)
	if err != nil {
		return nil, fmt.Errorf("euclidean2d: segment %v-%v: %w", start, end, err)
	}

	return NewSubLine(line, remaining), nil
}

// Line returns the supporting line.
func (s *SubLine) Line() *Line { return s.Hyperplane().(*Line) }

// BuildNew creates a sub-line of the same concrete type.
func (s *SubLine) BuildNew(h partitioning.Hyperplane[r2.Point], remaining partitioning.Region[float64]) partitioning.SubHyperplane[r2.Point] {
	return NewSubLine(h.(*Line), remaining)
}

// Segments returns the segments of the sub-line, oriented along the line.
func (s *SubLine) Segments() []Segment {
	line := s.Line()
	intervals := s.RemainingRegion().(*euclidean1d.IntervalsSet).Intervals()

	return lo.Map(intervals, func(i r1.Interval, _ int) Segment {
		return Segment{Start: line.ToSpace(i.Lo), End: line.ToSpace(i.Hi), Line: line}
	})
}

// Split splits the sub-line by h. Crossing lines give two sub-lines, either
// of which may be empty; a parallel h leaves the sub-line on one side.
func (s *SubLine) Split(h partitioning.Hyperplane[r2.Point]) partitioning.Split[r2.Point] {
	thisLine := s.Line()
	other := h.(*Line)
	tolerance := thisLine.Tolerance()

	crossing, ok := thisLine.Intersection(other)
	if !ok {
		// the lines are parallel
		global := other.Offset(thisLine.ToSpace(0))
		switch {
		case global < -tolerance:
			return partitioning.Split[r2.Point]{Minus: s}
		case global > tolerance:
			return partitioning.Split[r2.Point]{Plus: s}
		default:
			return partitioning.Split[r2.Point]{}
		}
	}

	// 1. The crossing point splits the abscissas
	direct := math.Sin(thisLine.Angle()-other.Angle()) < 0
	x := thisLine.ToSubSpace(crossing)
	subPlus := euclidean1d.NewOrientedPoint(x, !direct, tolerance).WholeHyperplane()
	subMinus := euclidean1d.NewOrientedPoint(x, direct, tolerance).WholeHyperplane()

	// 2. Split the remaining region and close each part on the crossing
	remaining := s.RemainingRegion()
	splitTree := remaining.Tree(false).Split(subMinus)
	leaf := partitioning.NewLeaf[float64]

	plusTree := leaf(false)
	if !remaining.IsEmptyNode(splitTree.Plus()) {
		plusTree = partitioning.NewNode(subPlus, leaf(false), splitTree.Plus(), nil)
	}
	minusTree := leaf(false)
	if !remaining.IsEmptyNode(splitTree.Minus()) {
		minusTree = partitioning.NewNode(subMinus, leaf(false), splitTree.Minus(), nil)
	}

	return partitioning.Split[r2.Point]{
		Plus:  NewSubLine(thisLine, remaining.BuildNew(plusTree)),
		Minus: NewSubLine(thisLine, remaining.BuildNew(minusTree)),
	}
}

// String implements fmt.Stringer.
func (s *SubLine) String() string {
	return fmt.Sprintf("sub-line of %v with %d segment(s)", s.Line(), len(s.Segments()))
}
