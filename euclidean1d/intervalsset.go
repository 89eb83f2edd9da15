package euclidean1d

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r1"
	"github.com/samber/lo"

	"github.com/katalvlaran/bspgeom/partitioning"
)

// ErrEndpointsNotAnInterval is returned when lower > upper.
var ErrEndpointsNotAnInterval = errors.New("euclidean1d: endpoints do not form an interval")

// safeMin is the smallest normalized float64.
const safeMin = 0x1p-1022

// IntervalsSet is a region of the real line made of disjoint intervals.
type IntervalsSet struct {
	*partitioning.RegionBase[float64]
}

// NewWholeLine returns the region covering the whole real line.
func NewWholeLine(tolerance float64) (*IntervalsSet, error) {
	return NewIntervalsSetFromTree(partitioning.NewLeaf[float64](true), tolerance)
}

// NewIntervalsSet returns the single interval [lower, upper]. Either bound
// may be infinite.
func NewIntervalsSet(lower, upper, tolerance float64) (*IntervalsSet, error) {
	if lower > upper {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrEndpointsNotAnInterval, lower, upper)
	}

	return NewIntervalsSetFromTree(buildTree(lower, upper, tolerance), tolerance)
}

// NewIntervalsSetFromTree wraps tree, whose cuts must be oriented points and
// leaves bool markers. The tree is not copied.
func NewIntervalsSetFromTree(tree *partitioning.BSPTree[float64], tolerance float64) (*IntervalsSet, error) {
	s := &IntervalsSet{}
	base, err := partitioning.NewRegionFromTree(tree, tolerance, s)
	if err != nil {
		return nil, fmt.Errorf("euclidean1d: %w", err)
	}
	s.RegionBase = base

	return s, nil
}

// NewIntervalsSetFromBoundary builds the set from its boundary points, each
// having the inside on its minus side.
func NewIntervalsSetFromBoundary(boundary []partitioning.SubHyperplane[float64], tolerance float64) (*IntervalsSet, error) {
	s := &IntervalsSet{}
	base, err := partitioning.NewRegionFromBoundary(boundary, tolerance, s)
	if err != nil {
		return nil, fmt.Errorf("euclidean1d: %w", err)
	}
	s.RegionBase = base

	return s, nil
}

// fromTree is used internally with already validated tolerances.
func fromTree(tree *partitioning.BSPTree[float64], tolerance float64) *IntervalsSet {
	s, err := NewIntervalsSetFromTree(tree, tolerance)
	if err != nil {
		panic(err)
	}

	return s
}

func buildTree(lower, upper, tolerance float64) *partitioning.BSPTree[float64] {
	leaf := partitioning.NewLeaf[float64]
	if math.IsInf(lower, -1) {
		if math.IsInf(upper, 1) {
			// the whole real line
			return leaf(true)
		}

		// open towards negative infinity
		upperCut := NewOrientedPoint(upper, true, tolerance).WholeHyperplane()

		return partitioning.NewNode(upperCut, leaf(false), leaf(true), nil)
	}

	lowerCut := NewOrientedPoint(lower, false, tolerance).WholeHyperplane()
	if math.IsInf(upper, 1) {
		// open towards positive infinity
		return partitioning.NewNode(lowerCut, leaf(false), leaf(true), nil)
	}

	upperCut := NewOrientedPoint(upper, true, tolerance).WholeHyperplane()

	return partitioning.NewNode(lowerCut,
		leaf(false),
		partitioning.NewNode(upperCut, leaf(false), leaf(true), nil),
		nil)
}

// BuildNew wraps tree in a new IntervalsSet with the same tolerance.
func (s *IntervalsSet) BuildNew(tree *partitioning.BSPTree[float64]) partitioning.Region[float64] {
	return fromTree(tree, s.Tolerance())
}

// ComputeGeometricalProperties sets the total length and the length
// weighted center of the intervals.
func (s *IntervalsSet) ComputeGeometricalProperties() {
	root := s.Tree(false)
	if root.IsLeaf() {
		s.SetBarycenter(math.NaN())
		if s.IsFull() {
			s.SetSize(math.Inf(1))
		} else {
			s.SetSize(0)
		}

		return
	}

	intervals := s.Intervals()
	size := lo.SumBy(intervals, func(i r1.Interval) float64 { return i.Length() })
	sum := lo.SumBy(intervals, func(i r1.Interval) float64 { return i.Length() * i.Center() })
	s.SetSize(size)
	switch {
	case math.IsInf(size, 0):
		s.SetBarycenter(math.NaN())
	case size >= safeMin:
		s.SetBarycenter(sum / size)
	default:
		s.SetBarycenter(root.Cut().Hyperplane().(*OrientedPoint).location)
	}
}

// Intervals returns the intervals of the set in increasing order. Adjacent
// inside cells separated by a non-boundary cut are merged.
func (s *IntervalsSet) Intervals() []r1.Interval {
	var list []r1.Interval
	s.recurseList(s.Tree(false), &list, math.Inf(-1), math.Inf(1))

	return list
}

func (s *IntervalsSet) recurseList(node *partitioning.BSPTree[float64], list *[]r1.Interval, lower, upper float64) {
	if node.IsLeaf() {
		if node.Attribute().(bool) {
			*list = append(*list, r1.Interval{Lo: lower, Hi: upper})
		}

		return
	}

	op := node.Cut().Hyperplane().(*OrientedPoint)
	x := op.location

	// explore in increasing abscissa order
	low, high := node.Plus(), node.Minus()
	if op.direct {
		low, high = node.Minus(), node.Plus()
	}

	s.recurseList(low, list, lower, x)
	if s.CheckPointNode(low, x) == partitioning.Inside && s.CheckPointNode(high, x) == partitioning.Inside {
		// the cut is not a boundary: merge with the first high interval
		last := (*list)[len(*list)-1]
		*list = (*list)[:len(*list)-1]
		x = last.Lo
	}
	s.recurseList(high, list, x, upper)
}

// Inf returns the lowest point of the set, +Inf when empty.
func (s *IntervalsSet) Inf() float64 {
	intervals := s.Intervals()
	if len(intervals) == 0 {
		return math.Inf(1)
	}

	return intervals[0].Lo
}

// Sup returns the highest point of the set, -Inf when empty.
func (s *IntervalsSet) Sup() float64 {
	intervals := s.Intervals()
	if len(intervals) == 0 {
		return math.Inf(-1)
	}

	return intervals[len(intervals)-1].Hi
}
