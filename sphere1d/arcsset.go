package sphere1d

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/bspgeom/partitioning"
)

// ErrInconsistentStateAt2PiWrapping is returned when the cells before the
// smallest cut and after the largest cut of a tree disagree.
var ErrInconsistentStateAt2PiWrapping = errors.New("sphere1d: inconsistent state at 2π wrapping")

// safeMin is the smallest normalized float64.
const safeMin = 0x1p-1022

type node = partitioning.BSPTree[s1.Angle]

// ArcsSet is a region of the unit circle made of disjoint arcs.
type ArcsSet struct {
	*partitioning.RegionBase[s1.Angle]
}

// NewWholeCircle returns the region covering the whole circle.
func NewWholeCircle(tolerance float64) (*ArcsSet, error) {
	return newArcsSet(partitioning.NewLeaf[s1.Angle](true), tolerance)
}

// NewArcsSet returns the single arc from lower to upper. When upper is
// smaller than lower the arc goes through the 0/2π wrapping point. Equal
// bounds or a length of at least 2π give the whole circle.
func NewArcsSet(lower, upper s1.Angle, tolerance float64) (*ArcsSet, error) {
	return newArcsSet(buildTree(lower.Radians(), upper.Radians(), tolerance), tolerance)
}

// NewArcsSetFromTree wraps tree after checking its consistency at the 0/2π
// wrapping point. The tree is not copied.
func NewArcsSetFromTree(tree *partitioning.BSPTree[s1.Angle], tolerance float64) (*ArcsSet, error) {
	s, err := newArcsSet(tree, tolerance)
	if err != nil {
		return nil, err
	}
	if err := s.check2PiConsistency(); err != nil {
		return nil, err
	}

	return s, nil
}

// NewArcsSetFromBoundary builds the set from limit angles having the inside
// on their minus side.
func NewArcsSetFromBoundary(boundary []partitioning.SubHyperplane[s1.Angle], tolerance float64) (*ArcsSet, error) {
	s := &ArcsSet{}
	base, err := partitioning.NewRegionFromBoundary(boundary, tolerance, s)
	if err != nil {
		return nil, fmt.Errorf("sphere1d: %w", err)
	}
	s.RegionBase = base
	if err := s.check2PiConsistency(); err != nil {
		return nil, err
	}

	return s, nil
}

func newArcsSet(tree *partitioning.BSPTree[s1.Angle], tolerance float64) (*ArcsSet, error) {
	s := &ArcsSet{}
	base, err := partitioning.NewRegionFromTree(tree, tolerance, s)
	if err != nil {
		return nil, fmt.Errorf("sphere1d: %w", err)
	}
	s.RegionBase = base

	return s, nil
}

// fromTree is used internally on trees produced by valid regions.
func fromTree(tree *partitioning.BSPTree[s1.Angle], tolerance float64) *ArcsSet {
	s, err := newArcsSet(tree, tolerance)
	if err != nil {
		panic(err)
	}

	return s
}

func buildTree(lower, upper, tolerance float64) *partitioning.BSPTree[s1.Angle] {
	leaf := partitioning.NewLeaf[s1.Angle]
	if lower > upper {
		upper += TwoPi
	}
	if lower == upper || upper-lower >= TwoPi {
		// the whole circle
		return leaf(true)
	}

	// 1. Bring the arc to [0, 2π) keeping its length
	normalizedLower := NormalizeAngle(lower, math.Pi)
	normalizedUpper := normalizedLower + (upper - lower)
	lowerCut := newLimitAngle(normalizedLower, false, tolerance).WholeHyperplane()

	// 2. The arc either stays below 2π or wraps around it
	if normalizedUpper <= TwoPi {
		upperCut := newLimitAngle(normalizedUpper, true, tolerance).WholeHyperplane()

		return partitioning.NewNode(lowerCut,
			leaf(false),
			partitioning.NewNode(upperCut, leaf(false), leaf(true), nil),
			nil)
	}

	upperCut := newLimitAngle(normalizedUpper-TwoPi, true, tolerance).WholeHyperplane()

	return partitioning.NewNode(lowerCut,
		partitioning.NewNode(upperCut, leaf(false), leaf(true), nil),
		leaf(true),
		nil)
}

// BuildNew wraps tree in a new ArcsSet with the same tolerance.
func (s *ArcsSet) BuildNew(tree *partitioning.BSPTree[s1.Angle]) partitioning.Region[s1.Angle] {
	return fromTree(tree, s.Tolerance())
}

// check2PiConsistency verifies that the cells around the wrapping point
// share the same status.
func (s *ArcsSet) check2PiConsistency() error {
	root := s.Tree(false)
	if root.IsLeaf() {
		return nil
	}

	before := getFirstLeaf(root).Attribute().(bool)
	after := getLastLeaf(root).Attribute().(bool)
	if before != after {
		partitioning.Logger().WithFields(logrus.Fields{
			"before": before,
			"after":  after,
		}).Warn("sphere1d: rejected tree")

		return ErrInconsistentStateAt2PiWrapping
	}

	return nil
}

// ComputeGeometricalProperties sets the total length and the length
// weighted mean angle of the arcs.
func (s *ArcsSet) ComputeGeometricalProperties() {
	nan := s1.Angle(math.NaN())
	root := s.Tree(false)
	if root.IsLeaf() {
		s.SetBarycenter(nan)
		if root.Attribute().(bool) {
			s.SetSize(TwoPi)
		} else {
			s.SetSize(0)
		}

		return
	}

	arcs := s.Arcs()
	size := lo.SumBy(arcs, func(a Arc) float64 { return a.Size() })
	sum := lo.SumBy(arcs, func(a Arc) float64 { return a.Size() * (a.lower + a.upper) })
	s.SetSize(size)
	switch {
	case size == TwoPi:
		s.SetBarycenter(nan)
	case size >= safeMin:
		s.SetBarycenter(s1.Angle(NormalizeAngle(sum/(2*size), math.Pi)))
	default:
		s.SetBarycenter(root.Cut().Hyperplane().(*LimitAngle).Location())
	}
}

// Arcs returns the arcs of the set in increasing start order. The last arc
// may wrap around 2π, its upper bound is then larger than 2π.
func (s *ArcsSet) Arcs() []Arc {
	root := s.Tree(false)
	tolerance := s.Tolerance()

	// 1. No arc start: all cells share the same status
	firstStart := getFirstArcStart(root)
	if firstStart == nil {
		if getFirstLeaf(root).Attribute().(bool) {
			return []Arc{{lower: 0, upper: TwoPi, middle: math.Pi, tolerance: tolerance}}
		}

		return nil
	}

	// 2. Walk the internal nodes in angular order
	var arcs []Arc
	for current := firstStart; current != nil; {
		start := current
		for start != nil && !isArcStart(start) {
			start = nextInternalNode(start)
		}
		if start == nil {
			break
		}

		end := start
		for end != nil && !isArcEnd(end) {
			end = nextInternalNode(end)
		}
		if end != nil {
			arcs = append(arcs, newArc(angle(start), angle(end), tolerance))
			current = end

			continue
		}

		// 3. The last arc wraps around 2π, its end is before the first start
		end = firstStart
		for end != nil && !isArcEnd(end) {
			end = previousInternalNode(end)
		}
		if end == nil {
			panic(fmt.Errorf("%w: unterminated arc", partitioning.ErrInternal))
		}
		arcs = append(arcs, newArc(angle(start), angle(end)+TwoPi, tolerance))
		current = nil
	}

	return arcs
}

func newArc(lower, upper, tolerance float64) Arc {
	return Arc{lower: lower, upper: upper, middle: 0.5 * (lower + upper), tolerance: tolerance}
}

func getFirstArcStart(root *node) *node {
	if root.IsLeaf() {
		return nil
	}

	n := getFirstLeaf(root).Parent()
	for n != nil && !isArcStart(n) {
		n = nextInternalNode(n)
	}

	return n
}

// isArcStart reports whether the cut has an outside cell before it and an
// inside cell after it.
func isArcStart(n *node) bool {
	return !leafBefore(n).Attribute().(bool) && leafAfter(n).Attribute().(bool)
}

// isArcEnd reports whether the cut has an inside cell before it and an
// outside cell after it.
func isArcEnd(n *node) bool {
	return leafBefore(n).Attribute().(bool) && !leafAfter(n).Attribute().(bool)
}

func getFirstLeaf(root *node) *node {
	if root.IsLeaf() {
		return root
	}

	var smallest *node
	for n := root; n != nil; n = previousInternalNode(n) {
		smallest = n
	}

	return leafBefore(smallest)
}

func getLastLeaf(root *node) *node {
	if root.IsLeaf() {
		return root
	}

	var largest *node
	for n := root; n != nil; n = nextInternalNode(n) {
		largest = n
	}

	return leafAfter(largest)
}

func nextInternalNode(n *node) *node {
	if !childAfter(n).IsLeaf() {
		return leafAfter(n).Parent()
	}

	for isAfterParent(n) {
		n = n.Parent()
	}

	return n.Parent()
}

func previousInternalNode(n *node) *node {
	if !childBefore(n).IsLeaf() {
		return leafBefore(n).Parent()
	}

	for isBeforeParent(n) {
		n = n.Parent()
	}

	return n.Parent()
}

func leafBefore(n *node) *node {
	n = childBefore(n)
	for !n.IsLeaf() {
		n = childAfter(n)
	}

	return n
}

func leafAfter(n *node) *node {
	n = childAfter(n)
	for !n.IsLeaf() {
		n = childBefore(n)
	}

	return n
}

func isBeforeParent(n *node) bool {
	parent := n.Parent()

	return parent != nil && n == childBefore(parent)
}

func isAfterParent(n *node) bool {
	parent := n.Parent()

	return parent != nil && n == childAfter(parent)
}

// childBefore returns the child holding the smaller angles.
func childBefore(n *node) *node {
	if isDirect(n) {
		return n.Minus()
	}

	return n.Plus()
}

// childAfter returns the child holding the larger angles.
func childAfter(n *node) *node {
	if isDirect(n) {
		return n.Plus()
	}

	return n.Minus()
}

func isDirect(n *node) bool {
	return n.Cut().Hyperplane().(*LimitAngle).IsDirect()
}

func angle(n *node) float64 {
	return n.Cut().Hyperplane().(*LimitAngle).location
}
