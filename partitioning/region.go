package partitioning

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// Geometry is implemented by the concrete region of a space. RegionBase
// calls it to build regions of the right type and to compute the measures
// that depend on the space.
type Geometry[P any] interface {
	// BuildNew creates a region of the concrete type from tree.
	BuildNew(tree *BSPTree[P]) Region[P]

	// ComputeGeometricalProperties must call SetSize and SetBarycenter on
	// the region base.
	ComputeGeometricalProperties()
}

// RegionBase implements the space independent part of Region. Concrete
// regions embed a *RegionBase and provide the Geometry hooks.
type RegionBase[P any] struct {
	tree       *BSPTree[P]
	tolerance  float64
	size       float64
	barycenter P
	computed   bool
	geometry   Geometry[P]
}

// NewWholeRegion builds the base of a region covering the whole space.
func NewWholeRegion[P any](tolerance float64, geometry Geometry[P]) (*RegionBase[P], error) {
	return NewRegionFromTree(NewLeaf[P](true), tolerance, geometry)
}

// NewRegionFromTree builds a region base around tree. The tree is used
// directly, not copied. Its leaves must carry bool attributes.
func NewRegionFromTree[P any](tree *BSPTree[P], tolerance float64, geometry Geometry[P]) (*RegionBase[P], error) {
	if tolerance < 0 {
		return nil, fmt.Errorf("%w: got %g", ErrNegativeTolerance, tolerance)
	}

	return &RegionBase[P]{tree: tree, tolerance: tolerance, geometry: geometry}, nil
}

// NewRegionFromBoundary builds a region from its boundary. Each element must
// have the interior of the region on its minus side. An empty boundary gives
// the whole space.
//
// The elements are inserted largest first; elements of equal size are all
// kept, in input order.
func NewRegionFromBoundary[P any](boundary []SubHyperplane[P], tolerance float64, geometry Geometry[P]) (*RegionBase[P], error) {
	if tolerance < 0 {
		return nil, fmt.Errorf("%w: got %g", ErrNegativeTolerance, tolerance)
	}

	if len(boundary) == 0 {
		return &RegionBase[P]{tree: NewLeaf[P](true), tolerance: tolerance, geometry: geometry}, nil
	}

	// 1. Sort boundary elements in decreasing size order
	ordered := make([]SubHyperplane[P], len(boundary))
	copy(ordered, boundary)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Size() > ordered[j].Size()
	})

	// 2. Build the tree top-down
	tree := NewBSPTree[P]()
	insertCuts(tree, ordered)

	// 3. Minus leaves are inside, plus leaves outside
	tree.Visit(PlusSubMinus, nil, func(node *BSPTree[P]) {
		node.attribute = node.parent == nil || node == node.parent.minus
	})

	logger.WithFields(logrus.Fields{
		"boundary": len(boundary),
		"depth":    treeDepth(tree),
	}).Debug("partitioning: region built from boundary")

	return &RegionBase[P]{tree: tree, tolerance: tolerance, geometry: geometry}, nil
}

// NewConvexRegion builds the convex region lying on the minus side of every
// hyperplane. Hyperplanes that do not cut the current cell are skipped.
func NewConvexRegion[P any](hyperplanes []Hyperplane[P], tolerance float64, geometry Geometry[P]) (*RegionBase[P], error) {
	if tolerance < 0 {
		return nil, fmt.Errorf("%w: got %g", ErrNegativeTolerance, tolerance)
	}
	if len(hyperplanes) == 0 {
		return nil, ErrNoHyperplanes
	}

	tree := NewLeaf[P](true)
	node := tree
	for _, h := range hyperplanes {
		if h == nil {
			return nil, fmt.Errorf("%w: nil hyperplane in list", ErrNoHyperplanes)
		}
		if node.InsertCut(h) {
			node.attribute = nil
			node.plus.attribute = false
			node = node.minus
			node.attribute = true
		}
	}

	return &RegionBase[P]{tree: tree, tolerance: tolerance, geometry: geometry}, nil
}

// insertCuts recursively inserts the boundary elements below node.
func insertCuts[P any](node *BSPTree[P], boundary []SubHyperplane[P]) {
	// 1. Build the current level with the first insertable element
	var inserted Hyperplane[P]
	i := 0
	for inserted == nil && i < len(boundary) {
		inserted = boundary[i].Hyperplane()
		i++
		if !node.InsertCut(inserted.Copy()) {
			inserted = nil
		}
	}
	if i == len(boundary) {
		return
	}

	// 2. Distribute the remaining elements in the two subtrees
	var plusList, minusList []SubHyperplane[P]
	for _, other := range boundary[i:] {
		split := other.Split(inserted)
		switch split.Side() {
		case Plus:
			plusList = append(plusList, other)
		case Minus:
			minusList = append(minusList, other)
		case Both:
			plusList = append(plusList, split.Plus)
			minusList = append(minusList, split.Minus)
		default:
			// elements on the cut hyperplane are already represented
		}
	}

	// 3. Recurse through lower levels
	insertCuts(node.plus, plusList)
	insertCuts(node.minus, minusList)
}

func treeDepth[P any](node *BSPTree[P]) int {
	if node.cut == nil {
		return 0
	}

	return 1 + max(treeDepth(node.plus), treeDepth(node.minus))
}

// BuildNew creates a region of the concrete type from tree.
func (r *RegionBase[P]) BuildNew(tree *BSPTree[P]) Region[P] {
	return r.geometry.BuildNew(tree)
}

// Copy returns a deep copy of the region.
func (r *RegionBase[P]) Copy() Region[P] {
	return r.geometry.BuildNew(r.tree.Copy())
}

// Tolerance returns the tolerance below which points are on a cut.
func (r *RegionBase[P]) Tolerance() float64 { return r.tolerance }

// IsEmpty reports whether the region contains no points.
func (r *RegionBase[P]) IsEmpty() bool { return r.IsEmptyNode(r.tree) }

// IsEmptyNode reports whether every leaf below node is outside.
func (r *RegionBase[P]) IsEmptyNode(node *BSPTree[P]) bool {
	if node.cut == nil {
		return !leafInside(node)
	}

	return r.IsEmptyNode(node.minus) && r.IsEmptyNode(node.plus)
}

// IsFull reports whether the region covers the whole space.
func (r *RegionBase[P]) IsFull() bool { return r.IsFullNode(r.tree) }

// IsFullNode reports whether every leaf below node is inside.
func (r *RegionBase[P]) IsFullNode(node *BSPTree[P]) bool {
	if node.cut == nil {
		return leafInside(node)
	}

	return r.IsFullNode(node.minus) && r.IsFullNode(node.plus)
}

// Contains reports whether other lies entirely inside the region.
func (r *RegionBase[P]) Contains(other Region[P]) bool {
	return NewRegionFactory[P]().Difference(other, r.geometry.BuildNew(r.tree)).IsEmpty()
}

// CheckPoint classifies point with respect to the region.
func (r *RegionBase[P]) CheckPoint(point P) Location {
	return r.CheckPointNode(r.tree, point)
}

// CheckPointNode classifies point with respect to the subtree rooted at node.
//
// A point on a cut is classified against both sides of the cut: it is on the
// boundary only when the two sides disagree.
func (r *RegionBase[P]) CheckPointNode(node *BSPTree[P], point P) Location {
	cell := node.Cell(point, r.tolerance)
	if cell.cut == nil {
		if leafInside(cell) {
			return Inside
		}

		return Outside
	}

	minusCode := r.CheckPointNode(cell.minus, point)
	plusCode := r.CheckPointNode(cell.plus, point)
	if minusCode == plusCode {
		return minusCode
	}

	return Boundary
}

// Tree returns the region tree. With includeBoundaryAttributes, internal
// nodes get their *BoundaryAttribute computed first if missing.
func (r *RegionBase[P]) Tree(includeBoundaryAttributes bool) *BSPTree[P] {
	if includeBoundaryAttributes && r.tree.cut != nil && r.tree.attribute == nil {
		r.tree.Visit(PlusMinusSub, buildBoundaryAttribute[P], nil)
	}

	return r.tree
}

// BoundarySize returns the measure of the region boundary.
func (r *RegionBase[P]) BoundarySize() float64 {
	size := 0.0
	r.Tree(true).Visit(MinusSubPlus, func(node *BSPTree[P]) {
		attribute, ok := node.attribute.(*BoundaryAttribute[P])
		if !ok {
			return
		}
		if attribute.PlusOutside != nil {
			size += attribute.PlusOutside.Size()
		}
		if attribute.PlusInside != nil {
			size += attribute.PlusInside.Size()
		}
	}, nil)

	return size
}

// Size returns the measure of the region, computing it on first use.
func (r *RegionBase[P]) Size() float64 {
	r.ensureGeometry()

	return r.size
}

// Barycenter returns the barycenter of the region, computing it on first use.
func (r *RegionBase[P]) Barycenter() P {
	r.ensureGeometry()

	return r.barycenter
}

func (r *RegionBase[P]) ensureGeometry() {
	if !r.computed {
		r.geometry.ComputeGeometricalProperties()
		r.computed = true
	}
}

// SetSize records the region measure. Used by Geometry implementations.
func (r *RegionBase[P]) SetSize(size float64) { r.size = size }

// SetBarycenter records the region barycenter. Used by Geometry implementations.
func (r *RegionBase[P]) SetBarycenter(barycenter P) {
	r.barycenter = barycenter
	r.computed = true
}

// Side classifies the whole region with respect to h: Plus or Minus when
// every inside cell is on that side, Both when inside cells exist on both
// sides, Hyper when the region is empty or flat on h.
func (r *RegionBase[P]) Side(h Hyperplane[P]) Side {
	var s sides
	r.recurseSides(r.tree, h.WholeHyperplane(), &s)

	switch {
	case s.plus && s.minus:
		return Both
	case s.plus:
		return Plus
	case s.minus:
		return Minus
	default:
		return Hyper
	}
}

type sides struct {
	plus  bool
	minus bool
}

func (s *sides) done() bool { return s.plus && s.minus }

func (r *RegionBase[P]) recurseSides(node *BSPTree[P], sub SubHyperplane[P], s *sides) {
	// 1. Inside leaf cells extend across the hyperplane
	if node.cut == nil {
		if leafInside(node) {
			s.plus = true
			s.minus = true
		}

		return
	}

	hyperplane := node.cut.Hyperplane()
	switch sub.Side(hyperplane) {
	case Plus:
		// 2. sub is entirely in the plus subtree, the minus one is on a
		//    single side of it
		if !r.IsEmptyNode(node.minus) {
			if node.cut.Side(sub.Hyperplane()) == Plus {
				s.plus = true
			} else {
				s.minus = true
			}
		}
		if !s.done() {
			r.recurseSides(node.plus, sub, s)
		}

	case Minus:
		// 3. Symmetric case
		if !r.IsEmptyNode(node.plus) {
			if node.cut.Side(sub.Hyperplane()) == Plus {
				s.plus = true
			} else {
				s.minus = true
			}
		}
		if !s.done() {
			r.recurseSides(node.minus, sub, s)
		}

	case Both:
		// 4. sub extends in both subtrees
		split := sub.Split(hyperplane)
		r.recurseSides(node.plus, split.Plus, s)
		if !s.done() {
			r.recurseSides(node.minus, split.Minus, s)
		}

	default:
		// 5. sub and the cut share the same hyperplane
		plusNonEmpty := node.plus.cut != nil || leafInside(node.plus)
		minusNonEmpty := node.minus.cut != nil || leafInside(node.minus)
		if node.cut.Hyperplane().SameOrientationAs(sub.Hyperplane()) {
			s.plus = s.plus || plusNonEmpty
			s.minus = s.minus || minusNonEmpty
		} else {
			s.minus = s.minus || plusNonEmpty
			s.plus = s.plus || minusNonEmpty
		}
	}
}

// Intersection returns the part of sub lying inside the region, nil when
// there is none.
func (r *RegionBase[P]) Intersection(sub SubHyperplane[P]) SubHyperplane[P] {
	return recurseIntersection(r.tree, sub)
}

func recurseIntersection[P any](node *BSPTree[P], sub SubHyperplane[P]) SubHyperplane[P] {
	if sub == nil {
		return nil
	}
	if node.cut == nil {
		if leafInside(node) {
			return sub.Copy()
		}

		return nil
	}

	hyperplane := node.cut.Hyperplane()
	split := sub.Split(hyperplane)
	switch split.Side() {
	case Both:
		plus := recurseIntersection(node.plus, split.Plus)
		minus := recurseIntersection(node.minus, split.Minus)
		switch {
		case plus == nil:
			return minus
		case minus == nil:
			return plus
		default:
			return plus.Reunite(minus)
		}
	case Plus:
		return recurseIntersection(node.plus, sub)
	case Minus:
		return recurseIntersection(node.minus, sub)
	default:
		return recurseIntersection(node.plus, recurseIntersection(node.minus, sub))
	}
}

// leafInside reads the bool marker of a region leaf.
func leafInside[P any](leaf *BSPTree[P]) bool {
	inside, ok := leaf.attribute.(bool)
	if !ok {
		internalError("region leaf carries %T attribute, want bool", leaf.attribute)
	}

	return inside
}
