package partitioning

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// RegionFactory performs boolean set operations on regions.
//
// Operands are copied before being merged, so they stay usable. The result
// has the concrete type of the first operand.
type RegionFactory[P any] struct{}

// NewRegionFactory returns a factory for regions of points P.
func NewRegionFactory[P any]() RegionFactory[P] {
	return RegionFactory[P]{}
}

// BuildConvex builds the convex region on the minus side of every
// hyperplane. Unlike NewConvexRegion it checks the hyperplanes: opposite
// parallel hyperplanes closer than the tolerance give an empty region, a
// hyperplane missing the cell built so far gives ErrNotConvex.
func (f RegionFactory[P]) BuildConvex(hyperplanes ...Hyperplane[P]) (Region[P], error) {
	if len(hyperplanes) == 0 {
		return nil, ErrNoHyperplanes
	}

	// 1. The first hyperplane provides the concrete region type
	region := hyperplanes[0].WholeSpace()
	node := region.Tree(false)
	node.attribute = true

	// 2. Chop off parts of the space
	for _, h := range hyperplanes {
		if node.InsertCut(h) {
			node.attribute = nil
			node.plus.attribute = false
			node = node.minus
			node.attribute = true

			continue
		}

		// the hyperplane misses the current cell: it either extends a
		// previous one or does not bound the convex zone at all
		s := h.WholeHyperplane()
		for tree := node; tree.parent != nil && s != nil; tree = tree.parent {
			other := tree.parent.cut.Hyperplane()
			split := s.Split(other)
			switch split.Side() {
			case Hyper:
				if !h.SameOrientationAs(other) {
					// thinner than the tolerance
					return f.Complement(hyperplanes[0].WholeSpace()), nil
				}
			case Plus:
				return nil, fmt.Errorf("%w: %v", ErrNotConvex, h)
			default:
				s = split.Minus
			}
		}
	}

	return region, nil
}

// Union returns the union of two regions.
func (f RegionFactory[P]) Union(region1, region2 Region[P]) Region[P] {
	return f.combine("union", region1, region2, unionMerger[P]{})
}

// Intersection returns the intersection of two regions.
func (f RegionFactory[P]) Intersection(region1, region2 Region[P]) Region[P] {
	return f.combine("intersection", region1, region2, intersectionMerger[P]{})
}

// Xor returns the symmetric difference of two regions.
func (f RegionFactory[P]) Xor(region1, region2 Region[P]) Region[P] {
	return f.combine("xor", region1, region2, xorMerger[P]{})
}

// Difference returns the points of region1 that are not in region2.
func (f RegionFactory[P]) Difference(region1, region2 Region[P]) Region[P] {
	merger := &differenceMerger[P]{region1: region1.Copy(), region2: region2.Copy()}

	return f.combine("difference", region1, region2, merger)
}

// Complement returns the complement of region.
func (f RegionFactory[P]) Complement(region Region[P]) Region[P] {
	return region.BuildNew(recurseComplement(region.Tree(false)))
}

func (f RegionFactory[P]) combine(op string, region1, region2 Region[P], merger LeafMerger[P]) Region[P] {
	t1 := region1.Tree(false).Copy()
	t2 := region2.Tree(false).Copy()
	tree := t1.Merge(t2, merger)

	// internal attributes of reused nodes are stale
	tree.Visit(SubPlusMinus, func(node *BSPTree[P]) { node.attribute = nil }, nil)

	logger.WithFields(logrus.Fields{
		"op":    op,
		"depth": treeDepth(tree),
	}).Debug("partitioning: regions combined")

	return region1.BuildNew(tree)
}

// recurseComplement returns a copy of node with inside and outside swapped.
func recurseComplement[P any](node *BSPTree[P]) *BSPTree[P] {
	if node.cut == nil {
		return NewLeaf[P](!leafInside(node))
	}

	var attribute any
	if ba, ok := node.attribute.(*BoundaryAttribute[P]); ok {
		swapped := &BoundaryAttribute[P]{}
		if ba.PlusInside != nil {
			swapped.PlusOutside = ba.PlusInside.Copy()
		}
		if ba.PlusOutside != nil {
			swapped.PlusInside = ba.PlusOutside.Copy()
		}
		attribute = swapped
	}

	return NewNode(node.cut.Copy(), recurseComplement(node.plus), recurseComplement(node.minus), attribute)
}

type unionMerger[P any] struct{}

func (unionMerger[P]) Merge(leaf, tree, parentTree *BSPTree[P], isPlusChild, _ bool) *BSPTree[P] {
	if leafInside(leaf) {
		// an inside cell absorbs the other tree
		leaf.InsertInTree(parentTree, isPlusChild, vanishingToLeaf[P](true))

		return leaf
	}
	tree.InsertInTree(parentTree, isPlusChild, vanishingToLeaf[P](false))

	return tree
}

type intersectionMerger[P any] struct{}

func (intersectionMerger[P]) Merge(leaf, tree, parentTree *BSPTree[P], isPlusChild, _ bool) *BSPTree[P] {
	if leafInside(leaf) {
		tree.InsertInTree(parentTree, isPlusChild, vanishingToLeaf[P](true))

		return tree
	}
	// an outside cell absorbs the other tree
	leaf.InsertInTree(parentTree, isPlusChild, vanishingToLeaf[P](false))

	return leaf
}

type xorMerger[P any] struct{}

func (xorMerger[P]) Merge(leaf, tree, parentTree *BSPTree[P], isPlusChild, _ bool) *BSPTree[P] {
	t := tree
	if leafInside(leaf) {
		t = recurseComplement(t)
	}
	t.InsertInTree(parentTree, isPlusChild, vanishingToLeaf[P](true))

	return t
}

type differenceMerger[P any] struct {
	region1 Region[P]
	region2 Region[P]
}

func (m *differenceMerger[P]) Merge(leaf, tree, parentTree *BSPTree[P], isPlusChild, leafFromInstance bool) *BSPTree[P] {
	if leafInside(leaf) {
		// inside cell: keep the complement of the second operand part
		arg := leaf
		if leafFromInstance {
			arg = tree
		}
		argTree := recurseComplement(arg)
		argTree.InsertInTree(parentTree, isPlusChild, m)

		return argTree
	}

	// outside cell: keep the first operand part
	instanceTree := tree
	if leafFromInstance {
		instanceTree = leaf
	}
	instanceTree.InsertInTree(parentTree, isPlusChild, m)

	return instanceTree
}

// FixNode classifies a representative point of the degenerate cell.
func (m *differenceMerger[P]) FixNode(node *BSPTree[P]) *BSPTree[P] {
	cell := node.PruneAroundConvexCell(true, false, nil)
	p := m.region1.BuildNew(cell).Barycenter()

	return NewLeaf[P](m.region1.CheckPoint(p) == Inside && m.region2.CheckPoint(p) == Outside)
}

// vanishingToLeaf replaces a vanished cut by a leaf: the common attribute of
// its two leaf children if they agree, the stored marker otherwise.
type vanishingToLeaf[P any] bool

func (v vanishingToLeaf[P]) FixNode(node *BSPTree[P]) *BSPTree[P] {
	if node.plus.cut == nil && node.minus.cut == nil && node.plus.attribute == node.minus.attribute {
		return NewLeaf[P](node.plus.attribute)
	}

	return NewLeaf[P](bool(v))
}
