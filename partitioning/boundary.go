package partitioning

// BoundaryAttribute records which parts of an internal node cut belong to
// the region boundary.
//
// PlusOutside is the part with the outside on its plus side and the inside
// on its minus side; PlusInside is the converse. Either may be nil. Parts of
// the cut with the same status on both sides are not boundary.
type BoundaryAttribute[P any] struct {
	PlusOutside SubHyperplane[P]
	PlusInside  SubHyperplane[P]
}

// characterization splits a sub-hyperplane into the parts touching inside
// and outside leaf cells of a subtree.
type characterization[P any] struct {
	outsideTouching SubHyperplane[P]
	insideTouching  SubHyperplane[P]
}

func characterize[P any](node *BSPTree[P], sub SubHyperplane[P]) *characterization[P] {
	c := &characterization[P]{}
	c.recurse(node, sub)

	return c
}

func (c *characterization[P]) recurse(node *BSPTree[P], sub SubHyperplane[P]) {
	if node.cut == nil {
		if leafInside(node) {
			c.insideTouching = reunite(c.insideTouching, sub)
		} else {
			c.outsideTouching = reunite(c.outsideTouching, sub)
		}

		return
	}

	split := sub.Split(node.cut.Hyperplane())
	switch side := split.Side(); side {
	case Plus:
		c.recurse(node.plus, sub)
	case Minus:
		c.recurse(node.minus, sub)
	case Both:
		c.recurse(node.plus, split.Plus)
		c.recurse(node.minus, split.Minus)
	default:
		// a descendant cut cannot share the hyperplane of an ancestor
		internalError("characterization reached side %v", side)
	}
}

func reunite[P any](acc, sub SubHyperplane[P]) SubHyperplane[P] {
	if acc == nil {
		return sub
	}

	return acc.Reunite(sub)
}

func (c *characterization[P]) touchOutside() bool {
	return c.outsideTouching != nil && !c.outsideTouching.IsEmpty()
}

func (c *characterization[P]) touchInside() bool {
	return c.insideTouching != nil && !c.insideTouching.IsEmpty()
}

// buildBoundaryAttribute computes the boundary attribute of an internal
// node. Children attributes are not needed, any visit order works.
func buildBoundaryAttribute[P any](node *BSPTree[P]) {
	var plusOutside, plusInside SubHyperplane[P]

	// 1. Characterize the cut with respect to the plus subtree
	plusChar := characterize(node.plus, node.cut.Copy())

	// 2. Parts with outside on the plus side and inside on the minus side
	if plusChar.touchOutside() {
		minusChar := characterize(node.minus, plusChar.outsideTouching)
		if minusChar.touchInside() {
			plusOutside = minusChar.insideTouching
		}
	}

	// 3. Parts with inside on the plus side and outside on the minus side
	if plusChar.touchInside() {
		minusChar := characterize(node.minus, plusChar.insideTouching)
		if minusChar.touchOutside() {
			plusInside = minusChar.outsideTouching
		}
	}

	node.attribute = &BoundaryAttribute[P]{PlusOutside: plusOutside, PlusInside: plusInside}
}
