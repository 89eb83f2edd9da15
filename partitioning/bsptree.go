package partitioning

// BSPTree is a node of a binary space partitioning tree.
//
// An internal node owns a cut sub-hyperplane and exactly two children: plus
// (the positive side of the cut hyperplane) and minus. A leaf has no cut and
// no children. The parent link is maintained by every mutator and is nil for
// the root.
//
// The attribute is opaque to the tree. Region trees store bool markers on
// leaves and *BoundaryAttribute on internal nodes. Attributes are compared
// with == by Condense, so they must be comparable.
//
// Trees are not safe for concurrent mutation: Merge consumes both operands
// and InsertInTree rewires nodes in place. Use Copy to isolate an operand.
type BSPTree[P any] struct {
	cut       SubHyperplane[P]
	plus      *BSPTree[P]
	minus     *BSPTree[P]
	parent    *BSPTree[P]
	attribute any
}

// LeafMerger implements the set-operation specific part of Merge, invoked
// when at least one of the merged nodes is a leaf.
//
// leaf is the leaf node, tree the other node (leaf or not). parentTree is the
// node the result must be attached to (nil at top level) on its plus side if
// isPlusChild. leafFromInstance tells whether leaf came from the tree Merge
// was called on. The returned node must already be attached to parentTree.
type LeafMerger[P any] interface {
	Merge(leaf, tree, parentTree *BSPTree[P], isPlusChild, leafFromInstance bool) *BSPTree[P]
}

// LeafMergerFunc adapts a function to the LeafMerger interface.
type LeafMergerFunc[P any] func(leaf, tree, parentTree *BSPTree[P], isPlusChild, leafFromInstance bool) *BSPTree[P]

// Merge calls f.
func (f LeafMergerFunc[P]) Merge(leaf, tree, parentTree *BSPTree[P], isPlusChild, leafFromInstance bool) *BSPTree[P] {
	return f(leaf, tree, parentTree, isPlusChild, leafFromInstance)
}

// VanishingCutHandler replaces a node whose cut vanished while being fitted
// into a smaller cell. The returned node content replaces node's content.
type VanishingCutHandler[P any] interface {
	FixNode(node *BSPTree[P]) *BSPTree[P]
}

// NewBSPTree creates a single leaf with a nil attribute.
func NewBSPTree[P any]() *BSPTree[P] {
	return &BSPTree[P]{}
}

// NewLeaf creates a single leaf carrying attribute.
func NewLeaf[P any](attribute any) *BSPTree[P] {
	return &BSPTree[P]{attribute: attribute}
}

// NewNode creates an internal node from its cut and children and links the
// children to it. The cut is used as is: it is not fitted to any cell.
func NewNode[P any](cut SubHyperplane[P], plus, minus *BSPTree[P], attribute any) *BSPTree[P] {
	t := &BSPTree[P]{cut: cut, plus: plus, minus: minus, attribute: attribute}
	plus.parent = t
	minus.parent = t

	return t
}

// Cut returns the cut sub-hyperplane, nil for a leaf.
func (t *BSPTree[P]) Cut() SubHyperplane[P] { return t.cut }

// Plus returns the subtree on the plus side of the cut, nil for a leaf.
func (t *BSPTree[P]) Plus() *BSPTree[P] { return t.plus }

// Minus returns the subtree on the minus side of the cut, nil for a leaf.
func (t *BSPTree[P]) Minus() *BSPTree[P] { return t.minus }

// Parent returns the parent node, nil for the root.
func (t *BSPTree[P]) Parent() *BSPTree[P] { return t.parent }

// Attribute returns the attribute attached to the node.
func (t *BSPTree[P]) Attribute() any { return t.attribute }

// SetAttribute attaches attribute to the node.
func (t *BSPTree[P]) SetAttribute(attribute any) { t.attribute = attribute }

// IsLeaf reports whether the node has no cut.
func (t *BSPTree[P]) IsLeaf() bool { return t.cut == nil }

// InsertCut inserts h as the cut of the node, clipped to the node cell.
//
// If the clipped sub-hyperplane is empty the node becomes a leaf and false is
// returned. Otherwise the node gets two fresh leaf children and true is
// returned. Any former subtree is dropped. The node attribute is left alone.
func (t *BSPTree[P]) InsertCut(h Hyperplane[P]) bool {
	// 1. Detach former children
	if t.cut != nil {
		t.plus.parent = nil
		t.minus.parent = nil
	}

	// 2. Clip the whole hyperplane to the cell
	chopped := t.fitToCell(h.WholeHyperplane())
	if chopped == nil || chopped.IsEmpty() {
		t.cut = nil
		t.plus = nil
		t.minus = nil

		return false
	}

	// 3. Become internal with empty leaves
	t.cut = chopped
	t.plus = &BSPTree[P]{parent: t}
	t.minus = &BSPTree[P]{parent: t}

	return true
}

// Copy returns a deep copy of the subtree rooted at t. Cut sub-hyperplanes
// are copied; attributes are shared. The copy root has no parent.
func (t *BSPTree[P]) Copy() *BSPTree[P] {
	if t.cut == nil {
		return NewLeaf[P](t.attribute)
	}

	return NewNode(t.cut.Copy(), t.plus.Copy(), t.minus.Copy(), t.attribute)
}

// Visit walks the subtree rooted at t. Internal nodes are visited in the
// given order relative to their subtrees; onInternal and onLeaf may be nil.
func (t *BSPTree[P]) Visit(order Order, onInternal, onLeaf func(node *BSPTree[P])) {
	t.VisitFunc(func(*BSPTree[P]) Order { return order }, onInternal, onLeaf)
}

// VisitFunc is Visit with an order chosen per internal node.
func (t *BSPTree[P]) VisitFunc(order func(node *BSPTree[P]) Order, onInternal, onLeaf func(node *BSPTree[P])) {
	if t.cut == nil {
		if onLeaf != nil {
			onLeaf(t)
		}

		return
	}

	self := func() {
		if onInternal != nil {
			onInternal(t)
		}
	}
	plus := func() { t.plus.VisitFunc(order, onInternal, onLeaf) }
	minus := func() { t.minus.VisitFunc(order, onInternal, onLeaf) }

	var steps [3]func()
	switch o := order(t); o {
	case PlusMinusSub:
		steps = [3]func(){plus, minus, self}
	case PlusSubMinus:
		steps = [3]func(){plus, self, minus}
	case MinusPlusSub:
		steps = [3]func(){minus, plus, self}
	case MinusSubPlus:
		steps = [3]func(){minus, self, plus}
	case SubPlusMinus:
		steps = [3]func(){self, plus, minus}
	case SubMinusPlus:
		steps = [3]func(){self, minus, plus}
	default:
		internalError("unknown visit order %d", int(o))
	}
	for _, step := range steps {
		step()
	}
}

// fitToCell clips sub to the convex cell of the node by splitting it with
// every ancestor cut, keeping the side the node lies on.
func (t *BSPTree[P]) fitToCell(sub SubHyperplane[P]) SubHyperplane[P] {
	s := sub
	for node := t; node.parent != nil && s != nil; node = node.parent {
		split := s.Split(node.parent.cut.Hyperplane())
		if node == node.parent.plus {
			s = split.Plus
		} else {
			s = split.Minus
		}
	}

	return s
}

// Cell returns the deepest node whose cell contains point.
//
// When point lies within tolerance of a cut, the internal node owning that
// cut is returned so callers can detect boundary points. Otherwise the
// search ends at a leaf.
func (t *BSPTree[P]) Cell(point P, tolerance float64) *BSPTree[P] {
	node := t
	for node.cut != nil {
		offset := node.cut.Hyperplane().Offset(point)
		switch {
		case offset > -tolerance && offset < tolerance:
			return node
		case offset <= 0:
			node = node.minus
		default:
			node = node.plus
		}
	}

	return node
}

// CloseCuts returns the internal nodes whose cut hyperplane is within
// maxOffset of point, in depth-first plus-before-minus order.
func (t *BSPTree[P]) CloseCuts(point P, maxOffset float64) []*BSPTree[P] {
	var close []*BSPTree[P]
	t.recurseCloseCuts(point, maxOffset, &close)

	return close
}

func (t *BSPTree[P]) recurseCloseCuts(point P, maxOffset float64, close *[]*BSPTree[P]) {
	if t.cut == nil {
		return
	}
	offset := t.cut.Hyperplane().Offset(point)
	switch {
	case offset < -maxOffset:
		t.minus.recurseCloseCuts(point, maxOffset, close)
	case offset > maxOffset:
		t.plus.recurseCloseCuts(point, maxOffset, close)
	default:
		*close = append(*close, t)
		t.plus.recurseCloseCuts(point, maxOffset, close)
		t.minus.recurseCloseCuts(point, maxOffset, close)
	}
}

// Condense collapses the node into a leaf when both children are leaves
// carrying the same attribute. It is purely local.
func (t *BSPTree[P]) Condense() {
	if t.cut == nil || t.plus.cut != nil || t.minus.cut != nil {
		return
	}
	if t.plus.attribute != t.minus.attribute {
		return
	}
	t.attribute = t.plus.attribute
	t.cut = nil
	t.plus = nil
	t.minus = nil
}

// Merge combines t with tree through leafMerger and returns the merged tree.
//
// Both operands are consumed: their nodes are reused and rewired. Copy an
// operand first if it must survive.
func (t *BSPTree[P]) Merge(tree *BSPTree[P], leafMerger LeafMerger[P]) *BSPTree[P] {
	return t.merge(tree, leafMerger, nil, false)
}

func (t *BSPTree[P]) merge(tree *BSPTree[P], leafMerger LeafMerger[P], parentTree *BSPTree[P], isPlusChild bool) *BSPTree[P] {
	// 1. Cell/tree operation
	if t.cut == nil {
		return leafMerger.Merge(t, tree, parentTree, isPlusChild, true)
	}

	// 2. Tree/cell operation
	if tree.cut == nil {
		return leafMerger.Merge(tree, t, parentTree, isPlusChild, false)
	}

	// 3. Tree/tree operation: align tree on our cut
	merged := tree.Split(t.cut)
	if parentTree != nil {
		merged.parent = parentTree
		if isPlusChild {
			parentTree.plus = merged
		} else {
			parentTree.minus = merged
		}
	}

	// 4. Merge each side, results attach themselves to merged
	t.plus.merge(merged.plus, leafMerger, merged, true)
	t.minus.merge(merged.minus, leafMerger, merged, false)

	// 5. Simplify and re-fit the cut to the final cell
	merged.Condense()
	if merged.cut != nil {
		if fitted := merged.fitToCell(merged.cut.Hyperplane().WholeHyperplane()); fitted != nil && !fitted.IsEmpty() {
			merged.cut = fitted
		}
	}

	return merged
}

// Split splits the whole subtree rooted at t by sub and returns a new tree
// whose root cut is sub: its plus subtree holds everything of t on the plus
// side of sub, its minus subtree everything on the minus side.
//
// The returned tree has no parent. t itself is left unchanged; parts of the
// result are built from copies.
func (t *BSPTree[P]) Split(sub SubHyperplane[P]) *BSPTree[P] {
	// 1. Leaf: duplicate the leaf on both sides of sub
	if t.cut == nil {
		return NewNode(sub, t.Copy(), NewLeaf[P](t.attribute), nil)
	}

	cHyperplane := t.cut.Hyperplane()
	sHyperplane := sub.Hyperplane()
	subParts := sub.Split(cHyperplane)

	switch subParts.Side() {
	case Plus:
		// 2. sub lies entirely in our plus cell
		split := t.plus.Split(sub)
		if t.cut.Split(sHyperplane).Side() == Plus {
			split.plus = NewNode(t.cut.Copy(), split.plus, t.minus.Copy(), t.attribute)
			split.plus.Condense()
			split.plus.parent = split
		} else {
			split.minus = NewNode(t.cut.Copy(), split.minus, t.minus.Copy(), t.attribute)
			split.minus.Condense()
			split.minus.parent = split
		}

		return split

	case Minus:
		// 3. sub lies entirely in our minus cell
		split := t.minus.Split(sub)
		if t.cut.Split(sHyperplane).Side() == Plus {
			split.plus = NewNode(t.cut.Copy(), t.plus.Copy(), split.plus, t.attribute)
			split.plus.Condense()
			split.plus.parent = split
		} else {
			split.minus = NewNode(t.cut.Copy(), t.plus.Copy(), split.minus, t.attribute)
			split.minus.Condense()
			split.minus.parent = split
		}

		return split

	case Both:
		// 4. sub crosses our cut: split both children, then give each side
		//    of sub the matching halves of our cut.
		cutParts := t.cut.Split(sHyperplane)
		split := NewNode(sub, t.plus.Split(subParts.Plus), t.minus.Split(subParts.Minus), nil)

		// split.plus  = plus  cell of t cut by sub⁺: (t⁺∩sub⁺, t⁺∩sub⁻)
		// split.minus = minus cell of t cut by sub⁻: (t⁻∩sub⁺, t⁻∩sub⁻)
		// Re-cutting them by the halves of our cut requires swapping the
		// crossed branches t⁺∩sub⁻ and t⁻∩sub⁺.
		split.plus.cut = cutParts.Plus
		split.minus.cut = cutParts.Minus
		tmp := split.plus.minus
		split.plus.minus = split.minus.plus
		split.plus.minus.parent = split.plus
		split.minus.plus = tmp
		split.minus.plus.parent = split.minus
		split.plus.Condense()
		split.minus.Condense()

		return split

	default:
		// 5. sub lies on our cut hyperplane
		if cHyperplane.SameOrientationAs(sHyperplane) {
			return NewNode(sub, t.plus.Copy(), t.minus.Copy(), t.attribute)
		}

		return NewNode(sub, t.minus.Copy(), t.plus.Copy(), t.attribute)
	}
}

// InsertInTree attaches t as a child of parentTree (plus side if
// isPlusChild) and chops off every part of t lying outside the cell of its
// new position. Cuts that vanish are replaced through vanishingHandler.
func (t *BSPTree[P]) InsertInTree(parentTree *BSPTree[P], isPlusChild bool, vanishingHandler VanishingCutHandler[P]) {
	// 1. Set up parent/child links
	t.parent = parentTree
	if parentTree != nil {
		if isPlusChild {
			parentTree.plus = t
		} else {
			parentTree.minus = t
		}
	}

	if t.cut == nil {
		return
	}

	// 2. Make the inserted tree lie in the cell defined by its ancestors
	for node := t; node.parent != nil; node = node.parent {
		hyperplane := node.parent.cut.Hyperplane()
		if node == node.parent.plus {
			t.cut = t.cut.Split(hyperplane).Plus
			t.plus.chopOffMinus(hyperplane, vanishingHandler)
			t.minus.chopOffMinus(hyperplane, vanishingHandler)
		} else {
			t.cut = t.cut.Split(hyperplane).Minus
			t.plus.chopOffPlus(hyperplane, vanishingHandler)
			t.minus.chopOffPlus(hyperplane, vanishingHandler)
		}

		if t.cut == nil {
			t.replaceWith(vanishingHandler.FixNode(t))
			if t.cut == nil {
				break
			}
		}
	}

	// 3. Parts may have been dropped, keep the structure simple
	t.Condense()
}

// PruneAroundConvexCell builds a new tree holding only the cell of t: every
// ancestor cut is kept, the cell leaf gets cellAttribute, the siblings along
// the path get otherLeafsAttributes and internal nodes internalAttributes.
func (t *BSPTree[P]) PruneAroundConvexCell(cellAttribute, otherLeafsAttributes, internalAttributes any) *BSPTree[P] {
	tree := NewLeaf[P](cellAttribute)
	for current := t; current.parent != nil; current = current.parent {
		parentCut := current.parent.cut.Copy()
		sibling := NewLeaf[P](otherLeafsAttributes)
		if current == current.parent.plus {
			tree = NewNode(parentCut, tree, sibling, internalAttributes)
		} else {
			tree = NewNode(parentCut, sibling, tree, internalAttributes)
		}
	}

	return tree
}

// chopOffMinus removes the parts of the subtree on the minus side of h.
func (t *BSPTree[P]) chopOffMinus(h Hyperplane[P], vanishingHandler VanishingCutHandler[P]) {
	if t.cut == nil {
		return
	}
	t.cut = t.cut.Split(h).Plus
	t.plus.chopOffMinus(h, vanishingHandler)
	t.minus.chopOffMinus(h, vanishingHandler)
	if t.cut == nil {
		t.replaceWith(vanishingHandler.FixNode(t))
	}
}

// chopOffPlus removes the parts of the subtree on the plus side of h.
func (t *BSPTree[P]) chopOffPlus(h Hyperplane[P], vanishingHandler VanishingCutHandler[P]) {
	if t.cut == nil {
		return
	}
	t.cut = t.cut.Split(h).Minus
	t.plus.chopOffPlus(h, vanishingHandler)
	t.minus.chopOffPlus(h, vanishingHandler)
	if t.cut == nil {
		t.replaceWith(vanishingHandler.FixNode(t))
	}
}

// replaceWith moves the content of fixed into t, keeping t's parent link.
func (t *BSPTree[P]) replaceWith(fixed *BSPTree[P]) {
	t.cut = fixed.cut
	t.plus = fixed.plus
	t.minus = fixed.minus
	t.attribute = fixed.attribute
	if t.cut != nil {
		t.plus.parent = t
		t.minus.parent = t
	}
}
