package partitioning

import "fmt"

// SubHyperplaneImpl is implemented by the concrete sub-hyperplane type of a
// space whose hyperplanes are parameterized by a sub-space with points Q.
type SubHyperplaneImpl[P, Q any] interface {
	// BuildNew creates a sub-hyperplane of the concrete type.
	BuildNew(h Hyperplane[P], remaining Region[Q]) SubHyperplane[P]

	// Split splits the concrete sub-hyperplane by h.
	Split(h Hyperplane[P]) Split[P]
}

// SubHyperplaneBase implements the space independent part of SubHyperplane:
// a hyperplane in P together with the remaining region, expressed in the
// sub-space Q, that bounds its extent. Concrete types embed it.
//
// The remaining region is nil for 0-D sub-hyperplanes (points splitting a
// line or a circle); such types override Size, IsEmpty and Reunite.
type SubHyperplaneBase[P, Q any] struct {
	hyperplane Hyperplane[P]
	remaining  Region[Q]
	impl       SubHyperplaneImpl[P, Q]
}

// NewSubHyperplaneBase creates the base of a sub-hyperplane.
func NewSubHyperplaneBase[P, Q any](h Hyperplane[P], remaining Region[Q], impl SubHyperplaneImpl[P, Q]) *SubHyperplaneBase[P, Q] {
	return &SubHyperplaneBase[P, Q]{hyperplane: h, remaining: remaining, impl: impl}
}

// Hyperplane returns the underlying hyperplane.
func (s *SubHyperplaneBase[P, Q]) Hyperplane() Hyperplane[P] { return s.hyperplane }

// RemainingRegion returns the extent of the sub-hyperplane in the sub-space.
func (s *SubHyperplaneBase[P, Q]) RemainingRegion() Region[Q] { return s.remaining }

// Copy returns a deep copy.
func (s *SubHyperplaneBase[P, Q]) Copy() SubHyperplane[P] {
	var remaining Region[Q]
	if s.remaining != nil {
		remaining = s.remaining.Copy()
	}

	return s.impl.BuildNew(s.hyperplane.Copy(), remaining)
}

// IsEmpty reports whether the remaining region is empty.
func (s *SubHyperplaneBase[P, Q]) IsEmpty() bool { return s.remaining.IsEmpty() }

// Size returns the measure of the remaining region.
func (s *SubHyperplaneBase[P, Q]) Size() float64 { return s.remaining.Size() }

// Side classifies the sub-hyperplane with respect to h.
func (s *SubHyperplaneBase[P, Q]) Side(h Hyperplane[P]) Side {
	return s.impl.Split(h).Side()
}

// Reunite returns the union of the receiver and other. Both must share the
// same hyperplane and expose their remaining region.
func (s *SubHyperplaneBase[P, Q]) Reunite(other SubHyperplane[P]) SubHyperplane[P] {
	o, ok := other.(interface{ RemainingRegion() Region[Q] })
	if !ok {
		internalError("cannot reunite with %T", other)
	}

	return s.impl.BuildNew(s.hyperplane, NewRegionFactory[Q]().Union(s.remaining, o.RemainingRegion()))
}

// ApplyTransform transforms the hyperplane with t and rebuilds the
// remaining region in the sub-space of the transformed hyperplane.
// Boundary attributes of the remaining region are dropped and recomputed
// lazily.
func (s *SubHyperplaneBase[P, Q]) ApplyTransform(t Transform[P, Q]) SubHyperplane[P] {
	tHyperplane := t.ApplyHyperplane(s.hyperplane)
	if s.remaining == nil {
		return s.impl.BuildNew(tHyperplane, nil)
	}

	tTree := s.recurseTransform(s.remaining.Tree(false), tHyperplane, t)

	return s.impl.BuildNew(tHyperplane, s.remaining.BuildNew(tTree))
}

func (s *SubHyperplaneBase[P, Q]) recurseTransform(node *BSPTree[Q], transformed Hyperplane[P], t Transform[P, Q]) *BSPTree[Q] {
	if node.cut == nil {
		return NewLeaf[Q](node.attribute)
	}

	return NewNode(
		t.ApplySubHyperplane(node.cut, s.hyperplane, transformed),
		s.recurseTransform(node.plus, transformed, t),
		s.recurseTransform(node.minus, transformed, t),
		nil,
	)
}

// String implements fmt.Stringer.
func (s *SubHyperplaneBase[P, Q]) String() string {
	return fmt.Sprintf("sub-hyperplane of %v", s.hyperplane)
}

// transformable is satisfied by sub-hyperplanes embedding SubHyperplaneBase.
type transformable[P, Q any] interface {
	ApplyTransform(t Transform[P, Q]) SubHyperplane[P]
}

// TransformRegion applies t to every cut of region and returns the new
// region. Boundary attributes are dropped and recomputed lazily.
func TransformRegion[P, Q any](region Region[P], t Transform[P, Q]) (Region[P], error) {
	tree, err := recurseRegionTransform(region.Tree(false), t)
	if err != nil {
		return nil, err
	}

	return region.BuildNew(tree), nil
}

func recurseRegionTransform[P, Q any](node *BSPTree[P], t Transform[P, Q]) (*BSPTree[P], error) {
	if node.cut == nil {
		return NewLeaf[P](node.attribute), nil
	}

	sub, ok := node.cut.(transformable[P, Q])
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotTransformable, node.cut)
	}
	plus, err := recurseRegionTransform(node.plus, t)
	if err != nil {
		return nil, err
	}
	minus, err := recurseRegionTransform(node.minus, t)
	if err != nil {
		return nil, err
	}

	return NewNode(sub.ApplyTransform(t), plus, minus, nil), nil
}
