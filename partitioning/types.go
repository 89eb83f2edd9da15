// Package partitioning defines the space capabilities consumed by the BSP
// engine, the enumerations shared by all operations and the sentinel errors.
package partitioning

import (
	"errors"
	"fmt"
)

// DefaultTolerance is the tolerance used by callers that do not pick one.
// Points closer than this to a hyperplane are considered to lie on it.
const DefaultTolerance = 1e-10

var (
	// ErrNegativeTolerance is returned when a region is built with tolerance < 0.
	ErrNegativeTolerance = errors.New("partitioning: tolerance must be >= 0")

	// ErrNoHyperplanes is returned when a convex region is requested from an
	// empty hyperplane list.
	ErrNoHyperplanes = errors.New("partitioning: no hyperplanes supplied")

	// ErrNotConvex is returned by BuildConvex when a hyperplane lies outside
	// the convex zone bounded by the previous ones.
	ErrNotConvex = errors.New("partitioning: hyperplanes do not bound a convex region")

	// ErrNotTransformable is returned when a cut sub-hyperplane does not
	// implement the transform capability required by TransformRegion.
	ErrNotTransformable = errors.New("partitioning: sub-hyperplane cannot be transformed")

	// ErrInternal marks a state the algorithms consider unreachable. It is
	// only ever used as a panic value and signals a bug, not bad input.
	ErrInternal = errors.New("partitioning: internal error")
)

// internalError panics with an error wrapping ErrInternal.
func internalError(format string, args ...any) {
	panic(fmt.Errorf("%w: %s", ErrInternal, fmt.Sprintf(format, args...)))
}

// Side classifies an object with respect to a hyperplane.
type Side int

const (
	// Plus means the object lies entirely on the plus side.
	Plus Side = iota
	// Minus means the object lies entirely on the minus side.
	Minus
	// Both means the object has parts on both sides.
	Both
	// Hyper means the object lies on the hyperplane itself.
	Hyper
)

// String implements fmt.Stringer.
func (s Side) String() string {
	switch s {
	case Plus:
		return "plus"
	case Minus:
		return "minus"
	case Both:
		return "both"
	case Hyper:
		return "hyper"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Location classifies a point with respect to a region.
type Location int

const (
	// Inside means the point is in the interior of the region.
	Inside Location = iota
	// Outside means the point is in the exterior of the region.
	Outside
	// Boundary means the point is on the boundary, within tolerance.
	Boundary
)

// String implements fmt.Stringer.
func (l Location) String() string {
	switch l {
	case Inside:
		return "inside"
	case Outside:
		return "outside"
	case Boundary:
		return "boundary"
	default:
		return fmt.Sprintf("Location(%d)", int(l))
	}
}

// Order selects how an internal node and its two subtrees are visited.
type Order int

const (
	PlusMinusSub Order = iota // plus subtree, minus subtree, then the node
	PlusSubMinus              // plus subtree, the node, then minus subtree
	MinusPlusSub              // minus subtree, plus subtree, then the node
	MinusSubPlus              // minus subtree, the node, then plus subtree
	SubPlusMinus              // the node, plus subtree, then minus subtree
	SubMinusPlus              // the node, minus subtree, then plus subtree
)

// Hyperplane is a codimension-one affine subset splitting the space P lives
// in into a plus and a minus half-space.
type Hyperplane[P any] interface {
	// Copy returns an independent instance (immutable hyperplanes may return
	// themselves).
	Copy() Hyperplane[P]

	// Offset returns the signed distance of point to the hyperplane,
	// positive on the plus side.
	Offset(point P) float64

	// Project returns the orthogonal projection of point on the hyperplane.
	Project(point P) P

	// Tolerance returns the tolerance below which points lie on the hyperplane.
	Tolerance() float64

	// SameOrientationAs reports whether other has the same plus side as the
	// receiver. Only meaningful for hyperplanes sharing the same support.
	SameOrientationAs(other Hyperplane[P]) bool

	// WholeHyperplane returns a sub-hyperplane covering the whole hyperplane.
	WholeHyperplane() SubHyperplane[P]

	// WholeSpace returns a region covering the whole space.
	WholeSpace() Region[P]
}

// SubHyperplane is a bounded part of a hyperplane.
type SubHyperplane[P any] interface {
	// Copy returns a deep copy.
	Copy() SubHyperplane[P]

	// Hyperplane returns the underlying hyperplane.
	Hyperplane() Hyperplane[P]

	// IsEmpty reports whether the sub-hyperplane covers nothing.
	IsEmpty() bool

	// Size returns the measure of the sub-hyperplane in its own dimension.
	Size() float64

	// Side classifies the sub-hyperplane with respect to h.
	Side(h Hyperplane[P]) Side

	// Split splits the sub-hyperplane in two parts by h.
	Split(h Hyperplane[P]) Split[P]

	// Reunite returns the union of the receiver and other, which must share
	// the same hyperplane.
	Reunite(other SubHyperplane[P]) SubHyperplane[P]
}

// Split holds the two parts of a sub-hyperplane split by a hyperplane.
// Either part may be nil when nothing lies on that side.
type Split[P any] struct {
	Plus  SubHyperplane[P]
	Minus SubHyperplane[P]
}

// Side derives the position of the split sub-hyperplane from its parts.
func (s Split[P]) Side() Side {
	plus := s.Plus != nil && !s.Plus.IsEmpty()
	minus := s.Minus != nil && !s.Minus.IsEmpty()
	switch {
	case plus && minus:
		return Both
	case plus:
		return Plus
	case minus:
		return Minus
	default:
		return Hyper
	}
}

// Region is a part of space described by a BSP tree with bool leaves.
type Region[P any] interface {
	// BuildNew creates a region of the same concrete type from tree.
	BuildNew(tree *BSPTree[P]) Region[P]

	// Copy returns a deep copy.
	Copy() Region[P]

	// Tolerance returns the numerical tolerance of the region.
	Tolerance() float64

	// IsEmpty reports whether the region contains no points.
	IsEmpty() bool

	// IsEmptyNode reports whether the subtree rooted at node is empty.
	IsEmptyNode(node *BSPTree[P]) bool

	// IsFull reports whether the region covers the whole space.
	IsFull() bool

	// IsFullNode reports whether the subtree rooted at node is full.
	IsFullNode(node *BSPTree[P]) bool

	// Contains reports whether other is entirely inside the region.
	Contains(other Region[P]) bool

	// CheckPoint classifies point.
	CheckPoint(point P) Location

	// Tree returns the underlying tree, computing boundary attributes on
	// internal nodes first when includeBoundaryAttributes is true.
	Tree(includeBoundaryAttributes bool) *BSPTree[P]

	// BoundarySize returns the measure of the region boundary.
	BoundarySize() float64

	// Size returns the measure of the region.
	Size() float64

	// Barycenter returns the barycenter of the region.
	Barycenter() P

	// Side classifies the whole region with respect to h.
	Side(h Hyperplane[P]) Side

	// Intersection returns the part of sub inside the region, or nil.
	Intersection(sub SubHyperplane[P]) SubHyperplane[P]
}

// Transform maps a space P onto itself, together with the induced mapping of
// the sub-space Q its hyperplanes are parameterized by.
type Transform[P, Q any] interface {
	// ApplyPoint transforms a point.
	ApplyPoint(point P) P

	// ApplyHyperplane transforms a hyperplane.
	ApplyHyperplane(h Hyperplane[P]) Hyperplane[P]

	// ApplySubHyperplane transforms a sub-hyperplane of the sub-space of
	// original into the sub-space of transformed.
	ApplySubHyperplane(sub SubHyperplane[Q], original, transformed Hyperplane[P]) SubHyperplane[Q]
}
