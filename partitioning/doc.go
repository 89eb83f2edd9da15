// Package partitioning implements binary space partitioning (BSP) trees and
// the generic region machinery built on top of them.
//
// What:
//
//   - BSPTree: a node owns an optional cut sub-hyperplane, two children
//     (plus/minus half-cells), a parent link and an opaque attribute.
//     Supports cut insertion, cell lookup, splitting by a sub-hyperplane,
//     merging with a caller-supplied LeafMerger, condensation and pruning.
//   - RegionBase: wraps a BSPTree whose leaves carry bool inside/outside
//     markers. Builds trees from boundaries or convex hyperplane lists,
//     classifies points, computes boundary size and delegates size and
//     barycenter to the concrete space.
//   - SubHyperplaneBase: glue letting the remaining region of a
//     sub-hyperplane take part in split/reunite/transform operations.
//   - RegionFactory: union, intersection, difference, xor and complement.
//
// Why:
//   - Represent arbitrary regions (polygons, interval and arc sets) with
//     exact boolean set operations.
//   - Classify points as inside/outside/on the boundary with a single
//     numerical tolerance.
//
// Key Types & Constants:
//
//   - Side: Plus, Minus, Both, Hyper
//   - Location: Inside, Outside, Boundary
//   - Order: the six visit orders (PlusMinusSub … SubMinusPlus)
//   - Hyperplane, SubHyperplane, Region, Transform: space capabilities
//
// Complexity:
//
//   - Cell / CheckPoint: O(depth)
//   - Split:             O(n) nodes touched in the worst case
//   - Merge:             O(n·m) worst case, usually much less
//
// Errors:
//
//   - ErrNegativeTolerance  tolerance < 0
//   - ErrNoHyperplanes      empty hyperplane list for a convex region
//   - ErrNotConvex          BuildConvex hyperplane outside the cell built so far
//   - ErrNotTransformable   cut sub-hyperplane does not support transforms
//   - ErrInternal           unreachable state (panics, never returned)
//
// Reference: B. Naylor, J. Amanatides, W. Thibault, "Merging BSP Trees
// Yields Polyhedral Set Operations", SIGGRAPH '90.
package partitioning
