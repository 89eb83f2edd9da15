// Package euclidean2d implements the partitioning capabilities of the
// plane: oriented lines as hyperplanes, sub-lines (sets of segments) as
// sub-hyperplanes and PolygonsSet regions.
//
// Points are r2.Point values from github.com/golang/geo. A Line is oriented:
// its minus side is on the left of its direction, so a counter-clockwise
// polygon has its interior on the minus side of every edge, which is the
// convention the region constructors expect.
//
// What:
//
//   - Line, SubLine, Segment: hyperplane, sub-hyperplane and their pieces.
//   - PolygonsSet: whole plane, box, polygon from vertices, convex region
//     from lines, any region from boundary segments; area, barycenter and
//     boundary segments.
//   - AffineTransform: invertible affine maps applied to whole regions.
//
// Errors:
//
//   - ErrTooFewVertices          polygon with less than 3 vertices
//   - ErrNonInvertibleTransform  singular affine map
//   - partitioning.ErrNegativeTolerance, partitioning.ErrNoHyperplanes
package euclidean2d
