package euclidean2d

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r2"

	"github.com/katalvlaran/bspgeom/partitioning"
)

// ErrTooFewVertices is returned when a polygon has less than 3 vertices.
var ErrTooFewVertices = errors.New("euclidean2d: a polygon needs at least 3 vertices")

// PolygonsSet is a region of the plane, possibly unbounded, possibly made
// of several disconnected polygons with holes.
type PolygonsSet struct {
	*partitioning.RegionBase[r2.Point]
}

// NewWholePlane returns the region covering the whole plane.
func NewWholePlane(tolerance float64) (*PolygonsSet, error) {
	return NewPolygonsSetFromTree(partitioning.NewLeaf[r2.Point](true), tolerance)
}

// NewPolygonsSetFromTree wraps tree, whose cuts must be sub-lines and leaves
// bool markers. The tree is not copied.
func NewPolygonsSetFromTree(tree *partitioning.BSPTree[r2.Point], tolerance float64) (*PolygonsSet, error) {
	p := &PolygonsSet{}
	base, err := partitioning.NewRegionFromTree(tree, tolerance, p)
	if err != nil {
		return nil, fmt.Errorf("euclidean2d: %w", err)
	}
	p.RegionBase = base

	return p, nil
}

// NewPolygonsSetFromBoundary builds a region from sub-lines having the
// interior on their minus side, i.e. on their left.
func NewPolygonsSetFromBoundary(boundary []partitioning.SubHyperplane[r2.Point], tolerance float64) (*PolygonsSet, error) {
	p := &PolygonsSet{}
	base, err := partitioning.NewRegionFromBoundary(boundary, tolerance, p)
	if err != nil {
		return nil, fmt.Errorf("euclidean2d: %w", err)
	}
	p.RegionBase = base

	return p, nil
}

// NewConvexPolygonsSet builds the convex region on the left of every line.
func NewConvexPolygonsSet(tolerance float64, lines ...*Line) (*PolygonsSet, error) {
	hyperplanes := make([]partitioning.Hyperplane[r2.Point], len(lines))
	for i, l := range lines {
		if l == nil {
			return nil, fmt.Errorf("euclidean2d: line %d: %w", i, partitioning.ErrNoHyperplanes)
		}
		hyperplanes[i] = l
	}

	p := &PolygonsSet{}
	base, err := partitioning.NewConvexRegion(hyperplanes, tolerance, p)
	if err != nil {
		return nil, fmt.Errorf("euclidean2d: %w", err)
	}
	p.RegionBase = base

	return p, nil
}

// NewBox returns the axis aligned rectangle [xMin, xMax] x [yMin, yMax].
func NewBox(xMin, xMax, yMin, yMax, tolerance float64) (*PolygonsSet, error) {
	if xMin >= xMax || yMin >= yMax {
		return nil, fmt.Errorf("%w: degenerate box [%g, %g] x [%g, %g]", ErrTooFewVertices, xMin, xMax, yMin, yMax)
	}

	return NewPolygon(tolerance,
		r2.Point{X: xMin, Y: yMin},
		r2.Point{X: xMax, Y: yMin},
		r2.Point{X: xMax, Y: yMax},
		r2.Point{X: xMin, Y: yMax},
	)
}

// NewPolygon builds the region bounded by the closed polyline through
// vertices. Counter-clockwise vertices give the bounded interior, clockwise
// ones its unbounded complement.
func NewPolygon(tolerance float64, vertices ...r2.Point) (*PolygonsSet, error) {
	// 1. Validate input
	if len(vertices) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewVertices, len(vertices))
	}

	// 2. One segment per edge, skipping repeated vertices
	boundary := make([]partitioning.SubHyperplane[r2.Point], 0, len(vertices))
	for i, start := range vertices {
		end := vertices[(i+1)%len(vertices)]
		if start.Sub(end).Norm() <= tolerance {
			continue
		}
		segment, err := NewSegment(start, end, tolerance)
		if err != nil {
			return nil, err
		}
		boundary = append(boundary, segment)
	}
	if len(boundary) < 3 {
		return nil, fmt.Errorf("%w: %d distinct edges", ErrTooFewVertices, len(boundary))
	}

	// 3. Build the tree from the edges
	return NewPolygonsSetFromBoundary(boundary, tolerance)
}

// fromTree is used internally with already validated tolerances.
func fromTree(tree *partitioning.BSPTree[r2.Point], tolerance float64) *PolygonsSet {
	p, err := NewPolygonsSetFromTree(tree, tolerance)
	if err != nil {
		panic(err)
	}

	return p
}

// BuildNew wraps tree in a new PolygonsSet with the same tolerance.
func (p *PolygonsSet) BuildNew(tree *partitioning.BSPTree[r2.Point]) partitioning.Region[r2.Point] {
	return fromTree(tree, p.Tolerance())
}

// BoundarySegments returns the boundary of the region as segments having
// the interior on their left.
func (p *PolygonsSet) BoundarySegments() []Segment {
	var segments []Segment
	p.Tree(true).Visit(partitioning.MinusSubPlus, func(node *partitioning.BSPTree[r2.Point]) {
		attribute, ok := node.Attribute().(*partitioning.BoundaryAttribute[r2.Point])
		if !ok {
			return
		}
		if attribute.PlusOutside != nil {
			segments = append(segments, attribute.PlusOutside.(*SubLine).Segments()...)
		}
		if attribute.PlusInside != nil {
			for _, s := range attribute.PlusInside.(*SubLine).Segments() {
				segments = append(segments, Segment{Start: s.End, End: s.Start, Line: s.Line.Reverse()})
			}
		}
	}, nil)

	return segments
}

// ComputeGeometricalProperties sets the area and the barycenter, integrating
// along the oriented boundary.
func (p *PolygonsSet) ComputeGeometricalProperties() {
	nan := r2.Point{X: math.NaN(), Y: math.NaN()}
	root := p.Tree(false)
	if root.IsLeaf() {
		p.SetBarycenter(nan)
		if p.IsFull() {
			p.SetSize(math.Inf(1))
		} else {
			p.SetSize(0)
		}

		return
	}

	var sum, sumX, sumY float64
	for _, s := range p.BoundarySegments() {
		if isInfinite(s.Start) || isInfinite(s.End) {
			// open boundary
			p.SetSize(math.Inf(1))
			p.SetBarycenter(nan)

			return
		}
		factor := s.Start.Cross(s.End)
		sum += factor
		sumX += factor * (s.Start.X + s.End.X)
		sumY += factor * (s.Start.Y + s.End.Y)
	}

	if sum < 0 {
		// a finite outside surrounded by an infinite inside
		p.SetSize(math.Inf(1))
		p.SetBarycenter(nan)

		return
	}

	p.SetSize(sum / 2)
	p.SetBarycenter(r2.Point{X: sumX / (3 * sum), Y: sumY / (3 * sum)})
}

func isInfinite(pt r2.Point) bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) || math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// Transform returns the image of the region by t.
func (p *PolygonsSet) Transform(t *AffineTransform) (*PolygonsSet, error) {
	region, err := partitioning.TransformRegion[r2.Point, float64](p, t)
	if err != nil {
		return nil, fmt.Errorf("euclidean2d: %w", err)
	}

	return region.(*PolygonsSet), nil
}
