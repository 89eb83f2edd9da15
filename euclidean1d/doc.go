// Package euclidean1d implements the partitioning capabilities of the real
// line: oriented points as hyperplanes, their 0-D sub-hyperplanes and
// IntervalsSet regions.
//
// Points of the line are plain float64 abscissas. IntervalsSet is mostly
// used as the remaining region of 2-D sub-lines, but it is a complete region
// on its own: boolean operations through partitioning.RegionFactory, point
// classification, total length and barycenter.
//
// Errors:
//
//   - ErrEndpointsNotAnInterval  lower bound above upper bound
//   - partitioning.ErrNegativeTolerance
package euclidean1d
