// Package sphere1d implements the partitioning capabilities of the unit
// circle: limit angles as hyperplanes and ArcsSet regions.
//
// Points are s1.Angle values from github.com/golang/geo, read in radians
// and normalized to [0, 2π) before any comparison. A circle has no natural
// origin, so a valid ArcsSet tree must agree on the inside/outside status
// of the cells on both sides of the 0/2π wrapping point; trees that do not
// are rejected with ErrInconsistentStateAt2PiWrapping.
//
// Errors:
//
//   - ErrInconsistentStateAt2PiWrapping  inconsistent tree or boundary
//   - partitioning.ErrNegativeTolerance
package sphere1d

import "math"

// TwoPi is the circumference of the unit circle.
const TwoPi = 2 * math.Pi

// NormalizeAngle brings a into [center-π, center+π).
func NormalizeAngle(a, center float64) float64 {
	return a - TwoPi*math.Floor((a+math.Pi-center)/TwoPi)
}
