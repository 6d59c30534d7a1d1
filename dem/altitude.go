package dem

import "math"

// NoAltitude is the reserved sample value meaning "no measurement available".
// Off-grid positions, sea tiles and failed tiles contribute only this value.
const NoAltitude = -1000.0

// DefaultTolerance is the absolute tolerance, in metres, within which two
// altitude samples are considered the same.
const DefaultTolerance = 0.01

// SameAltitude reports whether a and b are practically the same altitude,
// using DefaultTolerance. Symmetric and reflexive; not transitive.
func SameAltitude(a, b float64) bool {
	return SameAltitudeWithin(a, b, DefaultTolerance)
}

// SameAltitudeWithin reports whether |a-b| < tol. The bound is strict: a
// pair exactly tol apart is not the same altitude.
func SameAltitudeWithin(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}
