// Package geometry provides the Euclidean primitives used to decide whether two
// atoms are connected: a fixed-size 3D coordinate, the distance between two
// coordinates, and a fail-fast parser for textual coordinates.
//
// What & Why
//
//   - Vec3 is a value type ([3]float64), so coordinates are copied, compared
//     and stored without allocation.
//   - Distance is the plain, unwrapped Euclidean metric. There is no
//     periodic-boundary handling: coordinates must already live in one frame.
//   - ParseVec3 never zero-fills a missing dimension. A coordinate with fewer
//     than three components, non-numeric content or a NaN/Inf value is
//     rejected with a sentinel error.
//
// Complexity
//
//   - Distance, DistanceSq: O(1), no allocations.
//   - ParseVec3: O(len(fields)).
//
// Errors
//
//	ErrShortCoordinate       - fewer than three coordinate fields.
//	ErrNonNumericCoordinate  - a field does not parse as a float.
//	ErrNonFiniteCoordinate   - a component is NaN or ±Inf.
package geometry
