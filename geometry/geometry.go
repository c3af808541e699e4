package geometry

import (
	"fmt"
	"math"
	"strconv"
)

// Distance returns the Euclidean distance sqrt(Σ(a_k-b_k)^2) between a and b.
// It never wraps coordinates across periodic boundaries.
// Complexity: O(1).
func Distance(a, b Vec3) float64 {
	return math.Sqrt(DistanceSq(a, b))
}

// DistanceSq returns the squared Euclidean distance between a and b.
// Complexity: O(1).
func DistanceSq(a, b Vec3) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]

	return dx*dx + dy*dy + dz*dz
}

// Sub returns the component-wise difference v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// IsFinite reports whether every component of v is neither NaN nor ±Inf.
func (v Vec3) IsFinite() bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}

	return true
}

// Cell maps v onto an integer lattice with the given edge length,
// relative to origin. edge must be > 0.
func (v Vec3) Cell(origin Vec3, edge float64) [Dims]int {
	d := v.Sub(origin)

	return [Dims]int{
		int(math.Floor(d[0] / edge)),
		int(math.Floor(d[1] / edge)),
		int(math.Floor(d[2] / edge)),
	}
}

// ParseVec3 converts the first three fields into a Vec3.
// Extra fields are ignored; missing fields are never zero-filled.
//
// Errors:
//   - ErrShortCoordinate if len(fields) < 3.
//   - ErrNonNumericCoordinate if a field is not a float.
//   - ErrNonFiniteCoordinate if a parsed component is NaN or ±Inf.
func ParseVec3(fields []string) (Vec3, error) {
	var v Vec3
	if len(fields) < Dims {
		return v, fmt.Errorf("%w: got %d", ErrShortCoordinate, len(fields))
	}
	for k := 0; k < Dims; k++ {
		c, err := strconv.ParseFloat(fields[k], 64)
		if err != nil {
			return Vec3{}, fmt.Errorf("%w: %q", ErrNonNumericCoordinate, fields[k])
		}
		v[k] = c
	}
	if !v.IsFinite() {
		return Vec3{}, fmt.Errorf("%w: %v", ErrNonFiniteCoordinate, v)
	}

	return v, nil
}

// String formats v as "(x, y, z)".
func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}
