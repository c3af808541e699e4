package geometry

import "errors"

// Sentinel errors for coordinate parsing and validation.
var (
	// ErrShortCoordinate indicates fewer than three coordinate components.
	ErrShortCoordinate = errors.New("geometry: coordinate needs three components")

	// ErrNonNumericCoordinate indicates a component that is not a number.
	ErrNonNumericCoordinate = errors.New("geometry: non-numeric coordinate component")

	// ErrNonFiniteCoordinate indicates a NaN or infinite component.
	ErrNonFiniteCoordinate = errors.New("geometry: non-finite coordinate component")
)

// Dims is the dimensionality of every coordinate handled by this package.
const Dims = 3

// Vec3 is a Cartesian coordinate (x, y, z) in arbitrary length units.
type Vec3 [Dims]float64
