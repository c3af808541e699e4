package connectivity

import (
	"errors"
	"fmt"
)

// Sentinel errors for edge construction.
var (
	// ErrNonFiniteCoordinate is returned when a point contains NaN or ±Inf.
	ErrNonFiniteCoordinate = errors.New("connectivity: non-finite coordinate")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("connectivity: invalid option supplied")

	// ErrIndexOutOfRange is returned when an edge references an index outside [0, n).
	ErrIndexOutOfRange = errors.New("connectivity: edge index out of range")
)

// DefaultCutoff is the conventional connection threshold in length units (Å).
const DefaultCutoff = 1.65

// Method selects the pair enumeration strategy.
type Method string

const (
	// MethodAllPairs compares every pair of atoms.
	MethodAllPairs Method = "allpairs"

	// MethodCellList compares only atoms in neighbouring cutoff-sized cells.
	MethodCellList Method = "celllist"
)

// Edge is an unordered pair of atom indices closer than the cutoff.
// Build always returns I < J.
type Edge struct {
	I, J int
}

// String formats the edge as "(i,j)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d,%d)", e.I, e.J)
}

// Options holds the tunables of Build.
type Options struct {
	// Method is the enumeration strategy.
	Method Method

	// Workers is the number of goroutines for MethodAllPairs.
	// 0 and 1 both mean sequential.
	Workers int

	// internal error recorded during option parsing
	err error
}

// Option configures Build via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Build.
type Option func(*Options)

// DefaultOptions returns sequential MethodAllPairs.
func DefaultOptions() Options {
	return Options{
		Method:  MethodAllPairs,
		Workers: 0,
	}
}

// WithMethod selects MethodAllPairs or MethodCellList.
func WithMethod(m Method) Option {
	return func(o *Options) {
		switch m {
		case MethodAllPairs, MethodCellList:
			o.Method = m
		default:
			o.err = fmt.Errorf("%w: unknown method %q", ErrOptionViolation, m)
		}
	}
}

// WithWorkers sets the number of goroutines used by MethodAllPairs.
//
//	n > 1:  parallel row blocks
//	n == 0, n == 1: sequential
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}
