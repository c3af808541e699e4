package cluster

import (
	"errors"
	"fmt"
)

// Sentinel errors for cluster merging.
var (
	// ErrInvalidAtomCount is returned when the atom count is negative.
	ErrInvalidAtomCount = errors.New("cluster: atom count cannot be negative")

	// ErrNegativeIndex is returned when an edge references a negative index.
	ErrNegativeIndex = errors.New("cluster: negative atom index")

	// ErrIndexOutOfRange is returned when an edge references an index ≥ n.
	ErrIndexOutOfRange = errors.New("cluster: atom index out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cluster: invalid option supplied")
)

// Method selects the connected-components strategy.
type Method string

const (
	// MethodUnionFind merges with a disjoint-set forest.
	MethodUnionFind Method = "unionfind"

	// MethodBFS labels components by breadth-first search.
	MethodBFS Method = "bfs"

	// MethodRescan repeatedly merges overlapping groups.
	MethodRescan Method = "rescan"
)

// ParseMethod maps a name onto a Method.
func ParseMethod(s string) (Method, error) {
	switch m := Method(s); m {
	case MethodUnionFind, MethodBFS, MethodRescan:
		return m, nil
	default:
		return "", fmt.Errorf("%w: unknown method %q", ErrOptionViolation, s)
	}
}

// Options holds the tunables of Merge.
type Options struct {
	// Method is the components strategy.
	Method Method

	// internal error recorded during option parsing
	err error
}

// Option configures Merge.
type Option func(*Options)

// DefaultOptions returns MethodUnionFind.
func DefaultOptions() Options {
	return Options{Method: MethodUnionFind}
}

// WithMethod selects the merge strategy. Unknown names surface as ErrOptionViolation.
func WithMethod(m Method) Option {
	return func(o *Options) {
		if _, err := ParseMethod(string(m)); err != nil {
			o.err = err
			return
		}
		o.Method = m
	}
}

// Partition is the set of clusters produced by Merge.
// The slice index is the cluster key; each element lists member atom
// indices in ascending order. Clusters are pairwise disjoint and non-empty.
type Partition [][]int
