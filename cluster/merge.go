package cluster

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/atomcluster/connectivity"
)

// Merge computes the connected components of the graph formed by edges over
// atoms 0..n-1 and returns them as a Partition.
//
// Steps:
//  1. Apply options; surface any recorded ErrOptionViolation.
//  2. Validate n and every edge endpoint; fail loudly on the first bad index.
//  3. Resolve connectivity with the selected method into a representative per atom.
//  4. Materialise clusters: keys by first appearance in edge order, members ascending.
//
// An empty edge list yields an empty, non-nil Partition.
func Merge(n int, edges []connectivity.Edge, opts ...Option) (Partition, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if err := validate(n, edges); err != nil {
		return nil, err
	}
	if len(edges) == 0 {
		return Partition{}, nil
	}

	var rep func(int) int
	switch o.Method {
	case MethodBFS:
		var err error
		if rep, err = bfsLabels(n, edges); err != nil {
			return nil, err
		}
	case MethodRescan:
		rep = rescanLabels(n, edges)
	default:
		rep = unionFind(n, edges)
	}

	return materialize(n, edges, rep), nil
}

// validate enforces the index contract of Merge.
func validate(n int, edges []connectivity.Edge) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidAtomCount, n)
	}
	for k, e := range edges {
		for _, v := range [2]int{e.I, e.J} {
			switch {
			case v < 0:
				return fmt.Errorf("%w: edge %d %v", ErrNegativeIndex, k, e)
			case v >= n:
				return fmt.Errorf("%w: edge %d %v with n=%d", ErrIndexOutOfRange, k, e, n)
			}
		}
	}

	return nil
}

// materialize groups edge endpoints by representative. A cluster's key is the
// order in which its first member is met while walking edges (I before J).
func materialize(n int, edges []connectivity.Edge, rep func(int) int) Partition {
	keyOf := make(map[int]int)
	seen := make([]bool, n)
	p := Partition{}
	for _, e := range edges {
		for _, v := range [2]int{e.I, e.J} {
			if seen[v] {
				continue
			}
			seen[v] = true
			r := rep(v)
			k, ok := keyOf[r]
			if !ok {
				k = len(p)
				keyOf[r] = k
				p = append(p, nil)
			}
			p[k] = append(p[k], v)
		}
	}
	for _, members := range p {
		sort.Ints(members)
	}

	return p
}
