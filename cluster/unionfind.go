package cluster

import "github.com/katalvlaran/atomcluster/connectivity"

// disjointSet is a union-find forest over atom indices 0..n-1.
// parent[v] == v marks a root; size is only meaningful at roots.
type disjointSet struct {
	parent []int
	size   []int
}

// newDisjointSet returns n singleton sets.
func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
	}
	for v := 0; v < n; v++ {
		ds.parent[v] = v
		ds.size[v] = 1
	}

	return ds
}

// find returns the root of v, halving the path on the way up.
func (ds *disjointSet) find(v int) int {
	for ds.parent[v] != v {
		// Path halving: point v at its grandparent.
		ds.parent[v] = ds.parent[ds.parent[v]]
		v = ds.parent[v]
	}

	return v
}

// union merges the sets of u and v, attaching the smaller tree under the larger.
// It reports whether a merge happened.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	if ds.size[ru] < ds.size[rv] {
		ru, rv = rv, ru
	}
	ds.parent[rv] = ru
	ds.size[ru] += ds.size[rv]

	return true
}

// unionFind labels every atom with its set root.
func unionFind(n int, edges []connectivity.Edge) func(int) int {
	ds := newDisjointSet(n)
	for _, e := range edges {
		ds.union(e.I, e.J)
	}

	return ds.find
}
