package cluster

import "sort"

// Len returns the number of clusters.
func (p Partition) Len() int {
	return len(p)
}

// Members returns the member indices of cluster key, or nil for an unknown key.
// The returned slice is shared with p.
func (p Partition) Members(key int) []int {
	if key < 0 || key >= len(p) {
		return nil
	}

	return p[key]
}

// Atoms returns the ascending union of all cluster members.
// Complexity: O(m log m) for m clustered atoms.
func (p Partition) Atoms() []int {
	all := make([]int, 0)
	for _, members := range p {
		all = append(all, members...)
	}
	sort.Ints(all)

	return all
}

// Shift returns a copy of p with base added to every member index.
// Shift(1) converts to 1-based output; Shift(0) is a plain copy.
// It is an output transform and must be applied once, after clustering.
func (p Partition) Shift(base int) Partition {
	out := make(Partition, len(p))
	for k, members := range p {
		shifted := make([]int, len(members))
		for i, v := range members {
			shifted[i] = v + base
		}
		out[k] = shifted
	}

	return out
}

// Label returns, for each atom 0..n-1, the key of its cluster or -1 when the
// atom belongs to none. Members outside [0, n) are ignored.
func (p Partition) Label(n int) []int {
	label := make([]int, n)
	for i := range label {
		label[i] = -1
	}
	for k, members := range p {
		for _, v := range members {
			if v >= 0 && v < n {
				label[v] = k
			}
		}
	}

	return label
}

// WithIsolated returns a copy of p extended with one singleton cluster, in
// ascending index order, for every atom in 0..n-1 that p does not contain.
// Existing keys are preserved.
func (p Partition) WithIsolated(n int) Partition {
	out := p.Shift(0)
	for v, k := range p.Label(n) {
		if k < 0 {
			out = append(out, []int{v})
		}
	}

	return out
}
