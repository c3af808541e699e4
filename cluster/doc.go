// Package cluster collapses a proximity edge list into disjoint clusters:
// the connected components of the undirected graph whose vertices are the
// atoms that appear in at least one edge.
//
// What & Why
//
//   - Two atoms share a cluster iff a chain of edges connects them.
//   - Atoms without any edge are never clustered; no singleton clusters are
//     emitted. Callers that want singletons opt in with Partition.WithIsolated.
//   - Duplicate edges and self-pairs are handled as sets: they never create an
//     extra cluster and never inflate a count.
//
// Methods
//
//   - MethodUnionFind (default): array-based disjoint-set union with union by
//     size and path halving. Time O(n + E·α(n)), memory O(n).
//   - MethodBFS: breadth-first labelling over adjacency lists.
//     Time O(n + E), memory O(n + E).
//   - MethodRescan: the reference merge. Every edge starts as a two-atom
//     group; any two groups sharing an atom are merged until none do
//     (see MergeGroups). Worst case O(E³). Kept for cross-checking.
//
// Cluster keys
//
// Keys are the integers 0..k-1. They are assigned after connectivity is
// resolved, in order of the first appearance of any member while walking the
// edge list (I before J). Every method therefore returns the same Partition
// for the same edge list. Keys carry no meaning across runs: only membership
// is a contract. Members of a cluster are sorted ascending.
//
// Errors
//
//	ErrInvalidAtomCount - n < 0.
//	ErrNegativeIndex    - an edge references a negative index.
//	ErrIndexOutOfRange  - an edge references an index ≥ n.
//	ErrOptionViolation  - an invalid Option was supplied.
package cluster
