// Package connectivity builds the proximity graph of an atom set: every
// unordered pair of atoms whose Euclidean distance is strictly below a cutoff
// becomes an Edge.
//
// What & Why
//
//   - Build(points, cutoff, opts...) returns all (i, j), 0 ≤ i < j < n, with
//     geometry.Distance(points[i], points[j]) < cutoff. A pair exactly at the
//     cutoff is NOT connected.
//   - The output is ordered by ascending I, then ascending J, whatever method
//     or worker count was used, so repeated runs are byte-for-byte identical.
//   - A cutoff ≤ 0 (or NaN) is a valid, if useless, configuration: no edges,
//     no error.
//
// Methods
//
//   - MethodAllPairs (default): evaluates all n(n-1)/2 pairs.
//     Time O(n²), memory O(E).
//     WithWorkers(k) splits the rows over k goroutines; each worker appends
//     to its own slice and the slices are concatenated in row order.
//   - MethodCellList: bins atoms into cubic cells with edge = cutoff and only
//     compares atoms in the 27 surrounding cells.
//     Time O(n·m) where m is the mean neighbourhood population, memory O(n + E).
//     Produces the identical edge list.
//
// Errors
//
//	ErrNonFiniteCoordinate - a point has a NaN or infinite component.
//	ErrOptionViolation     - an invalid Option was supplied.
//	ErrIndexOutOfRange     - Adjacency received an edge outside [0, n).
package connectivity
