package connectivity

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/atomcluster/geometry"
)

// rowsPerTask is the number of scan rows handed to a worker at a time.
// Rows near the top of the triangle are longer, so small tasks balance better.
const rowsPerTask = 64

// Build returns every pair (i, j), i < j, whose distance is strictly below cutoff.
//
// Steps:
//  1. Apply options; surface any recorded ErrOptionViolation.
//  2. Reject non-finite points with ErrNonFiniteCoordinate.
//  3. Return an empty list for n < 2 or a non-positive (or NaN) cutoff.
//  4. Dispatch to the selected method.
//
// The result is ordered by ascending I, then ascending J.
func Build(points []geometry.Vec3, cutoff float64, opts ...Option) ([]Edge, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	for i, p := range points {
		if !p.IsFinite() {
			return nil, fmt.Errorf("%w: atom %d at %v", ErrNonFiniteCoordinate, i, p)
		}
	}

	// !(cutoff > 0) also catches NaN.
	if len(points) < 2 || !(cutoff > 0) {
		return []Edge{}, nil
	}

	switch o.Method {
	case MethodCellList:
		return cellList(points, cutoff), nil
	default:
		if o.Workers > 1 {
			return allPairsParallel(points, cutoff, o.Workers)
		}
		return scanRows(points, cutoff, 0, len(points), nil), nil
	}
}

// connected is the single decision point for both methods.
func connected(a, b geometry.Vec3, cutoff float64) bool {
	return geometry.Distance(a, b) < cutoff
}

// scanRows appends the edges of rows [from, to) of the upper triangle to dst.
func scanRows(points []geometry.Vec3, cutoff float64, from, to int, dst []Edge) []Edge {
	if dst == nil {
		dst = make([]Edge, 0)
	}
	n := len(points)
	for i := from; i < to; i++ {
		for j := i + 1; j < n; j++ {
			if connected(points[i], points[j], cutoff) {
				dst = append(dst, Edge{I: i, J: j})
			}
		}
	}

	return dst
}

// allPairsParallel splits the rows into fixed-size tasks, runs them on at most
// workers goroutines and concatenates the per-task slices in row order.
func allPairsParallel(points []geometry.Vec3, cutoff float64, workers int) ([]Edge, error) {
	n := len(points)
	tasks := (n + rowsPerTask - 1) / rowsPerTask
	parts := make([][]Edge, tasks)

	var g errgroup.Group
	g.SetLimit(workers)
	for t := 0; t < tasks; t++ {
		t := t
		g.Go(func() error {
			from := t * rowsPerTask
			to := min(from+rowsPerTask, n)
			parts[t] = scanRows(points, cutoff, from, to, nil)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	edges := make([]Edge, 0, total)
	for _, p := range parts {
		edges = append(edges, p...)
	}

	return edges, nil
}

// cellList bins points into cubes of edge = cutoff. Two points closer than the
// cutoff differ by at most one cell along every axis, so only the 27 cells
// around a point need to be searched.
func cellList(points []geometry.Vec3, cutoff float64) []Edge {
	origin := points[0]
	for _, p := range points[1:] {
		for k := 0; k < geometry.Dims; k++ {
			origin[k] = math.Min(origin[k], p[k])
		}
	}

	// 1. Bin every atom; indices within a cell stay ascending.
	cells := make(map[[geometry.Dims]int][]int)
	keys := make([][geometry.Dims]int, len(points))
	for i, p := range points {
		c := p.Cell(origin, cutoff)
		keys[i] = c
		cells[c] = append(cells[c], i)
	}

	// 2. For each atom, gather higher-indexed candidates from the neighbourhood.
	edges := make([]Edge, 0)
	var partners []int
	for i, p := range points {
		partners = partners[:0]
		c := keys[i]
		for _, d := range neighborOffsets {
			nc := [geometry.Dims]int{c[0] + d[0], c[1] + d[1], c[2] + d[2]}
			for _, j := range cells[nc] {
				if j > i && connected(p, points[j], cutoff) {
					partners = append(partners, j)
				}
			}
		}
		// 3. Restore ascending J to match the all-pairs order.
		sort.Ints(partners)
		for _, j := range partners {
			edges = append(edges, Edge{I: i, J: j})
		}
	}

	return edges
}

// neighborOffsets lists the 27 cell offsets (including the cell itself).
var neighborOffsets = func() [][geometry.Dims]int {
	offs := make([][geometry.Dims]int, 0, 27)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				offs = append(offs, [geometry.Dims]int{dx, dy, dz})
			}
		}
	}
	return offs
}()

// Adjacency converts edges into per-atom neighbour lists for n atoms.
// Duplicate edges yield duplicate neighbours; self-pairs are kept as a single
// self-reference. Returns ErrIndexOutOfRange for any index outside [0, n).
// Complexity: O(n + E).
func Adjacency(n int, edges []Edge) ([][]int, error) {
	adj := make([][]int, n)
	for _, e := range edges {
		if e.I < 0 || e.I >= n || e.J < 0 || e.J >= n {
			return nil, fmt.Errorf("%w: %v with n=%d", ErrIndexOutOfRange, e, n)
		}
		adj[e.I] = append(adj[e.I], e.J)
		if e.I != e.J {
			adj[e.J] = append(adj[e.J], e.I)
		}
	}

	return adj, nil
}
