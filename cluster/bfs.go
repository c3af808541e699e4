package cluster

import "github.com/katalvlaran/atomcluster/connectivity"

// bfsLabels labels every atom reachable from an edge with a component number.
// Seeds are taken in edge order so labelling is deterministic.
func bfsLabels(n int, edges []connectivity.Edge) (func(int) int, error) {
	adj, err := connectivity.Adjacency(n, edges)
	if err != nil {
		return nil, err
	}

	comp := make([]int, n)
	for v := range comp {
		comp[v] = -1
	}
	next := 0
	queue := make([]int, 0, n)
	for _, e := range edges {
		for _, seed := range [2]int{e.I, e.J} {
			if comp[seed] >= 0 {
				continue
			}
			// BFS to collect the component of seed
			queue = append(queue[:0], seed)
			comp[seed] = next
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, w := range adj[u] {
					if comp[w] < 0 {
						comp[w] = next
						queue = append(queue, w)
					}
				}
			}
			next++
		}
	}

	return func(v int) int { return comp[v] }, nil
}
