package cluster_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/atomcluster/cluster"
	"github.com/katalvlaran/atomcluster/connectivity"
)

var allMethods = []cluster.Method{cluster.MethodUnionFind, cluster.MethodBFS, cluster.MethodRescan}

// membership canonicalises a partition into sorted member lists ordered by
// their smallest member, so tests never depend on key assignment.
func membership(p cluster.Partition) [][]int {
	out := make([][]int, 0, len(p))
	for _, m := range p {
		c := append([]int(nil), m...)
		sort.Ints(c)
		out = append(out, c)
	}
	sort.Slice(out, func(a, b int) bool { return out[a][0] < out[b][0] })
	return out
}

// randomEdges draws m random pairs over n atoms with a fixed seed.
func randomEdges(n, m int, seed int64) []connectivity.Edge {
	r := rand.New(rand.NewSource(seed))
	edges := make([]connectivity.Edge, 0, m)
	for len(edges) < m {
		i, j := r.Intn(n), r.Intn(n)
		if i == j {
			continue
		}
		if i > j {
			i, j = j, i
		}
		edges = append(edges, connectivity.Edge{I: i, J: j})
	}
	return edges
}

// TestMerge_ChainAndPair covers the chain (0,1),(1,2) plus the separate pair (3,4).
func TestMerge_ChainAndPair(t *testing.T) {
	edges := []connectivity.Edge{{I: 0, J: 1}, {I: 1, J: 2}, {I: 3, J: 4}}
	for _, m := range allMethods {
		t.Run(string(m), func(t *testing.T) {
			p, err := cluster.Merge(5, edges, cluster.WithMethod(m))
			require.NoError(t, err)
			assert.Equal(t, [][]int{{0, 1, 2}, {3, 4}}, membership(p))
		})
	}
}

// TestMerge_IsolatedAtom verifies an atom without neighbours is never clustered.
func TestMerge_IsolatedAtom(t *testing.T) {
	p, err := cluster.Merge(3, []connectivity.Edge{{I: 0, J: 1}})
	require.NoError(t, err)
	assert.NotContains(t, p.Atoms(), 2)
	assert.Equal(t, []int{0, 0, -1}, p.Label(3))

	p, err = cluster.Merge(1, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Len())
}

func TestMerge_Empty(t *testing.T) {
	for _, m := range allMethods {
		p, err := cluster.Merge(10, []connectivity.Edge{}, cluster.WithMethod(m))
		require.NoError(t, err)
		assert.NotNil(t, p)
		assert.Equal(t, 0, p.Len())
	}
}

// TestMerge_DuplicatesAndSelfPairs verifies set-based membership.
func TestMerge_DuplicatesAndSelfPairs(t *testing.T) {
	edges := []connectivity.Edge{{I: 0, J: 1}, {I: 0, J: 1}, {I: 1, J: 0}, {I: 1, J: 1}, {I: 2, J: 2}, {I: 3, J: 4}, {I: 4, J: 3}}
	for _, m := range allMethods {
		t.Run(string(m), func(t *testing.T) {
			p, err := cluster.Merge(5, edges, cluster.WithMethod(m))
			require.NoError(t, err)
			assert.Equal(t, [][]int{{0, 1}, {2}, {3, 4}}, membership(p))
		})
	}
}

func TestMerge_Errors(t *testing.T) {
	_, err := cluster.Merge(3, []connectivity.Edge{{I: 0, J: 3}})
	assert.ErrorIs(t, err, cluster.ErrIndexOutOfRange)

	_, err = cluster.Merge(3, []connectivity.Edge{{I: -1, J: 2}})
	assert.ErrorIs(t, err, cluster.ErrNegativeIndex)

	_, err = cluster.Merge(-1, nil)
	assert.ErrorIs(t, err, cluster.ErrInvalidAtomCount)

	_, err = cluster.Merge(3, nil, cluster.WithMethod("louvain"))
	assert.ErrorIs(t, err, cluster.ErrOptionViolation)

	_, err = cluster.ParseMethod("nope")
	assert.ErrorIs(t, err, cluster.ErrOptionViolation)
	m, err := cluster.ParseMethod("bfs")
	require.NoError(t, err)
	assert.Equal(t, cluster.MethodBFS, m)
}

// TestMerge_PartitionInvariant checks disjointness and exact coverage of edge endpoints.
func TestMerge_PartitionInvariant(t *testing.T) {
	const n = 300
	edges := randomEdges(n, 220, 11)
	p, err := cluster.Merge(n, edges)
	require.NoError(t, err)

	owner := make(map[int]int)
	for k, members := range p {
		require.NotEmpty(t, members)
		for _, v := range members {
			prev, dup := owner[v]
			require.False(t, dup, "atom %d in clusters %d and %d", v, prev, k)
			owner[v] = k
		}
	}
	endpoints := make(map[int]bool)
	for _, e := range edges {
		endpoints[e.I] = true
		endpoints[e.J] = true
		assert.Equal(t, owner[e.I], owner[e.J], "edge %v split across clusters", e)
	}
	assert.Len(t, owner, len(endpoints))
	for v := range endpoints {
		assert.Contains(t, owner, v)
	}
}

// TestMerge_MethodsAgree verifies every method yields the identical Partition,
// keys included, because keys come from the shared first-appearance rule.
func TestMerge_MethodsAgree(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		edges := randomEdges(120, 90, seed)
		want, err := cluster.Merge(120, edges)
		require.NoError(t, err)
		for _, m := range allMethods[1:] {
			got, err := cluster.Merge(120, edges, cluster.WithMethod(m))
			require.NoError(t, err)
			assert.Equal(t, want, got, "seed=%d method=%s", seed, m)
		}
	}
}

// TestMerge_Idempotent feeds a merged result back as chain edges and expects
// the same membership.
func TestMerge_Idempotent(t *testing.T) {
	edges := randomEdges(80, 60, 5)
	first, err := cluster.Merge(80, edges)
	require.NoError(t, err)

	var again []connectivity.Edge
	for _, members := range first {
		for i := 1; i < len(members); i++ {
			again = append(again, connectivity.Edge{I: members[0], J: members[i]})
		}
	}
	second, err := cluster.Merge(80, again)
	require.NoError(t, err)
	assert.Equal(t, membership(first), membership(second))
}
