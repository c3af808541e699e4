package connectivity_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/atomcluster/connectivity"
	"github.com/katalvlaran/atomcluster/geometry"
)

// twoFragments is the line: 0-1-2 bonded, 3-4 bonded, far apart.
func twoFragments() []geometry.Vec3 {
	return []geometry.Vec3{
		{0, 0, 0},
		{1, 0, 0},
		{2, 0, 0},
		{10, 0, 0},
		{10.5, 0, 0},
	}
}

// randomCloud returns n points in a cube of the given side, seeded for reproducibility.
func randomCloud(n int, side float64, seed int64) []geometry.Vec3 {
	r := rand.New(rand.NewSource(seed))
	pts := make([]geometry.Vec3, n)
	for i := range pts {
		pts[i] = geometry.Vec3{r.Float64() * side, r.Float64() * side, r.Float64()*side - side/2}
	}
	return pts
}

func TestBuild_TwoFragments(t *testing.T) {
	edges, err := connectivity.Build(twoFragments(), connectivity.DefaultCutoff)
	require.NoError(t, err)
	assert.Equal(t, []connectivity.Edge{{0, 1}, {1, 2}, {3, 4}}, edges)
}

// TestBuild_StrictCutoff verifies a pair exactly at the cutoff is not connected.
func TestBuild_StrictCutoff(t *testing.T) {
	pts := []geometry.Vec3{{0, 0, 0}, {1.5, 0, 0}, {0, 1.4999, 0}}
	edges, err := connectivity.Build(pts, 1.5)
	require.NoError(t, err)
	assert.Equal(t, []connectivity.Edge{{0, 2}}, edges)

	edges, err = connectivity.Build(pts, 1.5, connectivity.WithMethod(connectivity.MethodCellList))
	require.NoError(t, err)
	assert.Equal(t, []connectivity.Edge{{0, 2}}, edges)
}

// TestBuild_DegenerateCutoff verifies c ≤ 0 and NaN yield no edges and no error.
func TestBuild_DegenerateCutoff(t *testing.T) {
	pts := []geometry.Vec3{{0, 0, 0}, {0, 0, 0}}
	for _, c := range []float64{0, -1, math.NaN()} {
		edges, err := connectivity.Build(pts, c)
		require.NoError(t, err)
		assert.Empty(t, edges)
	}
}

func TestBuild_TrivialInputs(t *testing.T) {
	edges, err := connectivity.Build(nil, 1)
	require.NoError(t, err)
	assert.Empty(t, edges)

	edges, err = connectivity.Build([]geometry.Vec3{{1, 1, 1}}, 1)
	require.NoError(t, err)
	assert.Empty(t, edges)
}

func TestBuild_Errors(t *testing.T) {
	_, err := connectivity.Build([]geometry.Vec3{{0, 0, 0}, {math.NaN(), 0, 0}}, 1)
	assert.ErrorIs(t, err, connectivity.ErrNonFiniteCoordinate)

	_, err = connectivity.Build(twoFragments(), 1, connectivity.WithWorkers(-2))
	assert.ErrorIs(t, err, connectivity.ErrOptionViolation)

	_, err = connectivity.Build(twoFragments(), 1, connectivity.WithMethod("octree"))
	assert.ErrorIs(t, err, connectivity.ErrOptionViolation)
}

// TestBuild_ThresholdCorrectness checks (i,j) is an edge iff distance < c, over a random cloud.
func TestBuild_ThresholdCorrectness(t *testing.T) {
	pts := randomCloud(150, 8, 7)
	const c = 1.65
	edges, err := connectivity.Build(pts, c)
	require.NoError(t, err)

	got := make(map[connectivity.Edge]bool, len(edges))
	for _, e := range edges {
		require.Less(t, e.I, e.J)
		got[e] = true
	}
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			want := geometry.Distance(pts[i], pts[j]) < c
			assert.Equal(t, want, got[connectivity.Edge{I: i, J: j}], "pair (%d,%d)", i, j)
		}
	}
}

// TestBuild_MethodsAgree verifies cell lists and parallel scans reproduce the
// sequential all-pairs output exactly, including order.
func TestBuild_MethodsAgree(t *testing.T) {
	pts := randomCloud(600, 12, 42)
	want, err := connectivity.Build(pts, 1.65)
	require.NoError(t, err)
	require.NotEmpty(t, want)

	cells, err := connectivity.Build(pts, 1.65, connectivity.WithMethod(connectivity.MethodCellList))
	require.NoError(t, err)
	assert.Equal(t, want, cells)

	for _, w := range []int{1, 2, 4, 9} {
		par, err := connectivity.Build(pts, 1.65, connectivity.WithWorkers(w))
		require.NoError(t, err)
		assert.Equal(t, want, par, "workers=%d", w)
	}
}

// TestBuild_Deterministic verifies repeated runs yield the identical edge list.
func TestBuild_Deterministic(t *testing.T) {
	pts := randomCloud(200, 6, 3)
	first, err := connectivity.Build(pts, 1.2, connectivity.WithWorkers(3))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := connectivity.Build(pts, 1.2, connectivity.WithWorkers(3))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestAdjacency(t *testing.T) {
	adj, err := connectivity.Adjacency(5, []connectivity.Edge{{0, 1}, {1, 2}, {3, 3}})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1}, {0, 2}, {1}, {3}, nil}, adj)

	_, err = connectivity.Adjacency(2, []connectivity.Edge{{0, 2}})
	assert.ErrorIs(t, err, connectivity.ErrIndexOutOfRange)

	_, err = connectivity.Adjacency(2, []connectivity.Edge{{-1, 0}})
	assert.ErrorIs(t, err, connectivity.ErrIndexOutOfRange)
}
