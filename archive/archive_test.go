package archive_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/atomcluster/archive"
)

func openStore(t *testing.T) *archive.Store {
	t.Helper()
	s, err := archive.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_SaveGet(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	id, err := s.Save(ctx, archive.Record{
		Source:    "dimer.xyz",
		Atoms:     5,
		Cutoff:    1.65,
		IndexBase: 1,
		Method:    "unionfind",
		Clusters:  [][]int{{1, 2, 3}, {4, 5}},
		Sizes:     map[int]int{0: 3, 1: 2},
	})
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err)

	rec, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5}}, rec.Clusters)
	assert.Equal(t, map[int]int{0: 3, 1: 2}, rec.Sizes)
	assert.False(t, rec.CreatedAt.IsZero())

	_, err = s.Get(ctx, "nope")
	assert.ErrorIs(t, err, archive.ErrNotFound)
}

func TestStore_ListDelete(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := s.Save(ctx, archive.Record{ID: "b", CreatedAt: base.Add(time.Hour)})
	require.NoError(t, err)
	_, err = s.Save(ctx, archive.Record{ID: "a", CreatedAt: base.Add(2 * time.Hour)})
	require.NoError(t, err)
	_, err = s.Save(ctx, archive.Record{ID: "c", CreatedAt: base})
	require.NoError(t, err)

	ids, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, ids)

	require.NoError(t, s.Delete(ctx, "b"))
	assert.ErrorIs(t, s.Delete(ctx, "b"), archive.ErrNotFound)
	ids, err = s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, ids)
}

func TestStore_CanceledContext(t *testing.T) {
	s := openStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Save(ctx, archive.Record{})
	assert.ErrorIs(t, err, context.Canceled)
	_, err = s.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestStore_Reopen verifies records survive closing the file.
func TestStore_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "runs.db")
	s, err := archive.Open(path)
	require.NoError(t, err)
	id, err := s.Save(ctx, archive.Record{Source: "x.xyz"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = archive.Open(path)
	require.NoError(t, err)
	defer s.Close()
	rec, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "x.xyz", rec.Source)
}
