// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/arxiv-sampler/pkg/types"
)

func testCatalog(t *testing.T) (*Catalog, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "runs.db")
	cat, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { cat.Close() })
	return cat, path
}

func sampleRun(n int) types.RunRecord {
	return types.RunRecord{
		InputPath:  "arxiv-metadata-oai-snapshot.json",
		OutputPath: "arxiv_sample.json",
		Requested:  n,
		LinesRead:  n,
		Written:    n - 1,
		Skipped:    1,
		BytesRead:  int64(n) * 512,
		StartedAt:  time.Now().UTC().Truncate(time.Millisecond),
		Duration:   1234 * time.Millisecond,
	}
}

func TestRecordAssignsID(t *testing.T) {
	cat, _ := testCatalog(t)
	ctx := context.Background()

	rec := sampleRun(100)
	require.NoError(t, cat.Record(ctx, &rec))
	assert.EqualValues(t, 1, rec.ID)

	second := sampleRun(200)
	require.NoError(t, cat.Record(ctx, &second))
	assert.EqualValues(t, 2, second.ID)
}

func TestListNewestFirst(t *testing.T) {
	cat, _ := testCatalog(t)
	ctx := context.Background()

	for _, n := range []int{10, 20, 30} {
		rec := sampleRun(n)
		require.NoError(t, cat.Record(ctx, &rec))
	}

	runs, err := cat.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	assert.Equal(t, 30, runs[0].Requested)
	assert.Equal(t, 20, runs[1].Requested)
	assert.Equal(t, 10, runs[2].Requested)
}

func TestListLimit(t *testing.T) {
	cat, _ := testCatalog(t)
	ctx := context.Background()

	for _, n := range []int{10, 20, 30} {
		rec := sampleRun(n)
		require.NoError(t, cat.Record(ctx, &rec))
	}

	runs, err := cat.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, 30, runs[0].Requested)
}

func TestListEmptyCatalog(t *testing.T) {
	cat, _ := testCatalog(t)

	runs, err := cat.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestRoundTripFields(t *testing.T) {
	cat, _ := testCatalog(t)
	ctx := context.Background()

	rec := sampleRun(250)
	require.NoError(t, cat.Record(ctx, &rec))

	runs, err := cat.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	got := runs[0]
	assert.Equal(t, rec.InputPath, got.InputPath)
	assert.Equal(t, rec.OutputPath, got.OutputPath)
	assert.Equal(t, rec.Requested, got.Requested)
	assert.Equal(t, rec.LinesRead, got.LinesRead)
	assert.Equal(t, rec.Written, got.Written)
	assert.Equal(t, rec.Skipped, got.Skipped)
	assert.Equal(t, rec.BytesRead, got.BytesRead)
	assert.Equal(t, rec.Duration, got.Duration)
	assert.True(t, rec.StartedAt.Equal(got.StartedAt))
}

func TestPersistsAcrossReopen(t *testing.T) {
	cat, path := testCatalog(t)
	ctx := context.Background()

	rec := sampleRun(100)
	require.NoError(t, cat.Record(ctx, &rec))
	require.NoError(t, cat.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	runs, err := reopened.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestOpenCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "runs.db")
	cat, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, cat.Close())
}
