package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftcheck/driftcheck/internal/adapter/store/sqlite"
	"github.com/driftcheck/driftcheck/internal/store"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleRun(id string, ts time.Time) store.Run {
	return store.Run{
		RunID:     id,
		Timestamp: ts,
		Templates: 3,
		Drifted:   1,
		Failed:    1,
	}
}

func TestCreateAndGetRun(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	ts := time.Date(2025, 10, 21, 14, 30, 52, 0, time.UTC)

	require.NoError(t, s.CreateRun(ctx, sampleRun("run-1", ts)))

	got, err := s.GetRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "run-1", got.RunID)
	assert.Equal(t, ts, got.Timestamp)
	assert.Equal(t, 3, got.Templates)
	assert.Equal(t, 1, got.Drifted)
	assert.Equal(t, 1, got.Failed)
}

func TestGetRunNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetRun(context.Background(), "missing")
	assert.Error(t, err)
}

func TestListRunsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 10, 21, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.CreateRun(ctx, sampleRun("run-old", base)))
	require.NoError(t, s.CreateRun(ctx, sampleRun("run-new", base.Add(time.Hour))))

	runs, err := s.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-new", runs[0].RunID)
	assert.Equal(t, "run-old", runs[1].RunID)
}

func TestListRunsHonorsLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 10, 21, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.CreateRun(ctx, sampleRun(store.GenerateRunID(base.Add(time.Duration(i)*time.Minute)), base.Add(time.Duration(i)*time.Minute))))
	}

	runs, err := s.ListRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestSaveAndGetResults(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreateRun(ctx, sampleRun("run-1", time.Now().UTC().Truncate(time.Second))))
	require.NoError(t, s.SaveResults(ctx, []store.TemplateRecord{
		{
			RunID:        "run-1",
			Source:       "motd.tpl",
			Target:       "/etc/motd",
			Drifted:      true,
			Hunks:        2,
			LinesRemoved: 1,
			LinesAdded:   3,
		},
		{
			RunID:  "run-1",
			Source: "broken.tpl",
			Target: "/etc/broken",
			Error:  "read /etc/broken: no such file",
		},
	}))

	results, err := s.GetResultsByRun(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].Drifted)
	assert.Equal(t, 2, results[0].Hunks)
	assert.Equal(t, "read /etc/broken: no such file", results[1].Error)
}

func TestSaveResultsRequiresExistingRun(t *testing.T) {
	s := newTestStore(t)
	err := s.SaveResults(context.Background(), []store.TemplateRecord{
		{RunID: "ghost", Source: "x.tpl", Target: "x"},
	})
	assert.Error(t, err, "foreign key constraint should reject orphan results")
}

func TestSaveResultsEmptySlice(t *testing.T) {
	s := newTestStore(t)
	assert.NoError(t, s.SaveResults(context.Background(), nil))
}
