package scorestore

import (
	"testing"
	"time"

	"github.com/huangsam/hpps/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult(candidate string, final float64, scoredAt time.Time) schema.Result {
	return schema.Result{
		Candidate:     candidate,
		Final:         final,
		Base:          final,
		AD:            0.7,
		EAP:           0.6,
		CCL:           0.65,
		LA:            0.5,
		PenaltyFactor: 1.0,
		Breakdown: map[schema.MetricKey]float64{
			schema.MetricRating:   0.42,
			schema.MetricProjects: 0.24,
		},
		ScoredAt: scoredAt,
	}
}

func TestScoreStore_NoneBackend(t *testing.T) {
	store, err := NewScoreStore(schema.NoneBackend, "")
	require.NoError(t, err)
	require.NotNil(t, store)

	// BeginRun should return 0 for NoneBackend
	runID, err := store.BeginRun(time.Now(), map[string]any{"workers": 4})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), runID)

	// Other operations should not error
	assert.NoError(t, store.RecordResult(1, sampleResult("alice", 0.8, time.Now())))
	assert.NoError(t, store.EndRun(1, time.Now(), 1))

	results, err := store.ListResults(10)
	assert.NoError(t, err)
	assert.Empty(t, results)

	assert.NoError(t, store.Close())
}

func TestScoreStore_SQLite(t *testing.T) {
	// Use in-memory SQLite for testing
	store, err := NewScoreStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	startTime := time.Now().UTC()
	runID, err := store.BeginRun(startTime, map[string]any{
		"workers":    4,
		"candidates": 2,
	})
	require.NoError(t, err)
	assert.Greater(t, runID, int64(0))

	require.NoError(t, store.RecordResult(runID, sampleResult("alice", 0.82, startTime)))
	require.NoError(t, store.RecordResult(runID, sampleResult("bob", 0.35, startTime)))

	require.NoError(t, store.EndRun(runID, startTime.Add(2*time.Second), 2))
}

func TestScoreStore_SQLiteRoundTrip(t *testing.T) {
	store, err := NewScoreStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	scoredAt := time.Date(2026, 4, 10, 8, 0, 0, 0, time.UTC)
	runID, err := store.BeginRun(scoredAt, map[string]any{"workers": 2})
	require.NoError(t, err)

	stored := sampleResult("alice", 0.82, scoredAt)
	stored.Warnings = []schema.Warning{{Metric: "rating", Reason: "both cf_rating and lc_rating missing, using neutral 50th percentile"}}
	require.NoError(t, store.RecordResult(runID, stored))

	results, err := store.ListResults(10)
	require.NoError(t, err)
	require.Len(t, results, 1)

	got := results[0]
	assert.Equal(t, "alice", got.Candidate)
	assert.InDelta(t, 0.82, got.Final, 0.0001)
	assert.InDelta(t, 0.7, got.AD, 0.0001)
	assert.True(t, got.ScoredAt.Equal(scoredAt))
	require.Len(t, got.Warnings, 1)
	assert.Equal(t, "rating", got.Warnings[0].Metric)
	assert.InDelta(t, 0.42, got.Breakdown[schema.MetricRating], 0.0001)
}

func TestScoreStore_ListResultsOrdering(t *testing.T) {
	store, err := NewScoreStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	now := time.Now().UTC()

	// First run
	run1, err := store.BeginRun(now, nil)
	require.NoError(t, err)
	require.NoError(t, store.RecordResult(run1, sampleResult("old-low", 0.2, now)))
	require.NoError(t, store.RecordResult(run1, sampleResult("old-high", 0.9, now)))

	// Second run
	run2, err := store.BeginRun(now.Add(time.Minute), nil)
	require.NoError(t, err)
	require.NoError(t, store.RecordResult(run2, sampleResult("new-low", 0.3, now)))
	require.NoError(t, store.RecordResult(run2, sampleResult("new-high", 0.8, now)))

	// Newest run first, then by score within the run
	results, err := store.ListResults(0)
	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.Equal(t, "new-high", results[0].Candidate)
	assert.Equal(t, "new-low", results[1].Candidate)
	assert.Equal(t, "old-high", results[2].Candidate)
	assert.Equal(t, "old-low", results[3].Candidate)

	// Limit caps the result count
	limited, err := store.ListResults(3)
	require.NoError(t, err)
	assert.Len(t, limited, 3)
}

func TestScoreStore_ListRuns(t *testing.T) {
	store, err := NewScoreStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	now := time.Now().UTC()
	run1, err := store.BeginRun(now, map[string]any{"workers": 1})
	require.NoError(t, err)
	require.NoError(t, store.EndRun(run1, now.Add(time.Second), 3))

	run2, err := store.BeginRun(now.Add(time.Minute), nil)
	require.NoError(t, err)

	runs, err := store.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, run1, runs[0].RunID)
	assert.Equal(t, run2, runs[1].RunID)
	require.NotNil(t, runs[0].TotalCandidates)
	assert.Equal(t, int64(3), *runs[0].TotalCandidates)
	assert.Nil(t, runs[1].EndTime)
}

func TestScoreStore_GetStatus(t *testing.T) {
	store, err := NewScoreStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, schema.SQLiteBackend, status.Backend)
	assert.True(t, status.Connected)
	assert.Equal(t, int64(0), status.TotalRuns)

	now := time.Now().UTC()
	runID, err := store.BeginRun(now, nil)
	require.NoError(t, err)
	require.NoError(t, store.RecordResult(runID, sampleResult("alice", 0.8, now)))

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, int64(1), status.TotalRuns)
	assert.Equal(t, int64(1), status.TotalResults)
	assert.Equal(t, runID, status.LastRunID)
}

func TestScoreStore_Clear(t *testing.T) {
	store, err := NewScoreStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	now := time.Now().UTC()
	runID, err := store.BeginRun(now, nil)
	require.NoError(t, err)
	require.NoError(t, store.RecordResult(runID, sampleResult("alice", 0.8, now)))

	require.NoError(t, store.Clear())

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, int64(0), status.TotalRuns)
	assert.Equal(t, int64(0), status.TotalResults)
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, "`hpps_results`", quoteTableName("hpps_results", schema.MySQLBackend))
	assert.Equal(t, `"hpps_results"`, quoteTableName("hpps_results", schema.PostgreSQLBackend))
	assert.Equal(t, `"hpps_results"`, quoteTableName("hpps_results", schema.SQLiteBackend))
}

func TestFormatTime(t *testing.T) {
	ts := time.Date(2026, 5, 1, 10, 30, 0, 0, time.UTC)

	// SQLite stores RFC3339Nano strings
	v := formatTime(ts, schema.SQLiteBackend)
	s, ok := v.(string)
	require.True(t, ok)
	assert.Equal(t, ts.Format(time.RFC3339Nano), s)

	// MySQL and PostgreSQL use native time values
	_, ok = formatTime(ts, schema.MySQLBackend).(time.Time)
	assert.True(t, ok)
	_, ok = formatTime(ts, schema.PostgreSQLBackend).(time.Time)
	assert.True(t, ok)
}
