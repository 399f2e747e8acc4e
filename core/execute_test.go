package core

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/hpps/internal/contract"
	"github.com/huangsam/hpps/internal/scorestore"
	"github.com/huangsam/hpps/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// testConfig builds a validated config that scores path and writes JSON to
// a temp file, keeping stdout clean during tests.
func testConfig(t *testing.T, inputPath string) *contract.Config {
	t.Helper()
	cfg := &contract.Config{
		InputPath:   inputPath,
		ResultLimit: contract.DefaultResultLimit,
		Workers:     4,
		Precision:   contract.DefaultPrecision,
		Output:      schema.JSONOut,
		OutputFile:  filepath.Join(t.TempDir(), "out.json"),
		Params:      schema.DefaultEngineParams(),
	}
	return cfg
}

func writeMetrics(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metrics.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

// TestExecuteScore tests single-candidate scoring end to end with a mocked
// store.
func TestExecuteScore(t *testing.T) {
	path := writeMetrics(t, `{"candidate":"alice","cf_rating":1900,"real_projects_count":20,"active_months":36}`)
	cfg := testConfig(t, path)

	store := &scorestore.MockScoreStore{}
	store.On("BeginRun", mock.Anything, mock.Anything).Return(int64(7), nil)
	store.On("RecordResult", int64(7), mock.Anything).Return(nil)
	store.On("EndRun", int64(7), mock.Anything, 1).Return(nil)

	mgr := &scorestore.MockStoreManager{}
	mgr.On("GetScoreStore").Return(store)

	require.NoError(t, ExecuteScore(context.Background(), cfg, mgr))
	store.AssertExpectations(t)

	raw, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	var payload struct {
		Results []struct {
			Candidate string  `json:"candidate"`
			Final     float64 `json:"hpps"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(raw, &payload))
	require.Len(t, payload.Results, 1)
	assert.Equal(t, "alice", payload.Results[0].Candidate)
	assert.Greater(t, payload.Results[0].Final, 0.0)
}

// TestExecuteScoreRejectsBatch verifies that an array document is routed to
// the batch command instead.
func TestExecuteScoreRejectsBatch(t *testing.T) {
	path := writeMetrics(t, `[{"candidate":"a"},{"candidate":"b"}]`)
	err := ExecuteScore(context.Background(), testConfig(t, path), nil)
	assert.ErrorContains(t, err, "exactly one candidate")
}

// TestExecuteBatch tests multi-candidate scoring with ranking and store
// recording.
func TestExecuteBatch(t *testing.T) {
	path := writeMetrics(t, `[
		{"candidate":"weak","cf_rating":900},
		{"candidate":"strong","cf_rating":2400,"cf_hard_problem_ratio":0.6,"real_projects_count":30,"active_months":48,"activity_frequency":25,"longest_streak":200}
	]`)
	cfg := testConfig(t, path)

	store := &scorestore.MockScoreStore{}
	store.On("BeginRun", mock.Anything, mock.Anything).Return(int64(3), nil)
	store.On("RecordResult", int64(3), mock.Anything).Return(nil).Times(2)
	store.On("EndRun", int64(3), mock.Anything, 2).Return(nil)

	mgr := &scorestore.MockStoreManager{}
	mgr.On("GetScoreStore").Return(store)

	require.NoError(t, ExecuteBatch(context.Background(), cfg, mgr))
	store.AssertExpectations(t)

	raw, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	var payload struct {
		Results []struct {
			Candidate string `json:"candidate"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(raw, &payload))
	require.Len(t, payload.Results, 2)
	assert.Equal(t, "strong", payload.Results[0].Candidate)
	assert.Equal(t, "weak", payload.Results[1].Candidate)
}

// TestExecuteBatchEmptyDocument verifies an empty array is an error.
func TestExecuteBatchEmptyDocument(t *testing.T) {
	path := writeMetrics(t, `[]`)
	err := ExecuteBatch(context.Background(), testConfig(t, path), nil)
	assert.ErrorContains(t, err, "no candidates")
}

// TestExecuteBatchStoreFailureDegrades verifies that a broken store never
// blocks scoring.
func TestExecuteBatchStoreFailureDegrades(t *testing.T) {
	path := writeMetrics(t, `[{"candidate":"solo","cf_rating":1500}]`)
	cfg := testConfig(t, path)

	store := &scorestore.MockScoreStore{}
	store.On("BeginRun", mock.Anything, mock.Anything).Return(int64(0), assert.AnError)

	mgr := &scorestore.MockStoreManager{}
	mgr.On("GetScoreStore").Return(store)

	require.NoError(t, ExecuteBatch(context.Background(), cfg, mgr))
	store.AssertNotCalled(t, "RecordResult", mock.Anything, mock.Anything)
}

// TestBeginRunNilManager verifies scoring runs without any store at all.
func TestBeginRunNilManager(t *testing.T) {
	cfg := testConfig(t, "-")
	assert.Equal(t, int64(0), beginRun(nil, cfg, time.Now(), 1))
}
