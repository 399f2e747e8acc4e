package scorestore

import (
	"time"

	"github.com/huangsam/hpps/internal/contract"
	"github.com/huangsam/hpps/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetScoreStore implements the StoreManager interface.
func (m *MockStoreManager) GetScoreStore() contract.ScoreStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.ScoreStore)
	return store
}

// MockScoreStore is a mock implementation of ScoreStore for testing.
type MockScoreStore struct {
	mock.Mock
}

var _ contract.ScoreStore = &MockScoreStore{} // Compile-time check

// BeginRun implements the ScoreStore interface.
func (m *MockScoreStore) BeginRun(startTime time.Time, configParams map[string]any) (int64, error) {
	args := m.Called(startTime, configParams)
	return args.Get(0).(int64), args.Error(1)
}

// RecordResult implements the ScoreStore interface.
func (m *MockScoreStore) RecordResult(runID int64, result schema.Result) error {
	args := m.Called(runID, result)
	return args.Error(0)
}

// EndRun implements the ScoreStore interface.
func (m *MockScoreStore) EndRun(runID int64, endTime time.Time, totalCandidates int) error {
	args := m.Called(runID, endTime, totalCandidates)
	return args.Error(0)
}

// ListResults implements the ScoreStore interface.
func (m *MockScoreStore) ListResults(limit int) ([]schema.Result, error) {
	args := m.Called(limit)
	results, _ := args.Get(0).([]schema.Result)
	return results, args.Error(1)
}

// ListRuns implements the ScoreStore interface.
func (m *MockScoreStore) ListRuns() ([]schema.RunRecord, error) {
	args := m.Called()
	runs, _ := args.Get(0).([]schema.RunRecord)
	return runs, args.Error(1)
}

// GetStatus implements the ScoreStore interface.
func (m *MockScoreStore) GetStatus() (schema.StoreStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.StoreStatus), args.Error(1)
}

// Clear implements the ScoreStore interface.
func (m *MockScoreStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}

// Close implements the ScoreStore interface.
func (m *MockScoreStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
