// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/huangsam/hpps/schema"
)

// StoreManager defines the interface for managing the score store.
// This allows the persistence layer to be mocked for testing.
type StoreManager interface {
	GetScoreStore() ScoreStore
}

// ScoreStore defines the interface for scoring history storage.
// This allows mocking the store for testing.
type ScoreStore interface {
	// BeginRun creates a new scoring run and returns its unique ID.
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// RecordResult stores one scored candidate under a run.
	RecordResult(runID int64, result schema.Result) error

	// EndRun updates the scoring run with completion data.
	EndRun(runID int64, endTime time.Time, totalCandidates int) error

	// ListResults returns up to limit stored results, newest first.
	// limit <= 0 means no limit.
	ListResults(limit int) ([]schema.Result, error)

	// ListRuns returns all recorded scoring runs, oldest first.
	ListRuns() ([]schema.RunRecord, error)

	// GetStatus returns status information about the score store.
	GetStatus() (schema.StoreStatus, error)

	// Clear removes all stored runs and results.
	Clear() error

	// Close closes the underlying connection.
	Close() error
}
