// Package parquet provides data structures and functions for exporting hpps
// scoring data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/hpps/schema"
	"github.com/parquet-go/parquet-go"
)

// ScoreRecord represents one scored candidate in a flat, columnar-friendly
// shape. This struct maps to the hpps_results database table.
type ScoreRecord struct {
	// Candidate is the identifier of the scored candidate
	Candidate string `parquet:"candidate,snappy"`

	// Final is the composite HPPS in [0,1]
	Final float64 `parquet:"hpps,snappy"`

	// Base is the weighted dimension sum before the weakest-link penalty
	Base float64 `parquet:"base_hpps,snappy"`

	// The four dimension scores, each in [0,1]
	AD  float64 `parquet:"ad,snappy"`
	EAP float64 `parquet:"eap,snappy"`
	CCL float64 `parquet:"ccl,snappy"`
	LA  float64 `parquet:"la,snappy"`

	// PenaltyApplied reports whether the weakest-link penalty fired
	PenaltyApplied bool `parquet:"penalty_applied,snappy"`

	// PenaltyFactor is the applied multiplier (1.0 when no penalty)
	PenaltyFactor float64 `parquet:"penalty_factor,snappy"`

	// WarningCount is the number of non-fatal input warnings
	WarningCount int32 `parquet:"warning_count,snappy"`

	// Label is the plain potential band for the final score
	Label string `parquet:"label,snappy"`

	// ScoredAt is when the candidate was scored (nanosecond TIMESTAMP)
	ScoredAt time.Time `parquet:"scored_at,snappy"`
}

// FromResults converts engine results into flat parquet records.
// labelFor supplies the plain potential band for a final score.
func FromResults(results []schema.Result, labelFor func(float64) string) []ScoreRecord {
	records := make([]ScoreRecord, 0, len(results))
	for _, r := range results {
		records = append(records, ScoreRecord{
			Candidate:      r.Candidate,
			Final:          r.Final,
			Base:           r.Base,
			AD:             r.AD,
			EAP:            r.EAP,
			CCL:            r.CCL,
			LA:             r.LA,
			PenaltyApplied: r.PenaltyApplied,
			PenaltyFactor:  r.PenaltyFactor,
			WarningCount:   int32(len(r.Warnings)),
			Label:          labelFor(r.Final),
			ScoredAt:       r.ScoredAt,
		})
	}
	return records
}

// WriteScoreRecords writes a slice of ScoreRecord structs to a Parquet file.
func WriteScoreRecords(data []ScoreRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the ScoreRecord struct tags
	writer := parquet.NewGenericWriter[ScoreRecord](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
