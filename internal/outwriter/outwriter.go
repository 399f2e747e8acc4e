// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/huangsam/hpps/internal/contract"
	"github.com/huangsam/hpps/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteResults prints scoring results using the configured output format.
func (ow *OutWriter) WriteResults(results []schema.Result, failures []schema.BatchFailure, cfg *contract.Config, duration time.Duration) error {
	return PrintResults(results, failures, cfg, duration)
}

// WriteMetricsDefinitions prints the dimension and metric definitions using the configured output format.
func (ow *OutWriter) WriteMetricsDefinitions(cfg *contract.Config) error {
	return PrintMetricsDefinitions(cfg)
}
