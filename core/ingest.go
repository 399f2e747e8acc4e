package core

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/huangsam/hpps/schema"
)

// LoadCandidates reads a metrics document from path ("-" means stdin) and
// returns the candidates it contains. The document is either a single
// candidate object or an array of them; absent fields stay nil and flow into
// the validator's defaulting rules. A value of the wrong JSON type is a
// programmer/input error, not missing data.
func LoadCandidates(path string) ([]schema.CandidateMetrics, error) {
	var raw []byte
	var err error
	if path == "" || path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read metrics document: %w", err)
	}

	return DecodeCandidates(raw)
}

// DecodeCandidates parses a raw metrics document, accepting either a single
// candidate object or an array of them.
func DecodeCandidates(raw []byte) ([]schema.CandidateMetrics, error) {
	var batch []schema.CandidateMetrics
	if err := json.Unmarshal(raw, &batch); err == nil {
		return named(batch), nil
	}

	var single schema.CandidateMetrics
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, fmt.Errorf("%w: metrics document is not valid JSON: %v", schema.ErrValidation, err)
	}
	return named([]schema.CandidateMetrics{single}), nil
}

// named backfills a stable identifier for candidates that arrived without one.
func named(batch []schema.CandidateMetrics) []schema.CandidateMetrics {
	for i := range batch {
		if batch[i].Candidate == "" {
			batch[i].Candidate = fmt.Sprintf("candidate-%d", i+1)
		}
	}
	return batch
}
