package core

import (
	"testing"

	"github.com/huangsam/hpps/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// strongCandidate returns metrics that score well on every dimension, so no
// weakest-link penalty fires.
func strongCandidate() *schema.CandidateMetrics {
	return &schema.CandidateMetrics{
		Candidate:              "strong",
		CFRating:               ptr(2100),
		CFHardProblemRatio:     ptr(0.6),
		LCMediumHardRatio:      ptr(0.7),
		RealProjectsCount:      ptr(30),
		ProjectComplexityScore: ptr(80),
		StackDiversity:         ptr(75),
		CodeQualityIndicators:  ptr(85),
		ActiveMonths:           ptr(48),
		ActivityFrequency:      ptr(25),
		RatingStability:        ptr(70),
		LongestStreak:          ptr(200),
		NewTechUsage:           ptr(80),
		ReusableComponents:     ptr(70),
		OSSEngagement:          ptr(60),
		CrossDomainWork:        ptr(65),
	}
}

// TestPenaltyFactor tests the weakest-link multiplier at its boundary
// policy points.
func TestPenaltyFactor(t *testing.T) {
	params := schema.DefaultEngineParams()

	tests := []struct {
		name     string
		minDim   float64
		expected float64
	}{
		{name: "at threshold no penalty", minDim: 0.4, expected: 1.0},
		{name: "well above threshold", minDim: 0.9, expected: 1.0},
		{name: "zero dimension hits floor", minDim: 0.0, expected: 0.5},
		{name: "negative treated as zero", minDim: -0.1, expected: 0.5},
		{name: "halfway to threshold", minDim: 0.2, expected: 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, penaltyFactor(tt.minDim, params), 0.0001)
		})
	}

	t.Run("just below threshold stays in open interval", func(t *testing.T) {
		factor := penaltyFactor(0.39, params)
		assert.Less(t, factor, 1.0)
		assert.Greater(t, factor, 0.5)
	})

	t.Run("monotonic in the weakest dimension", func(t *testing.T) {
		prev := 0.0
		for m := 0.0; m <= 0.5; m += 0.01 {
			factor := penaltyFactor(m, params)
			assert.GreaterOrEqual(t, factor, prev)
			prev = factor
		}
	})
}

// TestComputeHPPS tests the full pipeline on a well-formed candidate.
func TestComputeHPPS(t *testing.T) {
	params := schema.DefaultEngineParams()
	result, err := ComputeHPPS(strongCandidate(), params, NewDiagnostics())
	require.NoError(t, err)

	assert.Equal(t, "strong", result.Candidate)
	for name, score := range map[string]float64{
		"hpps": result.Final,
		"base": result.Base,
		"ad":   result.AD,
		"eap":  result.EAP,
		"ccl":  result.CCL,
		"la":   result.LA,
	} {
		assert.GreaterOrEqual(t, score, 0.0, name)
		assert.LessOrEqual(t, score, 1.0, name)
	}
	assert.False(t, result.PenaltyApplied)
	assert.InDelta(t, 1.0, result.PenaltyFactor, 0.0001)
	assert.InDelta(t, result.Base, result.Final, 0.0001)
	assert.NotEmpty(t, result.Breakdown)
}

// TestComputeHPPSPenalized verifies that one collapsed dimension drags the
// final score down and emits a penalty warning.
func TestComputeHPPSPenalized(t *testing.T) {
	params := schema.DefaultEngineParams()

	// Execution collapses: no projects and rock-bottom AI indicators.
	m := strongCandidate()
	m.RealProjectsCount = ptr(0)
	m.ProjectComplexityScore = ptr(0.01)
	m.StackDiversity = ptr(0.01)
	m.CodeQualityIndicators = ptr(0.01)

	diag := NewDiagnostics()
	result, err := ComputeHPPS(m, params, diag)
	require.NoError(t, err)

	assert.True(t, result.PenaltyApplied)
	assert.Less(t, result.PenaltyFactor, 1.0)
	assert.GreaterOrEqual(t, result.PenaltyFactor, 0.5)
	assert.Less(t, result.Final, result.Base)
	assert.InDelta(t, result.Base*result.PenaltyFactor, result.Final, 0.0001)

	found := false
	for _, w := range result.Warnings {
		if w.Metric == "hpps" {
			found = true
		}
	}
	assert.True(t, found, "expected a weakest-link warning")
}

// TestComputeHPPSPenaltyFloor verifies the final score never drops below
// half the base even for an all-zero candidate.
func TestComputeHPPSPenaltyFloor(t *testing.T) {
	params := schema.DefaultEngineParams()
	m := &schema.CandidateMetrics{
		Candidate:              "empty",
		ProjectComplexityScore: ptr(0),
		StackDiversity:         ptr(0),
		CodeQualityIndicators:  ptr(0),
		NewTechUsage:           ptr(0),
		ReusableComponents:     ptr(0),
		OSSEngagement:          ptr(0),
		CrossDomainWork:        ptr(0),
	}

	result, err := ComputeHPPS(m, params, NewDiagnostics())
	require.NoError(t, err)
	assert.InDelta(t, 0.5, result.PenaltyFactor, 0.0001)
	assert.GreaterOrEqual(t, result.Final, result.Base*0.5-0.0001)
}

// TestComputeHPPSExcludeLA tests the legacy three-dimension penalty trigger.
func TestComputeHPPSExcludeLA(t *testing.T) {
	// Only leverage collapses; the remaining dimensions stay healthy.
	m := strongCandidate()
	m.NewTechUsage = ptr(0.01)
	m.ReusableComponents = ptr(0.01)
	m.OSSEngagement = ptr(0.01)
	m.CrossDomainWork = ptr(0.01)

	params := schema.DefaultEngineParams()
	penalized, err := ComputeHPPS(m, params, NewDiagnostics())
	require.NoError(t, err)
	assert.True(t, penalized.PenaltyApplied)

	legacy := params.Clone()
	legacy.ExcludeLAFromPenalty = true
	exempt, err := ComputeHPPS(m, legacy, NewDiagnostics())
	require.NoError(t, err)
	assert.False(t, exempt.PenaltyApplied)
	assert.Greater(t, exempt.Final, penalized.Final)
}

// TestComputeHPPSDeterministic verifies bit-identical output for identical
// input.
func TestComputeHPPSDeterministic(t *testing.T) {
	params := schema.DefaultEngineParams()
	m := strongCandidate()

	first, err := ComputeHPPS(m, params, NewDiagnostics())
	require.NoError(t, err)
	second, err := ComputeHPPS(m, params, NewDiagnostics())
	require.NoError(t, err)

	assert.Equal(t, first.Final, second.Final)
	assert.Equal(t, first.Base, second.Base)
	assert.Equal(t, first.Breakdown, second.Breakdown)
}

// TestComputeHPPSNilParams verifies the configuration guard.
func TestComputeHPPSNilParams(t *testing.T) {
	_, err := ComputeHPPS(strongCandidate(), nil, NewDiagnostics())
	assert.ErrorIs(t, err, schema.ErrConfiguration)
}

// BenchmarkComputeHPPS measures single-candidate scoring throughput.
func BenchmarkComputeHPPS(b *testing.B) {
	params := schema.DefaultEngineParams()
	m := strongCandidate()
	for b.Loop() {
		_, _ = ComputeHPPS(m, params, nil)
	}
}
