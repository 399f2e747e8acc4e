// Package schema has configs, models and shared constants for all parts of hpps.
package schema

import "time"

// CandidateMetrics holds the raw extracted metrics for a single candidate.
// Every metric is optional; nil means the upstream extractor produced no
// value. Fields use pointers so that an absent metric is distinguishable from
// a legitimate zero.
type CandidateMetrics struct {
	Candidate string `json:"candidate"` // Identifier for reporting; never scored

	// Algorithmic Depth inputs
	CFRating           *float64 `json:"cf_rating"`             // Codeforces rating (raw ladder points)
	LCRating           *float64 `json:"lc_rating"`             // LeetCode contest rating (raw ladder points)
	CFHardProblemRatio *float64 `json:"cf_hard_problem_ratio"` // Ratio in [0,1]
	LCMediumHardRatio  *float64 `json:"lc_medium_hard_ratio"`  // Ratio in [0,1]

	// Execution & Application Power inputs
	RealProjectsCount      *float64 `json:"real_projects_count"`      // Non-negative count
	ProjectComplexityScore *float64 `json:"project_complexity_score"` // AI score, 0-1 or 0-100
	StackDiversity         *float64 `json:"stack_diversity"`          // AI score, 0-1 or 0-100
	CodeQualityIndicators  *float64 `json:"code_quality_indicators"`  // AI score, 0-1 or 0-100

	// Consistency & Career Longevity inputs
	ActiveMonths      *float64 `json:"active_months"`      // Non-negative count
	ActivityFrequency *float64 `json:"activity_frequency"` // Ratio, or commits/month when > scale threshold
	RatingStability   *float64 `json:"rating_stability"`   // Ratio, or percentile when > scale threshold
	LongestStreak     *float64 `json:"longest_streak"`     // Days, non-negative count

	// Leverage & Adaptability inputs
	NewTechUsage       *float64 `json:"new_tech_usage"`      // AI score, 0-1 or 0-100
	ReusableComponents *float64 `json:"reusable_components"` // AI score, 0-1 or 0-100
	OSSEngagement      *float64 `json:"oss_engagement"`      // AI score, 0-1 or 0-100
	CrossDomainWork    *float64 `json:"cross_domain_work"`   // AI score, 0-1 or 0-100
}

// Warning records a non-fatal input problem encountered during scoring.
// Warnings accompany a result; they never block one.
type Warning struct {
	Metric string   `json:"metric"`          // Name of the offending metric
	Value  *float64 `json:"value,omitempty"` // Original value, nil when the metric was absent
	Reason string   `json:"reason"`          // Human-readable explanation
}

// Result is the outcome of scoring one candidate. All score fields are in
// [0,1] regardless of input pathology.
type Result struct {
	Candidate string `json:"candidate"`

	Final float64 `json:"hpps"`      // Final composite score
	Base  float64 `json:"base_hpps"` // Weighted dimension sum before the penalty

	AD  float64 `json:"ad"`  // Algorithmic Depth
	EAP float64 `json:"eap"` // Execution & Application Power
	CCL float64 `json:"ccl"` // Consistency & Career Longevity
	LA  float64 `json:"la"`  // Leverage & Adaptability

	PenaltyApplied bool    `json:"penalty_applied"`
	PenaltyFactor  float64 `json:"penalty_factor"` // 1.0 when no penalty

	// Breakdown holds the weighted normalized contribution of each metric
	// for debugging/tuning (explain mode).
	Breakdown map[MetricKey]float64 `json:"breakdown,omitempty"`

	Warnings []Warning `json:"warnings,omitempty"`

	ScoredAt time.Time `json:"scored_at"`
}

// DimensionScore returns the score for a named dimension.
func (r *Result) DimensionScore(dim Dimension) float64 {
	switch dim {
	case AlgorithmicDepth:
		return r.AD
	case ExecutionPower:
		return r.EAP
	case Consistency:
		return r.CCL
	case Leverage:
		return r.LA
	default:
		return 0
	}
}

// BatchFailure records a candidate whose scoring aborted with an error.
// Batch runs report failures alongside successful results instead of
// stopping the whole run.
type BatchFailure struct {
	Candidate string `json:"candidate"`
	Err       string `json:"error"`
}

// BatchOutput bundles the outcome of a batch scoring run.
type BatchOutput struct {
	Results  []Result       `json:"results"`
	Failures []BatchFailure `json:"failures,omitempty"`
}

// StoreStatus summarizes the persisted scoring history.
type StoreStatus struct {
	Backend      DatabaseBackend
	Connected    bool
	TotalRuns    int64
	TotalResults int64
	LastRunID    int64
	LastScoredAt time.Time
	TableSizes   map[string]int64
}

// RunRecord captures one persisted scoring run for export.
type RunRecord struct {
	RunID           int64
	StartTime       time.Time
	EndTime         *time.Time
	RunDurationMs   *int64
	TotalCandidates *int64
	ConfigParams    *string
}
