package core

import (
	"slices"

	"github.com/huangsam/hpps/schema"
)

// weightedSum combines normalized sub-metric scores with the dimension's
// weight table, re-clamping to absorb floating-point drift. Returns the
// dimension score and the per-metric weighted contributions for explain
// mode. Keys are summed in sorted order so the floating-point result is
// bit-identical across calls, as the scoring contract requires.
func weightedSum(normalized map[schema.MetricKey]float64, weights map[schema.MetricKey]float64) (float64, map[schema.MetricKey]float64) {
	keys := make([]schema.MetricKey, 0, len(normalized))
	for key := range normalized {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	breakdown := make(map[schema.MetricKey]float64, len(normalized))
	var raw float64
	for _, key := range keys {
		contrib := weights[key] * normalized[key]
		breakdown[key] = contrib
		raw += contrib
	}
	return clamp01(raw), breakdown
}

// computeAD calculates Algorithmic Depth from the best available rating
// percentile plus the hard-problem ratios.
func computeAD(m *schema.CandidateMetrics, p *schema.EngineParams, diag *Diagnostics) (float64, map[schema.MetricKey]float64, error) {
	best, err := bestRatingPercentile(m, p, diag)
	if err != nil {
		return 0, nil, err
	}
	cfHard, err := validateRatio(m.CFHardProblemRatio, "cf_hard_problem_ratio", diag)
	if err != nil {
		return 0, nil, err
	}
	lcMediumHard, err := validateRatio(m.LCMediumHardRatio, "lc_medium_hard_ratio", diag)
	if err != nil {
		return 0, nil, err
	}

	score, breakdown := weightedSum(map[schema.MetricKey]float64{
		schema.MetricRating:       normPercentile(best),
		schema.MetricCFHard:       normRatio(cfHard),
		schema.MetricLCMediumHard: normRatio(lcMediumHard),
	}, p.DimensionWeights[schema.AlgorithmicDepth])
	return score, breakdown, nil
}

// computeEAP calculates Execution & Application Power from the project count
// and three AI-derived indicators.
func computeEAP(m *schema.CandidateMetrics, p *schema.EngineParams, diag *Diagnostics) (float64, map[schema.MetricKey]float64, error) {
	projects, err := validateCount(m.RealProjectsCount, "real_projects_count", diag)
	if err != nil {
		return 0, nil, err
	}
	complexity, err := validateAIScore(m.ProjectComplexityScore, "project_complexity_score", diag)
	if err != nil {
		return 0, nil, err
	}
	stack, err := validateAIScore(m.StackDiversity, "stack_diversity", diag)
	if err != nil {
		return 0, nil, err
	}
	quality, err := validateAIScore(m.CodeQualityIndicators, "code_quality_indicators", diag)
	if err != nil {
		return 0, nil, err
	}

	score, breakdown := weightedSum(map[schema.MetricKey]float64{
		schema.MetricProjects:   normCount(projects, p.MaxProjects),
		schema.MetricComplexity: normAIScore(complexity, p.ScaleThreshold),
		schema.MetricStack:      normAIScore(stack, p.ScaleThreshold),
		schema.MetricQuality:    normAIScore(quality, p.ScaleThreshold),
	}, p.DimensionWeights[schema.ExecutionPower])
	return score, breakdown, nil
}

// computeCCL calculates Consistency & Career Longevity. activity_frequency
// and rating_stability arrive on an ambiguous scale; both go through the
// same dual-scale detection as AI scores instead of an inline <=1.0 check.
func computeCCL(m *schema.CandidateMetrics, p *schema.EngineParams, diag *Diagnostics) (float64, map[schema.MetricKey]float64, error) {
	months, err := validateCount(m.ActiveMonths, "active_months", diag)
	if err != nil {
		return 0, nil, err
	}
	frequency, err := validateAIScore(m.ActivityFrequency, "activity_frequency", diag)
	if err != nil {
		return 0, nil, err
	}
	stability, err := validateAIScore(m.RatingStability, "rating_stability", diag)
	if err != nil {
		return 0, nil, err
	}
	streak, err := validateCount(m.LongestStreak, "longest_streak", diag)
	if err != nil {
		return 0, nil, err
	}

	// Frequency above the scale threshold reads as commits/month and takes
	// the saturating count path; stability reads as a percentile.
	normFrequency := normRatio(frequency)
	if frequency > p.ScaleThreshold {
		normFrequency = normCount(frequency, p.MaxActivityFrequency)
	}
	normStability := normAIScore(stability, p.ScaleThreshold)

	score, breakdown := weightedSum(map[schema.MetricKey]float64{
		schema.MetricMonths:    normCount(months, p.MaxActiveMonths),
		schema.MetricFrequency: normFrequency,
		schema.MetricStability: normStability,
		schema.MetricStreak:    normCount(streak, p.MaxStreakDays),
	}, p.DimensionWeights[schema.Consistency])
	return score, breakdown, nil
}

// computeLA calculates Leverage & Adaptability from four AI-derived scores.
func computeLA(m *schema.CandidateMetrics, p *schema.EngineParams, diag *Diagnostics) (float64, map[schema.MetricKey]float64, error) {
	normalized := make(map[schema.MetricKey]float64, 4)
	for _, in := range []struct {
		key   schema.MetricKey
		value *float64
		name  string
	}{
		{schema.MetricNewTech, m.NewTechUsage, "new_tech_usage"},
		{schema.MetricReusable, m.ReusableComponents, "reusable_components"},
		{schema.MetricOSS, m.OSSEngagement, "oss_engagement"},
		{schema.MetricCrossDomain, m.CrossDomainWork, "cross_domain_work"},
	} {
		v, err := validateAIScore(in.value, in.name, diag)
		if err != nil {
			return 0, nil, err
		}
		normalized[in.key] = normAIScore(v, p.ScaleThreshold)
	}

	score, breakdown := weightedSum(normalized, p.DimensionWeights[schema.Leverage])
	return score, breakdown, nil
}
