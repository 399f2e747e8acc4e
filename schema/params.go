package schema

import (
	"fmt"
	"math"
)

// Default engine tuning values. Each one can be overridden through the
// validated EngineParams object; nothing in the engine reads ambient state.
const (
	// DefaultScaleThreshold drives dual-scale detection for AI-derived
	// scores: values above it are treated as 0-100 scale, values at or
	// below it as 0-1 scale. The naive "value <= 1.0" rule is unreliable
	// because a legitimate 0-1 score of exactly 1.0 is indistinguishable
	// from a 1%-on-0-100 score. This is a heuristic with a known
	// false-positive band: true 0-100 values between 1.0 and 10.0 are
	// misclassified as 0-1 scale. Accepted and documented, not hidden.
	DefaultScaleThreshold = 10.0

	// DefaultPenaltyThreshold is the weakest-link trigger: when the lowest
	// dimension score falls below it, the penalty multiplier kicks in.
	// The threshold itself is exclusive on the penalized side.
	DefaultPenaltyThreshold = 0.4

	// DefaultPenaltyMin and DefaultPenaltyMax bound the score reduction:
	// the penalty shaves between 30% and 50% off the base score, so the
	// multiplier never drops below 0.5.
	DefaultPenaltyMin = 0.3
	DefaultPenaltyMax = 0.5

	// DefaultRatingSelectionRatio governs best-rating selection: the CF
	// rating wins when CF >= ratio * LC.
	DefaultRatingSelectionRatio = 0.75

	// Saturation maxima for count-like metrics.
	DefaultMaxProjects          = 50.0
	DefaultMaxActiveMonths      = 60.0
	DefaultMaxStreakDays        = 365.0
	DefaultMaxActivityFrequency = 30.0
)

// WeightSumTolerance is the allowed drift when validating that a weight
// table sums to 1.0.
const WeightSumTolerance = 0.001

// EngineParams is the explicit configuration value object for the scoring
// engine. It is validated once, up front, and then passed into every
// calculation; per-candidate scoring never re-validates or mutates it.
type EngineParams struct {
	// DimensionWeights maps each dimension to its sub-metric weight table.
	// Every table must sum to 1.0 within WeightSumTolerance.
	DimensionWeights map[Dimension]map[MetricKey]float64

	// TopWeights combines the four dimension scores into the base HPPS.
	// Must sum to 1.0 within WeightSumTolerance.
	TopWeights map[Dimension]float64

	// PenaltyThreshold triggers the weakest-link penalty when the minimum
	// participating dimension score is strictly below it.
	PenaltyThreshold float64

	// PenaltyMin and PenaltyMax bound the fractional score reduction.
	PenaltyMin float64
	PenaltyMax float64

	// ExcludeLAFromPenalty restores the legacy three-dimension trigger
	// (AD, EAP, CCL only). By default all four dimensions participate.
	ExcludeLAFromPenalty bool

	// ScaleThreshold is the dual-scale detection boundary for AI scores.
	ScaleThreshold float64

	// RatingSelectionRatio picks CF over LC when CF >= ratio * LC.
	RatingSelectionRatio float64

	// RequireRating makes a wholly absent rating pair a hard error instead
	// of the neutral 50th-percentile fallback.
	RequireRating bool

	// Saturation maxima for count normalization.
	MaxProjects          float64
	MaxActiveMonths      float64
	MaxStreakDays        float64
	MaxActivityFrequency float64
}

// DefaultEngineParams returns a fully populated EngineParams with the
// default weight tables and tuning constants. The result always passes
// Validate.
func DefaultEngineParams() *EngineParams {
	weights := make(map[Dimension]map[MetricKey]float64, len(AllDimensions))
	for _, dim := range AllDimensions {
		weights[dim] = GetDefaultDimensionWeights(dim)
	}
	return &EngineParams{
		DimensionWeights:     weights,
		TopWeights:           GetDefaultTopWeights(),
		PenaltyThreshold:     DefaultPenaltyThreshold,
		PenaltyMin:           DefaultPenaltyMin,
		PenaltyMax:           DefaultPenaltyMax,
		ScaleThreshold:       DefaultScaleThreshold,
		RatingSelectionRatio: DefaultRatingSelectionRatio,
		MaxProjects:          DefaultMaxProjects,
		MaxActiveMonths:      DefaultMaxActiveMonths,
		MaxStreakDays:        DefaultMaxStreakDays,
		MaxActivityFrequency: DefaultMaxActivityFrequency,
	}
}

// Validate checks structural invariants of the parameter object. Violations
// return ErrConfiguration immediately; scoring never runs against an invalid
// parameter set.
func (p *EngineParams) Validate() error {
	for _, dim := range AllDimensions {
		table, ok := p.DimensionWeights[dim]
		if !ok || len(table) == 0 {
			return fmt.Errorf("%w: dimension %s has no weight table", ErrConfiguration, dim)
		}
		if sum := weightSum(table); math.Abs(sum-1.0) > WeightSumTolerance {
			return fmt.Errorf("%w: weights for dimension %s must sum to 1.0, got %.3f", ErrConfiguration, dim, sum)
		}
	}

	var topSum float64
	for _, dim := range AllDimensions {
		w, ok := p.TopWeights[dim]
		if !ok {
			return fmt.Errorf("%w: top-level weight for dimension %s is missing", ErrConfiguration, dim)
		}
		if w < 0 {
			return fmt.Errorf("%w: top-level weight for dimension %s is negative (%.3f)", ErrConfiguration, dim, w)
		}
		topSum += w
	}
	if math.Abs(topSum-1.0) > WeightSumTolerance {
		return fmt.Errorf("%w: top-level weights must sum to 1.0, got %.3f", ErrConfiguration, topSum)
	}

	if p.PenaltyThreshold <= 0 || p.PenaltyThreshold >= 1 {
		return fmt.Errorf("%w: penalty threshold must be in (0,1), got %.3f", ErrConfiguration, p.PenaltyThreshold)
	}
	if p.PenaltyMin < 0 || p.PenaltyMax >= 1 || p.PenaltyMin > p.PenaltyMax {
		return fmt.Errorf("%w: penalty range (%.3f, %.3f) must satisfy 0 <= min <= max < 1", ErrConfiguration, p.PenaltyMin, p.PenaltyMax)
	}
	if p.ScaleThreshold <= 0 {
		return fmt.Errorf("%w: scale threshold must be positive, got %.3f", ErrConfiguration, p.ScaleThreshold)
	}
	if p.RatingSelectionRatio <= 0 {
		return fmt.Errorf("%w: rating selection ratio must be positive, got %.3f", ErrConfiguration, p.RatingSelectionRatio)
	}
	for name, v := range map[string]float64{
		"max_projects":           p.MaxProjects,
		"max_active_months":      p.MaxActiveMonths,
		"max_streak_days":        p.MaxStreakDays,
		"max_activity_frequency": p.MaxActivityFrequency,
	} {
		if v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %.1f", ErrConfiguration, name, v)
		}
	}
	return nil
}

// Clone returns a deep copy so handlers can tweak parameters per request
// without touching the shared base.
func (p *EngineParams) Clone() *EngineParams {
	clone := *p
	clone.DimensionWeights = make(map[Dimension]map[MetricKey]float64, len(p.DimensionWeights))
	for dim, table := range p.DimensionWeights {
		inner := make(map[MetricKey]float64, len(table))
		for k, v := range table {
			inner[k] = v
		}
		clone.DimensionWeights[dim] = inner
	}
	clone.TopWeights = make(map[Dimension]float64, len(p.TopWeights))
	for dim, w := range p.TopWeights {
		clone.TopWeights[dim] = w
	}
	return &clone
}

func weightSum(table map[MetricKey]float64) float64 {
	var sum float64
	for _, w := range table {
		sum += w
	}
	return sum
}
