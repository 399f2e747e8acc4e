package core

import (
	"fmt"

	"github.com/huangsam/hpps/schema"
)

// cfPercentile converts a Codeforces rating to an approximate global
// percentile on the 0-100 scale. Step table derived from published rating
// distribution snapshots.
func cfPercentile(rating float64) float64 {
	switch {
	case rating >= 3000:
		return 99.93
	case rating >= 2400:
		return 99.2
	case rating >= 2100:
		return 97.0
	case rating >= 1900:
		return 94.0
	case rating >= 1600:
		return 85.0
	case rating >= 1400:
		return 73.0
	case rating >= 1200:
		return 55.0
	case rating >= 1000:
		return 33.0
	case rating >= 800:
		return 11.0
	default:
		return 5.0
	}
}

// lcPercentile converts a LeetCode contest rating to an approximate global
// percentile on the 0-100 scale.
func lcPercentile(rating float64) float64 {
	switch {
	case rating >= 2500:
		return 97.63
	case rating >= 2200:
		return 91.19
	case rating >= 2000:
		return 79.98
	case rating >= 1850:
		return 63.77
	case rating >= 1750:
		return 49.98
	case rating >= 1600:
		return 27.35
	case rating >= 1500:
		return 15.09
	case rating >= 1400:
		return 6.66
	case rating >= 1200:
		return 0.83
	case rating >= 1000:
		return 0.4
	default:
		return 0.1
	}
}

// neutralRatingPercentile is the fallback when no rating is available at all.
const neutralRatingPercentile = 50.0

// bestRatingPercentile validates both platform ratings and resolves them to
// a single percentile. When both are present, CF wins if
// CF >= RatingSelectionRatio * LC. When both are absent the behavior depends
// on RequireRating: a neutral 50th-percentile fallback with a warning, or
// ErrMissingRequiredInput.
func bestRatingPercentile(m *schema.CandidateMetrics, p *schema.EngineParams, diag *Diagnostics) (float64, error) {
	cf, err := validateRating(m.CFRating, "cf_rating", diag)
	if err != nil {
		return 0, err
	}
	lc, err := validateRating(m.LCRating, "lc_rating", diag)
	if err != nil {
		return 0, err
	}

	switch {
	case cf != nil && lc != nil:
		if *cf >= p.RatingSelectionRatio**lc {
			return cfPercentile(*cf), nil
		}
		return lcPercentile(*lc), nil
	case cf != nil:
		return cfPercentile(*cf), nil
	case lc != nil:
		return lcPercentile(*lc), nil
	}

	if p.RequireRating {
		return 0, fmt.Errorf("%w: neither cf_rating nor lc_rating is present", schema.ErrMissingRequiredInput)
	}
	diag.Warn("rating", nil, "both cf_rating and lc_rating missing, using neutral 50th percentile")
	return neutralRatingPercentile, nil
}
