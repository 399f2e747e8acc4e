package core

// clamp01 clamps a value to [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// normRatio maps a value assumed to already be on a 0-1 scale into [0,1].
// Identity inside the range, clamped outside it.
func normRatio(v float64) float64 {
	return clamp01(v)
}

// normCount maps a non-negative count into [0,1], saturating at exactly
// maxCount. Monotonically non-decreasing in v.
func normCount(v, maxCount float64) float64 {
	if maxCount <= 0 {
		return 0
	}
	return clamp01(v / maxCount)
}

// normPercentile maps a 0-100 percentile into [0,1].
func normPercentile(v float64) float64 {
	return clamp01(v / 100.0)
}

// normAIScore maps an AI-derived score of ambiguous scale into [0,1].
// Values above threshold are treated as 0-100 and take the percentile path;
// values at or below it are treated as 0-1 and take the ratio path. See
// schema.DefaultScaleThreshold for why the boundary is 10.0 rather than 1.0,
// and for the documented 1-10 false-positive band.
func normAIScore(v, threshold float64) float64 {
	if v > threshold {
		return normPercentile(v)
	}
	return normRatio(v)
}
