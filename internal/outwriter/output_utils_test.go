package outwriter

import (
	"testing"

	"github.com/huangsam/hpps/internal/contract"
	"github.com/huangsam/hpps/schema"
	"github.com/stretchr/testify/assert"
)

// TestCreateFormatter tests precision handling in the float formatter.
func TestCreateFormatter(t *testing.T) {
	tests := []struct {
		name      string
		precision int
		value     float64
		expected  string
	}{
		{name: "default precision", precision: 3, value: 0.7254, expected: "0.725"},
		{name: "single digit", precision: 1, value: 0.7254, expected: "0.7"},
		{name: "max precision", precision: 4, value: 0.7254, expected: "0.7254"},
		{name: "rounds up", precision: 2, value: 0.666, expected: "0.67"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fmtFloat := createFormatter(tt.precision)
			assert.Equal(t, tt.expected, fmtFloat(tt.value))
		})
	}
}

// TestFormatTopMetricBreakdown tests the explain-mode contributor summary.
func TestFormatTopMetricBreakdown(t *testing.T) {
	tests := []struct {
		name      string
		breakdown map[schema.MetricKey]float64
		expected  string
	}{
		{
			name: "top three in descending order",
			breakdown: map[schema.MetricKey]float64{
				schema.MetricRating:   0.51,
				schema.MetricProjects: 0.32,
				schema.MetricMonths:   0.20,
				schema.MetricStreak:   0.05,
			},
			expected: "rating > projects > months",
		},
		{
			name: "ties break on name",
			breakdown: map[schema.MetricKey]float64{
				schema.MetricStack:   0.25,
				schema.MetricQuality: 0.25,
			},
			expected: "quality > stack",
		},
		{
			name: "tiny contributions are dropped",
			breakdown: map[schema.MetricKey]float64{
				schema.MetricRating: 0.4,
				schema.MetricStreak: 0.001,
			},
			expected: "rating",
		},
		{
			name:      "nothing meaningful",
			breakdown: map[schema.MetricKey]float64{schema.MetricOSS: 0.002},
			expected:  "No meaningful contributors",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &schema.Result{Breakdown: tt.breakdown}
			assert.Equal(t, tt.expected, formatTopMetricBreakdown(r))
		})
	}
}

// TestFormatWarnings tests the per-row warning summary.
func TestFormatWarnings(t *testing.T) {
	assert.Equal(t, "-", formatWarnings(nil))
	assert.Equal(t, "1 (rating)", formatWarnings([]schema.Warning{{Metric: "rating"}}))
	assert.Equal(t, "2 (rating,active_months)", formatWarnings([]schema.Warning{
		{Metric: "rating"},
		{Metric: "active_months"},
	}))
}

// TestFormatPenalty tests penalty factor rendering.
func TestFormatPenalty(t *testing.T) {
	fmtFloat := createFormatter(3)
	assert.Equal(t, "-", formatPenalty(&schema.Result{PenaltyFactor: 1.0}, fmtFloat))
	assert.Equal(t, "x0.850", formatPenalty(&schema.Result{PenaltyApplied: true, PenaltyFactor: 0.85}, fmtFloat))
}

// TestGetMaxTableNameWidth tests width allocation with explicit overrides.
func TestGetMaxTableNameWidth(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *contract.Config
		expected int
	}{
		{name: "narrow override clamps to minimum", cfg: &contract.Config{Width: 60}, expected: 12},
		{name: "wide override clamps to maximum", cfg: &contract.Config{Width: 300}, expected: 50},
		{name: "mid override leaves room", cfg: &contract.Config{Width: 100}, expected: 30},
		{name: "detail columns shrink the name", cfg: &contract.Config{Width: 120, Detail: true}, expected: 15},
		{name: "explain columns shrink it further", cfg: &contract.Config{Width: 160, Detail: true, Explain: true}, expected: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, getMaxTableNameWidth(tt.cfg))
		})
	}
}
