package core

import (
	"fmt"
	"math"

	"github.com/huangsam/hpps/schema"
)

// Diagnostics accumulates non-fatal warnings during one scoring invocation.
// Each invocation gets its own instance, so concurrent scoring needs no
// coordination. A nil *Diagnostics silently drops warnings.
type Diagnostics struct {
	warnings []schema.Warning
}

// NewDiagnostics returns an empty diagnostics sink.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{}
}

// Warn records a warning for a metric. value is the original offending value,
// nil when the metric was absent.
func (d *Diagnostics) Warn(metric string, value *float64, reason string) {
	if d == nil {
		return
	}
	d.warnings = append(d.warnings, schema.Warning{Metric: metric, Value: value, Reason: reason})
}

// Warnings returns the accumulated warnings in emission order.
func (d *Diagnostics) Warnings() []schema.Warning {
	if d == nil {
		return nil
	}
	return d.warnings
}

// usable rejects NaN and infinities, the typed-language analogue of a
// non-numeric input.
func usable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// validateRatio guards a ratio metric declared on [0,1]. Absent values
// default to 0 with no warning; out-of-bounds values clamp with a warning;
// NaN/Inf fails with ErrValidation.
func validateRatio(v *float64, name string, diag *Diagnostics) (float64, error) {
	if v == nil {
		return 0, nil
	}
	if !usable(*v) {
		return 0, fmt.Errorf("%w: %s is not a usable number (%v)", schema.ErrValidation, name, *v)
	}
	if *v < 0 {
		diag.Warn(name, v, fmt.Sprintf("negative ratio %.3f, clamping to 0", *v))
		return 0, nil
	}
	if *v > 1 {
		diag.Warn(name, v, fmt.Sprintf("ratio %.3f above 1.0, clamping to 1.0", *v))
		return 1, nil
	}
	return *v, nil
}

// validateCount guards a non-negative count metric. Absent values default
// to 0 with no warning.
func validateCount(v *float64, name string, diag *Diagnostics) (float64, error) {
	if v == nil {
		return 0, nil
	}
	if !usable(*v) {
		return 0, fmt.Errorf("%w: %s is not a usable number (%v)", schema.ErrValidation, name, *v)
	}
	if *v < 0 {
		diag.Warn(name, v, fmt.Sprintf("negative count %.1f, clamping to 0", *v))
		return 0, nil
	}
	return *v, nil
}

// validateRating guards a platform rating. Absent stays absent (nil); the
// caller decides between fallback and ErrMissingRequiredInput. Negative
// ratings clamp to 0 with a warning.
func validateRating(v *float64, name string, diag *Diagnostics) (*float64, error) {
	if v == nil {
		return nil, nil
	}
	if !usable(*v) {
		return nil, fmt.Errorf("%w: %s is not a usable number (%v)", schema.ErrValidation, name, *v)
	}
	if *v < 0 {
		diag.Warn(name, v, fmt.Sprintf("negative rating %.1f, clamping to 0", *v))
		zero := 0.0
		return &zero, nil
	}
	return v, nil
}

// validateAIScore guards an AI-derived score of ambiguous scale, declared on
// [0,100]. Absent values default to the 0.5 midpoint (neutral on the 0-1
// path) with no warning.
func validateAIScore(v *float64, name string, diag *Diagnostics) (float64, error) {
	if v == nil {
		return 0.5, nil
	}
	if !usable(*v) {
		return 0.5, fmt.Errorf("%w: %s is not a usable number (%v)", schema.ErrValidation, name, *v)
	}
	if *v < 0 {
		diag.Warn(name, v, fmt.Sprintf("negative score %.3f, clamping to 0", *v))
		return 0, nil
	}
	if *v > 100 {
		diag.Warn(name, v, fmt.Sprintf("score %.1f above 100, clamping to 100", *v))
		return 100, nil
	}
	return *v, nil
}
