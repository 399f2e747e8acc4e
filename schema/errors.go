package schema

import "errors"

// Error taxonomy for the scoring engine. Metric-level problems (missing
// optional values, out-of-range values) are absorbed locally and never
// surface as errors; only the categories below propagate to callers.
var (
	// ErrValidation marks a programmer/input error: a value that is not a
	// usable number (NaN or infinity). Distinct from missing data, which is
	// an expected, defaulted case.
	ErrValidation = errors.New("validation error")

	// ErrMissingRequiredInput marks a metric that was declared required but
	// is wholly absent, so the score cannot be computed at all.
	ErrMissingRequiredInput = errors.New("missing required input")

	// ErrConfiguration marks a malformed parameter object (for example a
	// weight table that does not sum to 1.0). Raised eagerly at
	// configuration processing, never during per-candidate scoring.
	ErrConfiguration = errors.New("configuration error")
)
