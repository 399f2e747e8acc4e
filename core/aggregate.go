package core

import (
	"fmt"

	"github.com/huangsam/hpps/schema"
)

// penaltyFactor computes the weakest-link multiplier from the minimum
// participating dimension score. Boundary policy:
//   - minDim >= threshold: factor 1.0 (the threshold is exclusive on the
//     penalized side)
//   - minDim == 0: factor 1 - PenaltyMax (0.5 by default), never lower
//   - in between: strictly monotonic, the weaker the weakest dimension the
//     harsher the multiplier
func penaltyFactor(minDim float64, p *schema.EngineParams) float64 {
	if minDim >= p.PenaltyThreshold {
		return 1.0
	}
	if minDim < 0 {
		minDim = 0
	}
	penalty := p.PenaltyMin + (p.PenaltyMax-p.PenaltyMin)*(p.PenaltyThreshold-minDim)/p.PenaltyThreshold
	factor := 1.0 - penalty
	if floor := 1.0 - p.PenaltyMax; factor < floor {
		factor = floor
	}
	return factor
}

// ComputeHPPS runs the full scoring pipeline for one candidate: the four
// dimension calculators, the weighted top-level combination, and the
// weakest-link penalty. The params object must already be validated; the
// diagnostics sink collects non-fatal warnings and may be nil.
//
// A result is always returned unless a required input is wholly absent or an
// input is not a usable number. Output depends only on the inputs: scoring
// the same metrics twice yields bit-identical results.
func ComputeHPPS(m *schema.CandidateMetrics, p *schema.EngineParams, diag *Diagnostics) (*schema.Result, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: engine params are nil", schema.ErrConfiguration)
	}

	ad, adBreakdown, err := computeAD(m, p, diag)
	if err != nil {
		return nil, err
	}
	eap, eapBreakdown, err := computeEAP(m, p, diag)
	if err != nil {
		return nil, err
	}
	ccl, cclBreakdown, err := computeCCL(m, p, diag)
	if err != nil {
		return nil, err
	}
	la, laBreakdown, err := computeLA(m, p, diag)
	if err != nil {
		return nil, err
	}

	base := clamp01(p.TopWeights[schema.AlgorithmicDepth]*ad +
		p.TopWeights[schema.ExecutionPower]*eap +
		p.TopWeights[schema.Consistency]*ccl +
		p.TopWeights[schema.Leverage]*la)

	minDim := min(ad, eap, ccl)
	if !p.ExcludeLAFromPenalty {
		minDim = min(minDim, la)
	}
	factor := penaltyFactor(minDim, p)
	if factor < 1.0 {
		diag.Warn("hpps", nil, fmt.Sprintf("weakest-link penalty applied: multiplier %.3f (min dimension %.3f)", factor, minDim))
	}

	breakdown := make(map[schema.MetricKey]float64)
	for _, dims := range []map[schema.MetricKey]float64{adBreakdown, eapBreakdown, cclBreakdown, laBreakdown} {
		for k, v := range dims {
			breakdown[k] = v
		}
	}

	return &schema.Result{
		Candidate:      m.Candidate,
		Final:          clamp01(base * factor),
		Base:           base,
		AD:             ad,
		EAP:            eap,
		CCL:            ccl,
		LA:             la,
		PenaltyApplied: factor < 1.0,
		PenaltyFactor:  factor,
		Breakdown:      breakdown,
		Warnings:       diag.Warnings(),
	}, nil
}
