package cmd

import (
	"github.com/huangsam/hpps/core"
	"github.com/huangsam/hpps/internal/contract"
	"github.com/spf13/cobra"
)

// scoreCmd scores a single candidate.
var scoreCmd = &cobra.Command{
	Use:   "score [metrics-file]",
	Short: "Score one candidate from a JSON metrics document.",
	Long: `Compute the High-Pay Potential Score for a single candidate.

Reads a JSON object of raw metrics (competitive ratings, project counts,
activity history, leverage signals), normalizes every metric to [0,1],
combines them into four dimension scores, and applies the weakest-link
penalty to produce one bounded final score.

The result includes:
- Final HPPS and the base score before penalty
- All four dimension scores (AD, EAP, CCL, LA)
- Per-metric contribution breakdown (--explain)
- Non-fatal input warnings (clamped values, missing ratings)

Reads from stdin when no file argument is given.

Examples:
  # Score a candidate from a file
  hpps score candidate.json

  # Score from stdin
  cat candidate.json | hpps score

  # Show the penalty and warning details
  hpps score candidate.json --detail --explain

  # Emit machine-readable output
  hpps score candidate.json --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScore(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot score candidate", err)
		}
	},
}
