package cmd

import (
	"github.com/huangsam/hpps/core"
	"github.com/huangsam/hpps/internal/contract"
	"github.com/spf13/cobra"
)

// batchCmd scores a batch of candidates and ranks them.
var batchCmd = &cobra.Command{
	Use:   "batch [metrics-file]",
	Short: "Score a JSON array of candidates and rank them by final HPPS.",
	Long: `Score every candidate in a JSON array concurrently and rank the results.

Each candidate is scored independently with the same configuration, so a
malformed candidate only fails that candidate; the rest of the batch still
completes. Failures are reported alongside the ranked results.

Ranking is deterministic: ties on the final score break on candidate name.

Reads from stdin when no file argument is given.

Examples:
  # Rank a cohort of candidates
  hpps batch cohort.json --limit 10

  # Pipe from another tool
  fetch-candidates | hpps batch --output csv --output-file ranked.csv

  # Tune concurrency for large cohorts
  hpps batch cohort.json --workers 8`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteBatch(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot score batch", err)
		}
	},
}
