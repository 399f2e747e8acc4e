package cmd

import (
	"github.com/huangsam/hpps/core"
	"github.com/huangsam/hpps/internal/contract"
	"github.com/spf13/cobra"
)

// metricsCmd displays the formal definitions of all scoring dimensions.
var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Display formulas and weights for all scoring dimensions",
	Long: `Show the formal definitions, formulas, and factor weights for all scoring dimensions.

Provides complete transparency into how candidates are scored, including:
- Dimension purpose and focus
- Factor names and their contribution weights
- Mathematical formula for each dimension score
- Top-level dimension weights and penalty settings
- Custom weights if configured via .hpps.yaml

No candidate input is required - this is purely informational.

Use this to:
- Understand what each dimension measures
- Explain scoring logic to your team
- Validate custom weight configurations
- Document scoring methodology

Examples:
  # Show default scoring formulas
  hpps metrics

  # View with custom weights from config file
  hpps metrics --config .hpps.yaml`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMetrics(cfg); err != nil {
			contract.LogFatal("Cannot display metrics", err)
		}
	},
}
