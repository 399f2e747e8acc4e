package outwriter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/huangsam/hpps/internal/contract"
	"github.com/huangsam/hpps/schema"
	"golang.org/x/term"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// createFormatter creates the float formatter closure used across output types.
func createFormatter(precision int) func(float64) string {
	numFmt := "%.*f"
	return func(v float64) string {
		return fmt.Sprintf(numFmt, precision, v)
	}
}

// metricContribution holds one entry of the Breakdown map, the weighted
// contribution of a single input metric to the base score.
type metricContribution struct {
	Name  string
	Value float64
}

const (
	metricContribMinimum = 0.01
	topNMetrics          = 3
)

// formatTopMetricBreakdown computes the top 3 metric contributions to the base score.
func formatTopMetricBreakdown(r *schema.Result) string {
	var metrics []metricContribution

	for k, v := range r.Breakdown {
		// Only include meaningful contributions
		if v >= metricContribMinimum {
			metrics = append(metrics, metricContribution{
				Name:  string(k),
				Value: v,
			})
		}
	}

	if len(metrics) == 0 {
		return "No meaningful contributors"
	}

	sort.Slice(metrics, func(i, j int) bool {
		if metrics[i].Value != metrics[j].Value {
			return metrics[i].Value > metrics[j].Value
		}
		return metrics[i].Name < metrics[j].Name
	})

	var parts []string
	limit := min(len(metrics), topNMetrics)
	for i := range limit {
		parts = append(parts, metrics[i].Name)
	}
	return strings.Join(parts, " > ")
}

// formatWarnings condenses input warnings into a short per-row summary.
func formatWarnings(warnings []schema.Warning) string {
	if len(warnings) == 0 {
		return "-"
	}
	names := make([]string, 0, len(warnings))
	for _, w := range warnings {
		names = append(names, w.Metric)
	}
	return fmt.Sprintf("%d (%s)", len(warnings), strings.Join(names, ","))
}

// formatPenalty renders the penalty factor for table output.
func formatPenalty(r *schema.Result, fmtFloat func(float64) string) string {
	if !r.PenaltyApplied {
		return "-"
	}
	return "x" + fmtFloat(r.PenaltyFactor)
}

// getMaxTableNameWidth calculates the maximum width for candidate names in
// table output based on terminal width and table configuration.
func getMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting
	baseWidth := 55 // Rank + HPPS + Label + the four dimension columns

	// Add detail columns with formatting
	if cfg.Detail {
		baseWidth += 35 // Base + Penalty + Warnings with formatting
	}

	// Add explain column
	if cfg.Explain {
		baseWidth += 35 // Explain column with formatting
	}

	// Reserve generous space for table borders, separators, and padding
	baseWidth += 15

	// Calculate available space for the candidate name
	available := termWidth - baseWidth
	if available < 12 {
		// Minimum reasonable name width
		return 12
	}
	if available > 50 {
		// Maximum name width to prevent overly wide tables
		return 50
	}
	return available
}
