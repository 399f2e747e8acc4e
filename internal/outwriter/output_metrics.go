package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/hpps/internal/contract"
	"github.com/huangsam/hpps/schema"
)

// getDisplayNameForDimension returns the display name with emoji for a given dimension name.
func getDisplayNameForDimension(dimName string) string {
	switch schema.Dimension(dimName) {
	case schema.AlgorithmicDepth:
		return "🧠 AD"
	case schema.ExecutionPower:
		return "🔨 EAP"
	case schema.Consistency:
		return "📅 CCL"
	case schema.Leverage:
		return "🚀 LA"
	default:
		return strings.ToUpper(dimName)
	}
}

// getDisplayWeightsForDimension returns the weights to display for a given dimension.
// Uses the configured weights if available, otherwise falls back to defaults.
func getDisplayWeightsForDimension(dim schema.Dimension, params *schema.EngineParams) map[string]float64 {
	// Start with default weights
	defaultWeights := schema.GetDefaultDimensionWeights(dim)

	// Convert MetricKey map to string map for display
	weights := make(map[string]float64)
	for k, v := range defaultWeights {
		weights[string(k)] = v
	}

	// Override with configured weights if provided
	if params != nil {
		if dimWeights, ok := params.DimensionWeights[dim]; ok {
			for k, v := range dimWeights {
				weights[string(k)] = v
			}
		}
	}

	return weights
}

// formatWeights formats weights for display in formulas.
func formatWeights(weights map[string]float64, factorKeys []string) string {
	var parts []string
	for _, key := range factorKeys {
		if weight, ok := weights[key]; ok && weight > 0 {
			parts = append(parts, fmt.Sprintf("%.2f*%s", weight, key))
		}
	}
	return strings.Join(parts, "+")
}

// PrintMetricsDefinitions displays the formal definitions of all scoring dimensions.
// This is a static display that does not require any candidate input.
func PrintMetricsDefinitions(cfg *contract.Config) error {
	// Build the complete render model with all processed data
	renderModel := buildMetricsRenderModel(cfg.Params)

	switch cfg.Output {
	case schema.JSONOut:
		return printMetricsJSON(renderModel, cfg)
	case schema.CSVOut:
		return printMetricsCSV(renderModel, cfg)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return printMetricsText(w, renderModel, cfg)
		}, "Wrote text")
	}
}

// printMetricsText displays metrics in human-readable text format.
func printMetricsText(w io.Writer, renderModel *schema.MetricsRenderModel, _ *contract.Config) error {
	if _, err := fmt.Fprintf(w, "🎯 HPPS Scoring Dimensions\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "==========================\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", renderModel.Description); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\n"); err != nil {
		return err
	}

	for _, dim := range renderModel.Dimensions {
		// Add emoji prefix for display
		displayName := getDisplayNameForDimension(dim.Name)
		if _, err := fmt.Fprintf(w, "%s: %s\n", displayName, dim.Purpose); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Factors: %s\n", strings.Join(dim.Factors, ", ")); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Formula: Score = %s\n", dim.Formula); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Top-level weight: %.2f\n", renderModel.TopWeights[dim.Name]); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "\n"); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "⚖️  Weakest-Link Penalty\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", renderModel.Penalty["description"]); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", renderModel.Penalty["note"]); err != nil {
		return err
	}

	return nil
}

// printMetricsJSON displays metrics in JSON format.
func printMetricsJSON(renderModel *schema.MetricsRenderModel, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, renderModel)
	}, "Wrote JSON")
}

// printMetricsCSV displays metrics in CSV format.
func printMetricsCSV(renderModel *schema.MetricsRenderModel, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		writer := csv.NewWriter(w)
		defer writer.Flush()
		return writeCSVMetrics(writer, renderModel)
	}, "Wrote CSV")
}

// writeCSVMetrics writes one row per dimension factor with its weight.
func writeCSVMetrics(w *csv.Writer, renderModel *schema.MetricsRenderModel) error {
	header := []string{"dimension", "top_weight", "factor", "weight"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, dim := range renderModel.Dimensions {
		topWeight := fmt.Sprintf("%.2f", renderModel.TopWeights[dim.Name])
		for _, key := range dim.FactorKeys {
			rec := []string{
				dim.Name,
				topWeight,
				key,
				fmt.Sprintf("%.2f", dim.Weights[key]),
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
	}
	return nil
}

// buildMetricsRenderModel constructs the complete render model with all processed data.
func buildMetricsRenderModel(params *schema.EngineParams) *schema.MetricsRenderModel {
	dims := []schema.MetricsDimension{
		{
			Name:       string(schema.AlgorithmicDepth),
			Purpose:    "Algorithmic depth - competitive programming strength",
			Factors:    []string{"Rating", "CF hard ratio", "LC medium-hard ratio"},
			FactorKeys: []string{string(schema.MetricRating), string(schema.MetricCFHard), string(schema.MetricLCMediumHard)},
		},
		{
			Name:       string(schema.ExecutionPower),
			Purpose:    "Execution power - real project delivery",
			Factors:    []string{"Projects", "Complexity", "Stack diversity", "Code quality"},
			FactorKeys: []string{string(schema.MetricProjects), string(schema.MetricComplexity), string(schema.MetricStack), string(schema.MetricQuality)},
		},
		{
			Name:       string(schema.Consistency),
			Purpose:    "Consistency - sustained activity over time",
			Factors:    []string{"Active months", "Frequency", "Stability", "Streak"},
			FactorKeys: []string{string(schema.MetricMonths), string(schema.MetricFrequency), string(schema.MetricStability), string(schema.MetricStreak)},
		},
		{
			Name:       string(schema.Leverage),
			Purpose:    "Leverage - breadth and reuse of technical work",
			Factors:    []string{"New tech usage", "Reusable components", "OSS engagement", "Cross-domain work"},
			FactorKeys: []string{string(schema.MetricNewTech), string(schema.MetricReusable), string(schema.MetricOSS), string(schema.MetricCrossDomain)},
		},
	}
	dimsWithData := make([]schema.MetricsDimensionWithData, len(dims))

	for i, dim := range dims {
		weights := getDisplayWeightsForDimension(schema.Dimension(dim.Name), params)
		formula := formatWeights(weights, dim.FactorKeys)

		dimsWithData[i] = schema.MetricsDimensionWithData{
			MetricsDimension: dim,
			Weights:          weights,
			Formula:          formula,
		}
	}

	topWeights := make(map[string]float64)
	defaults := schema.GetDefaultTopWeights()
	for k, v := range defaults {
		topWeights[string(k)] = v
	}
	if params != nil {
		for k, v := range params.TopWeights {
			topWeights[string(k)] = v
		}
	}

	return &schema.MetricsRenderModel{
		Title:       "HPPS Scoring Dimensions",
		Description: "HPPS = weighted sum of four dimension scores, times a weakest-link factor",
		Dimensions:  dimsWithData,
		TopWeights:  topWeights,
		Penalty: map[string]string{
			"description": "Final HPPS = Base HPPS * Penalty Factor",
			"note":        "(Factor < 1 when the weakest dimension falls below the threshold)",
		},
	}
}
