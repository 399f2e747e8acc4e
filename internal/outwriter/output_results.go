package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/huangsam/hpps/internal/contract"
	"github.com/huangsam/hpps/internal/parquet"
	"github.com/huangsam/hpps/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintResults outputs scoring results, dispatching based on the output format configured.
func PrintResults(results []schema.Result, failures []schema.BatchFailure, cfg *contract.Config, duration time.Duration) error {
	// Create formatter using helper
	fmtFloat := createFormatter(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeResultJSONResults(results, failures, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeResultCSVResults(results, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeResultParquetResults(results, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeResultTable(results, failures, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeResultJSONResults handles opening the file and calling the JSON writer.
func writeResultJSONResults(results []schema.Result, failures []schema.BatchFailure, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResults(w, results, failures)
	}, "Wrote JSON")
}

// writeResultCSVResults handles opening the file and calling the CSV writer.
func writeResultCSVResults(results []schema.Result, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResults(csvWriter, results, fmtFloat)
	}, "Wrote CSV")
}

// writeResultParquetResults converts results to flat records and writes them
// to the configured output file. Parquet is a binary format, so stdout is not
// a valid destination here.
func writeResultParquetResults(results []schema.Result, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return errors.New("--output-file is required for parquet output")
	}
	records := parquet.FromResults(results, contract.GetPlainLabel)
	if err := parquet.WriteScoreRecords(records, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote parquet to %s\n", cfg.OutputFile)
	return nil
}

// writeResultTable generates and writes the human-readable table.
func writeResultTable(results []schema.Result, failures []schema.BatchFailure, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Candidate", "HPPS", "Label", "AD", "EAP", "CCL", "LA"}
	if cfg.Detail {
		headers = append(headers, "Base", "Penalty", "Warnings")
	}
	if cfg.Explain {
		headers = append(headers, "Explain")
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	var data [][]string
	labelFor := contract.GetPlainLabel
	if cfg.UseColors {
		labelFor = contract.GetColorLabel
	}
	for i, r := range results {
		row := []string{
			strconv.Itoa(i + 1), // Rank
			contract.TruncateName(r.Candidate, getMaxTableNameWidth(cfg)), // Candidate
			fmtFloat(r.Final), // HPPS
			labelFor(r.Final), // Label
			fmtFloat(r.AD),    // Algorithmic depth
			fmtFloat(r.EAP),   // Execution power
			fmtFloat(r.CCL),   // Consistency
			fmtFloat(r.LA),    // Leverage
		}
		if cfg.Detail {
			row = append(
				row,
				fmtFloat(r.Base),            // Base score before penalty
				formatPenalty(&r, fmtFloat), // Penalty factor
				formatWarnings(r.Warnings),  // Input warnings
			)
		}
		if cfg.Explain {
			topOnes := formatTopMetricBreakdown(&r)
			row = append(row, topOnes) // Breakdown explanation
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Compute summary stats
	numPenalized := 0
	numWarnings := 0
	for _, r := range results {
		if r.PenaltyApplied {
			numPenalized++
		}
		numWarnings += len(r.Warnings)
	}
	if _, err := fmt.Fprintf(writer, "Showing %d candidates (penalized: %d, input warnings: %d)\n", len(results), numPenalized, numWarnings); err != nil {
		return err
	}
	for _, f := range failures {
		if _, err := fmt.Fprintf(writer, "Skipped %s: %v\n", f.Candidate, f.Err); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "Scoring completed in %v with %d workers. Store backend: %s\n", duration, cfg.Workers, cfg.StoreBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResults writes the scoring results in CSV format.
func writeCSVResults(w *csv.Writer, results []schema.Result, fmtFloat func(float64) string) error {
	// CSV header
	header := []string{
		"rank",
		"candidate",
		"hpps",
		"label",
		"ad",
		"eap",
		"ccl",
		"la",
		"base_hpps",
		"penalty_applied",
		"penalty_factor",
		"warnings",
		"scored_at",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i, r := range results {
		rec := []string{
			strconv.Itoa(i + 1),                            // Rank
			r.Candidate,                                    // Candidate
			fmtFloat(r.Final),                              // Final HPPS
			contract.GetPlainLabel(r.Final),                // Label
			fmtFloat(r.AD),                                 // Algorithmic depth
			fmtFloat(r.EAP),                                // Execution power
			fmtFloat(r.CCL),                                // Consistency
			fmtFloat(r.LA),                                 // Leverage
			fmtFloat(r.Base),                               // Base score before penalty
			strconv.FormatBool(r.PenaltyApplied),           // Penalty applied
			fmtFloat(r.PenaltyFactor),                      // Penalty factor
			strconv.Itoa(len(r.Warnings)),                  // Warning count
			r.ScoredAt.Format(contract.DateTimeFormat),     // Scored at
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResults writes the scoring results in JSON format.
func writeJSONResults(w io.Writer, results []schema.Result, failures []schema.BatchFailure) error {
	// 1. Prepare the data structure for JSON with rank and label added
	type JSONResult struct {
		Rank  int    `json:"rank"`
		Label string `json:"label"`
		schema.Result
	}
	type JSONFailure struct {
		Candidate string `json:"candidate"`
		Error     string `json:"error"`
	}
	type JSONOutput struct {
		Results  []JSONResult  `json:"results"`
		Failures []JSONFailure `json:"failures,omitempty"`
	}

	output := JSONOutput{Results: make([]JSONResult, len(results))}
	for i, r := range results {
		output.Results[i] = JSONResult{
			Rank:   i + 1,
			Label:  contract.GetPlainLabel(r.Final),
			Result: r,
		}
	}
	for _, f := range failures {
		output.Failures = append(output.Failures, JSONFailure{
			Candidate: f.Candidate,
			Error:     f.Err,
		})
	}

	// 2. Use the generic JSON writer
	return writeJSON(w, output)
}
