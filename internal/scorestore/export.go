package scorestore

import (
	"errors"
	"fmt"

	"github.com/huangsam/hpps/internal/contract"
	"github.com/huangsam/hpps/internal/parquet"
)

// ExecuteStoreExport performs the actual export of scoring history to a Parquet file.
func ExecuteStoreExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the score store
	store := Manager.GetScoreStore()
	if store == nil {
		return errors.New("score store is not initialized")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get store status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no scoring data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total scoring runs: %d\n", status.TotalRuns)
	fmt.Printf("Total result records: %d\n", status.TotalResults)

	// Retrieve all stored results
	results, err := store.ListResults(0)
	if err != nil {
		return fmt.Errorf("failed to retrieve results: %w", err)
	}

	// Convert to Parquet format
	records := parquet.FromResults(results, contract.GetPlainLabel)

	// Write results to Parquet
	if err := parquet.WriteScoreRecords(records, outputFile); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	fmt.Printf("Exported %d result records to: %s\n", len(records), outputFile)

	fmt.Println("\nExport complete! The Parquet file can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
