package cmd

import (
	"fmt"
	"time"

	"github.com/huangsam/hpps/internal/contract"
	"github.com/huangsam/hpps/internal/outwriter"
	"github.com/huangsam/hpps/internal/scorestore"
	"github.com/huangsam/hpps/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// storeSetup loads minimal configuration needed for store operations.
// This is used by commands that need store access without full shared setup.
func storeSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backendStr := viper.GetString("store-backend")
	connStr := viper.GetString("store-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize the store with the loaded config
	if err := scorestore.InitStore(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize score store: %w", err)
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr
	cfg.OutputFile = viper.GetString("output-file")
	cfg.Output = schema.OutputMode(viper.GetString("output"))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	cfg.ResultLimit = viper.GetInt("limit")
	if cfg.ResultLimit <= 0 {
		cfg.ResultLimit = contract.DefaultResultLimit
	}
	cfg.Precision = viper.GetInt("precision")
	if cfg.Precision <= 0 {
		cfg.Precision = contract.DefaultPrecision
	}

	return nil
}

// storeSetupWrapper wraps storeSetup to provide PreRunE for store commands.
func storeSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeSetup()
}

// storeMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize the store or create tables,
// allowing migrations to run on a fresh database.
func storeMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backendStr := viper.GetString("store-backend")
	connStr := viper.GetString("store-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetStoreDBFilePath()
	}

	cfg.StoreBackend = backend
	cfg.StoreDBConnect = connStr

	return nil
}

// storeMigrateSetupWrapper wraps storeMigrateSetup to provide PreRunE for migrate command.
func storeMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeMigrateSetup()
}

// storeCmd focused on scoring history management.
//
// Note: Store subcommands use minimal initialization (storeSetup) instead of
// the full sharedSetup used by scoring commands. This avoids metrics document
// validation and engine parameter processing for simple store operations.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage historical scoring data and exports",
	Long: `Manage historical scoring data used for trend tracking and reporting.

When enabled, HPPS tracks every scoring run, storing:
- Run metadata (timestamp, configuration, duration)
- Final and base scores plus all four dimension scores
- Per-metric breakdowns and input warnings

This enables longitudinal analysis of candidates and data export for BI tools.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show scoring history statistics
  list    - Print stored results
  export  - Export data to Parquet for analytics
  clear   - Remove all scoring history
  migrate - Run database schema migrations

Examples:
  # Check scoring history status
  hpps store status

  # Export for analysis in pandas/DuckDB
  hpps store export --output-file hpps-data.parquet`,
}

// storeStatusCmd shows score store status.
var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display scoring history statistics and connection details",
	Long: `Show detailed information about the scoring history store.

Displays:
- Backend type and connection status
- Total number of scoring runs and results stored
- Last run ID and timestamp
- Database table sizes

Use this to:
- Verify score tracking is enabled and working
- Monitor data accumulation over time
- Check database connection health

Examples:
  # Check score store status
  hpps store status`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := scorestore.Manager.GetScoreStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get store status", err)
		}
		scorestore.PrintStoreStatus(status)
	},
}

// storeListCmd prints stored results.
var storeListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print stored scoring results, newest first",
	Long: `Print previously stored scoring results without re-scoring anything.

Results come back newest run first, ranked by final score within each run.
Respects the usual output flags (--output, --output-file, --limit, --precision).

Examples:
  # Show the last 25 stored results
  hpps store list

  # Export stored results as JSON
  hpps store list --output json --limit 100`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := scorestore.Manager.GetScoreStore()
		start := time.Now()
		results, err := store.ListResults(cfg.ResultLimit)
		if err != nil {
			contract.LogFatal("Failed to list stored results", err)
		}
		ow := outwriter.NewOutWriter()
		if err := ow.WriteResults(results, nil, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Failed to write stored results", err)
		}
	},
}

// storeClearCmd clears the scoring history.
var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all historical scoring data",
	Long: `Delete all stored scoring runs and results.

This removes:
- All scoring run metadata
- Historical candidate scores and breakdowns

WARNING: This action cannot be undone. Consider exporting data first.

Use this when:
- Resetting scoring history
- Database storage is full
- Testing store features

Examples:
  # Export before clearing
  hpps store export --output-file backup.parquet
  hpps store clear`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := scorestore.ClearStore(cfg.StoreBackend, contract.GetStoreDBFilePath(), cfg.StoreDBConnect); err != nil {
			contract.LogFatal("Failed to clear scoring data", err)
		}
		fmt.Println("Scoring data cleared successfully.")
	},
}

// storeExportCmd exports scoring history to a Parquet file.
var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export scoring history to Parquet for BI tools and analytics",
	Long: `Export all stored scoring results to Parquet format for use with analytics tools.

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --output-file parameter

Use cases:
- Trend analysis of candidates across multiple runs
- Custom dashboards and visualizations
- Cohort reporting and KPIs

Examples:
  # Export all data
  hpps store export --output-file hpps-data.parquet

  # Use with DuckDB for analysis
  hpps store export --output-file data.parquet
  duckdb -c "SELECT * FROM read_parquet('data.parquet') LIMIT 10"`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := scorestore.ExecuteStoreExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export scoring data", err)
		}
	},
}

// storeMigrateCmd runs database migrations for the score store.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the score store.

Migrations allow:
- Upgrading to new schema versions when hpps is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  hpps store migrate

  # Migrate to specific version
  hpps store migrate --target-version 2

  # Rollback everything
  hpps store migrate --target-version 0`,
	PreRunE: storeMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := scorestore.MigrateStore(cfg.StoreBackend, cfg.StoreDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
