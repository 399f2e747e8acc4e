package contract

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/huangsam/hpps/schema"
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 3
	MaxPrecision       = 4
)

// DefaultWorkers is the default number of concurrent workers for batch runs.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// Config holds the runtime configuration for scoring.
// This struct remains the "final, validated" config.
type Config struct {
	InputPath   string // Path to the JSON metrics document; "-" reads stdin
	ResultLimit int
	Workers     int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Detail      bool // Print base score and penalty columns
	Explain     bool // Print per-metric breakdown
	Width       int  // Terminal width override (0 = auto-detect)
	UseColors   bool // Enable colored labels in table output

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext

	// Params is the validated engine parameter object built from defaults
	// plus any overrides in the config file.
	Params *schema.EngineParams
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Limit          int    `mapstructure:"limit"`
	Workers        int    `mapstructure:"workers"`
	Precision      int    `mapstructure:"precision"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Detail         bool   `mapstructure:"detail"`
	Explain        bool   `mapstructure:"explain"`
	Width          int    `mapstructure:"width"`
	Color          string `mapstructure:"color"`
	StoreBackend   string `mapstructure:"store-backend"`
	StoreDBConnect string `mapstructure:"store-db-connect"`
	RequireRating  bool   `mapstructure:"require-rating"`

	// --- Engine tuning from the config file ---
	Weights WeightsRawInput `mapstructure:"weights"`
	Penalty PenaltyRawInput `mapstructure:"penalty"`
	Scale   ScaleRawInput   `mapstructure:"scale"`
	Maxima  MaximaRawInput  `mapstructure:"maxima"`
}

// WeightsRawInput holds custom weight tables from the YAML config file.
// A provided table replaces the default table for that dimension wholesale
// and must itself sum to 1.0.
type WeightsRawInput struct {
	AD  map[string]float64 `mapstructure:"ad"`
	EAP map[string]float64 `mapstructure:"eap"`
	CCL map[string]float64 `mapstructure:"ccl"`
	LA  map[string]float64 `mapstructure:"la"`
	Top map[string]float64 `mapstructure:"top"`
}

// PenaltyRawInput holds weakest-link penalty overrides. Pointers distinguish
// "not set" from zero.
type PenaltyRawInput struct {
	Threshold *float64 `mapstructure:"threshold"`
	Min       *float64 `mapstructure:"min"`
	Max       *float64 `mapstructure:"max"`
	ExcludeLA *bool    `mapstructure:"exclude_la"`
}

// ScaleRawInput holds dual-scale detection overrides.
type ScaleRawInput struct {
	Threshold *float64 `mapstructure:"threshold"`
}

// MaximaRawInput holds count saturation overrides.
type MaximaRawInput struct {
	Projects          *float64 `mapstructure:"projects"`
	ActiveMonths      *float64 `mapstructure:"active_months"`
	StreakDays        *float64 `mapstructure:"streak_days"`
	ActivityFrequency *float64 `mapstructure:"activity_frequency"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Params != nil {
		clone.Params = c.Params.Clone()
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct. Configuration problems surface here,
// before any candidate is scored.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	return processEngineParams(cfg, input)
}

// validateSimpleInputs processes and validates all non-engine fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.InputPath = input.InputPathStr
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail
	cfg.Explain = input.Explain
	cfg.Width = input.Width

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	if input.Precision < 1 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 1 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}

	return validateBackendConfig(cfg, input)
}

// validateBackendConfig validates the score store backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.StoreBackend = schema.DatabaseBackend(strings.ToLower(input.StoreBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
	}
	cfg.StoreDBConnect = input.StoreDBConnect
	return ValidateDatabaseConnectionString(cfg.StoreBackend, cfg.StoreDBConnect)
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") && !strings.HasPrefix(connStr, "postgres://") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' or use postgres:// URL form")
		}
	}
	return nil
}

// processEngineParams builds the validated EngineParams object from defaults
// plus config-file overrides. Any structural problem returns
// schema.ErrConfiguration here, never mid-scoring.
func processEngineParams(cfg *Config, input *ConfigRawInput) error {
	params := schema.DefaultEngineParams()
	params.RequireRating = input.RequireRating

	dims := map[schema.Dimension]map[string]float64{
		schema.AlgorithmicDepth: input.Weights.AD,
		schema.ExecutionPower:   input.Weights.EAP,
		schema.Consistency:      input.Weights.CCL,
		schema.Leverage:         input.Weights.LA,
	}
	for dim, raw := range dims {
		if len(raw) == 0 {
			continue
		}
		table := make(map[schema.MetricKey]float64, len(raw))
		for k, v := range raw {
			table[schema.MetricKey(k)] = v
		}
		params.DimensionWeights[dim] = table
	}
	if len(input.Weights.Top) > 0 {
		top := make(map[schema.Dimension]float64, len(input.Weights.Top))
		for k, v := range input.Weights.Top {
			top[schema.Dimension(k)] = v
		}
		params.TopWeights = top
	}

	if input.Penalty.Threshold != nil {
		params.PenaltyThreshold = *input.Penalty.Threshold
	}
	if input.Penalty.Min != nil {
		params.PenaltyMin = *input.Penalty.Min
	}
	if input.Penalty.Max != nil {
		params.PenaltyMax = *input.Penalty.Max
	}
	if input.Penalty.ExcludeLA != nil {
		params.ExcludeLAFromPenalty = *input.Penalty.ExcludeLA
	}
	if input.Scale.Threshold != nil {
		params.ScaleThreshold = *input.Scale.Threshold
	}
	if input.Maxima.Projects != nil {
		params.MaxProjects = *input.Maxima.Projects
	}
	if input.Maxima.ActiveMonths != nil {
		params.MaxActiveMonths = *input.Maxima.ActiveMonths
	}
	if input.Maxima.StreakDays != nil {
		params.MaxStreakDays = *input.Maxima.StreakDays
	}
	if input.Maxima.ActivityFrequency != nil {
		params.MaxActivityFrequency = *input.Maxima.ActivityFrequency
	}

	if err := params.Validate(); err != nil {
		return err
	}
	cfg.Params = params
	return nil
}
