package schema

// Custom string types for type safety.
type (
	// Dimension represents one of the four scoring dimensions.
	Dimension string

	// MetricKey represents keys used in scoring breakdowns and weight tables.
	MetricKey string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for score storage.
	DatabaseBackend string
)

// The four scoring dimensions.
const (
	AlgorithmicDepth Dimension = "ad"  // Algorithmic Depth
	ExecutionPower   Dimension = "eap" // Execution & Application Power
	Consistency      Dimension = "ccl" // Consistency & Career Longevity
	Leverage         Dimension = "la"  // Leverage & Adaptability
)

// Metric keys used in the scoring logic.
const (
	MetricRating       MetricKey = "rating"          // best-of CF/LC rating percentile
	MetricCFHard       MetricKey = "cf_hard"         // CF hard problem ratio
	MetricLCMediumHard MetricKey = "lc_medium_hard"  // LC medium+hard ratio
	MetricProjects     MetricKey = "projects"        // real project count
	MetricComplexity   MetricKey = "complexity"      // project complexity (AI)
	MetricStack        MetricKey = "stack"           // stack diversity (AI)
	MetricQuality      MetricKey = "quality"         // code quality (AI)
	MetricMonths       MetricKey = "months"          // active months
	MetricFrequency    MetricKey = "frequency"       // activity frequency
	MetricStability    MetricKey = "stability"       // rating stability
	MetricStreak       MetricKey = "streak"          // longest streak days
	MetricNewTech      MetricKey = "new_tech"        // new tech usage (AI)
	MetricReusable     MetricKey = "reusable"        // reusable components (AI)
	MetricOSS          MetricKey = "oss"             // OSS engagement (AI)
	MetricCrossDomain  MetricKey = "cross_domain"    // cross-domain work (AI)
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All score backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// AllDimensions returns the dimensions in display order.
var AllDimensions = []Dimension{AlgorithmicDepth, ExecutionPower, Consistency, Leverage}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid score backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// GetDefaultDimensionWeights returns the default sub-metric weight table for a
// dimension. Each table sums to 1.0; configuration validation enforces the
// same invariant on overrides.
func GetDefaultDimensionWeights(dim Dimension) map[MetricKey]float64 {
	switch dim {
	case AlgorithmicDepth:
		return map[MetricKey]float64{
			MetricRating:       0.60,
			MetricCFHard:       0.25,
			MetricLCMediumHard: 0.15,
		}
	case ExecutionPower:
		return map[MetricKey]float64{
			MetricProjects:   0.40,
			MetricComplexity: 0.25,
			MetricStack:      0.20,
			MetricQuality:    0.15,
		}
	case Consistency:
		return map[MetricKey]float64{
			MetricMonths:    0.40,
			MetricFrequency: 0.25,
			MetricStability: 0.20,
			MetricStreak:    0.15,
		}
	case Leverage:
		return map[MetricKey]float64{
			MetricNewTech:     0.35,
			MetricReusable:    0.25,
			MetricOSS:         0.20,
			MetricCrossDomain: 0.20,
		}
	default:
		return map[MetricKey]float64{}
	}
}

// GetDefaultTopWeights returns the default top-level dimension weights.
// The table sums to 1.0.
func GetDefaultTopWeights() map[Dimension]float64 {
	return map[Dimension]float64{
		AlgorithmicDepth: 0.30,
		ExecutionPower:   0.30,
		Consistency:      0.25,
		Leverage:         0.15,
	}
}
