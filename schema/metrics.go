package schema

// MetricsDimension represents one scoring dimension definition for display.
type MetricsDimension struct {
	Name       string   `json:"name"`
	Purpose    string   `json:"purpose"`
	Factors    []string `json:"factors"`
	FactorKeys []string `json:"factor_keys"`
}

// MetricsDimensionWithData extends MetricsDimension with computed display data.
type MetricsDimensionWithData struct {
	MetricsDimension
	Weights map[string]float64 `json:"weights"`
	Formula string             `json:"formula"`
}

// MetricsRenderModel contains all processed data needed for metrics rendering.
type MetricsRenderModel struct {
	Title       string                     `json:"title"`
	Description string                     `json:"description"`
	Dimensions  []MetricsDimensionWithData `json:"dimensions"`
	TopWeights  map[string]float64         `json:"top_weights"`
	Penalty     map[string]string          `json:"penalty"`
}
