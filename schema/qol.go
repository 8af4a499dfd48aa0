package schema

// NormalizedIndicator is the per-indicator slice of a dimension score.
// Normalized is nil iff the raw value is nil.
type NormalizedIndicator struct {
	Key        string   `json:"key" bson:"key"`
	Label      string   `json:"label" bson:"label"`
	Unit       string   `json:"unit" bson:"unit"`
	Value      *float64 `json:"value" bson:"value"`
	Normalized *float64 `json:"normalized" bson:"normalized"`
}

// DimensionScore is the aggregated score of one dimension. Score is the mean
// of normalized indicator values with nil substituted by 0: a city that does
// not measure an indicator is treated as scoring worst-case, not average-case.
type DimensionScore struct {
	Key            string                `json:"key" bson:"key"`
	Label          string                `json:"label" bson:"label"`
	Weight         float64               `json:"weight" bson:"weight"`
	Score          float64               `json:"score" bson:"score"`
	Weighted       float64               `json:"weighted" bson:"weighted"`
	AvailableCount int                   `json:"available_count" bson:"available_count"`
	TotalCount     int                   `json:"total_count" bson:"total_count"`
	Indicators     []NormalizedIndicator `json:"indicators" bson:"indicators"`
}

// ConfidenceTier classifies how trustworthy a city's underlying data is,
// independent of the QoL score itself.
type ConfidenceTier string

const (
	ConfidenceTierGold   ConfidenceTier = "gold"
	ConfidenceTierSilver ConfidenceTier = "silver"
	ConfidenceTierBronze ConfidenceTier = "bronze"
)

// ConfidenceFactors are the six sub-factors of the confidence score, each on
// a 0-100 scale.
type ConfidenceFactors struct {
	IndicatorCoverage  float64 `json:"indicator_coverage" bson:"indicator_coverage"`
	LiveDataFreshness  float64 `json:"live_data_freshness" bson:"live_data_freshness"`
	SensorCoverage     float64 `json:"sensor_coverage" bson:"sensor_coverage"`
	TransitDataQuality float64 `json:"transit_data_quality" bson:"transit_data_quality"`
	DataReadiness      float64 `json:"data_readiness" bson:"data_readiness"`
	AltmoTraces        float64 `json:"altmo_traces" bson:"altmo_traces"`
}

// ConfidenceBreakdown is the multi-factor data-confidence result.
type ConfidenceBreakdown struct {
	Tier    ConfidenceTier    `json:"tier" bson:"tier"`
	Score   int               `json:"score" bson:"score"`
	Factors ConfidenceFactors `json:"factors" bson:"factors"`
}

// CityQoLScore is the top-level scoring result for one city. Composite is in
// [0,1] because dimension weights sum to 1 and every dimension score is in
// [0,1]. IndicatorsTotal counts the full target framework, not only the
// indicators currently implemented.
type CityQoLScore struct {
	CityID              string              `json:"city_id" bson:"city_id"`
	Composite           float64             `json:"composite" bson:"composite"`
	Grade               string              `json:"grade" bson:"grade"`
	Dimensions          []DimensionScore    `json:"dimensions" bson:"dimensions"`
	Confidence          int                 `json:"confidence" bson:"confidence"`
	ConfidenceBreakdown ConfidenceBreakdown `json:"confidence_breakdown" bson:"confidence_breakdown"`
	IndicatorsAvailable int                 `json:"indicators_available" bson:"indicators_available"`
	IndicatorsTotal     int                 `json:"indicators_total" bson:"indicators_total"`
}

// IndicatorChange pairs the baseline and scenario raw values of one
// indicator. Delta is nil when either side is unmeasured.
type IndicatorChange struct {
	Key      string   `json:"key" bson:"key"`
	Label    string   `json:"label" bson:"label"`
	Unit     string   `json:"unit" bson:"unit"`
	Baseline *float64 `json:"baseline" bson:"baseline"`
	Scenario *float64 `json:"scenario" bson:"scenario"`
	Delta    *float64 `json:"delta" bson:"delta"`
}

// ScenarioResult compares a simulated intervention bundle against the
// baseline scored through the identical pipeline.
type ScenarioResult struct {
	Baseline         CityQoLScore      `json:"baseline" bson:"baseline"`
	Scenario         CityQoLScore      `json:"scenario" bson:"scenario"`
	Delta            float64           `json:"delta" bson:"delta"`
	GradeChange      string            `json:"grade_change" bson:"grade_change"`
	IndicatorChanges []IndicatorChange `json:"indicator_changes" bson:"indicator_changes"`
}

// GapAnalysis is the weakest-area narrative for one city. It is recomputed on
// demand and never persisted.
type GapAnalysis struct {
	CityID             string `json:"city_id" bson:"city_id"`
	WorstDimension     string `json:"worst_dimension" bson:"worst_dimension"`
	WorstIndicator     string `json:"worst_indicator" bson:"worst_indicator"`
	GapSentence        string `json:"gap_sentence" bson:"gap_sentence"`
	Recommendation     string `json:"recommendation" bson:"recommendation"`
	UpgradeSentence    string `json:"upgrade_sentence" bson:"upgrade_sentence"`
	DataUnlockSentence string `json:"data_unlock_sentence" bson:"data_unlock_sentence"`
}
