package schema

// IndicatorEffect tells which direction of a raw indicator value is good.
type IndicatorEffect string

const (
	// IndicatorEffectPositive means a higher raw value is better.
	IndicatorEffectPositive IndicatorEffect = "positive"
	// IndicatorEffectNegative means a lower raw value is better.
	IndicatorEffectNegative IndicatorEffect = "negative"
)

// IndicatorDefinition describes a single measurable quantity of the
// framework. Definitions are static and never mutated at runtime.
type IndicatorDefinition struct {
	Key         string          `json:"key" bson:"key"`
	Label       string          `json:"label" bson:"label"`
	Unit        string          `json:"unit" bson:"unit"`
	Effect      IndicatorEffect `json:"effect" bson:"effect"`
	Source      string          `json:"source" bson:"source"`
	Description string          `json:"description" bson:"description"`
}

// Benchmark anchors the normalization of one indicator. WorstRef scores 0 and
// Target scores 1 for a positive-effect indicator; the effect direction flips
// which bound is good.
type Benchmark struct {
	WorstRef float64 `json:"worst_ref" bson:"worst_ref"`
	Target   float64 `json:"target" bson:"target"`
	Source   string  `json:"source" bson:"source"`
}

// Dimension is a named group of indicators with a fixed contribution weight.
// Weights across DefaultDimensions sum to 1.0 by construction.
type Dimension struct {
	Key        string                `json:"key" bson:"key"`
	Label      string                `json:"label" bson:"label"`
	Weight     float64               `json:"weight" bson:"weight"`
	Indicators []IndicatorDefinition `json:"indicators" bson:"indicators"`
}

// GradeBoundary maps a composite score onto an ordinal grade. Boundaries are
// ordered best-first; the first boundary whose Min does not exceed the
// composite wins.
type GradeBoundary struct {
	Grade string  `json:"grade" bson:"grade"`
	Min   float64 `json:"min" bson:"min"`
}
