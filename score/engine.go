package score

import (
	"sort"

	"github.com/urbanmorph/transport-qol-api/consts"
	"github.com/urbanmorph/transport-qol-api/schema"
)

// Config carries the scoring framework: taxonomy, benchmarks, grade
// boundaries, intervention definitions and city coefficient tables. The
// framework is fixed for the lifetime of an Engine.
type Config struct {
	Dimensions    []schema.Dimension
	Benchmarks    map[string]schema.Benchmark
	Grades        []schema.GradeBoundary
	FrameworkSize int
	Interventions []schema.InterventionDefinition
	Presets       []schema.ScenarioPreset
	Coefficients  map[string]schema.CityCoefficients
	FallbackCity  string
}

// DefaultConfig returns the production framework.
func DefaultConfig() Config {
	return Config{
		Dimensions:    schema.DefaultDimensions,
		Benchmarks:    schema.DefaultBenchmarks,
		Grades:        schema.DefaultGradeBoundaries,
		FrameworkSize: consts.FullFrameworkSize,
		Interventions: schema.DefaultInterventions,
		Presets:       schema.DefaultPresets,
		Coefficients:  schema.DefaultCityCoefficients,
		FallbackCity:  schema.CoefficientFallbackCity,
	}
}

// Engine evaluates QoL scores, confidence, scenarios and gap analyses over an
// immutable baseline dataset. All methods are pure: every update (live data,
// scenario slider) is expressed as a fresh Overrides map, never as a mutation
// of the baseline, so concurrent calls need no locking.
type Engine struct {
	cfg      Config
	baseline map[string]schema.CityValues
	cityIDs  []string
	facts    FactProvider
}

// NewEngine builds an engine over the given baseline with the production
// framework. facts may be nil, in which case the externally-sourced
// confidence factors score zero.
func NewEngine(baseline map[string]schema.CityValues, facts FactProvider) *Engine {
	return NewEngineWithConfig(DefaultConfig(), baseline, facts)
}

// NewEngineWithConfig builds an engine with a custom framework. Used by tests
// and by callers that score a reduced indicator set.
func NewEngineWithConfig(cfg Config, baseline map[string]schema.CityValues, facts FactProvider) *Engine {
	ids := make([]string, 0, len(baseline))
	for id := range baseline {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return &Engine{
		cfg:      cfg,
		baseline: baseline,
		cityIDs:  ids,
		facts:    facts,
	}
}

// CityIDs returns the baseline city ids in stable order.
func (e *Engine) CityIDs() []string {
	out := make([]string, len(e.cityIDs))
	copy(out, e.cityIDs)
	return out
}

// Interventions returns the configured policy levers.
func (e *Engine) Interventions() []schema.InterventionDefinition {
	return e.cfg.Interventions
}

// Presets returns the configured scenario presets.
func (e *Engine) Presets() []schema.ScenarioPreset {
	return e.cfg.Presets
}

// IndicatorDefinition looks an indicator up across all dimensions.
func (e *Engine) IndicatorDefinition(key string) (schema.IndicatorDefinition, bool) {
	for _, dim := range e.cfg.Dimensions {
		for _, ind := range dim.Indicators {
			if ind.Key == key {
				return ind, true
			}
		}
	}
	return schema.IndicatorDefinition{}, false
}

// resolveValue applies the override-wins-when-present-and-non-nil rule. It
// returns nil for an unknown city or an unmeasured indicator.
func (e *Engine) resolveValue(cityID, key string, overrides schema.Overrides) *float64 {
	if v, ok := overrides.Value(cityID, key); ok {
		return &v
	}
	city, ok := e.baseline[cityID]
	if !ok {
		return nil
	}
	return city[key]
}
