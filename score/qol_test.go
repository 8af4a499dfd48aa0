package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/urbanmorph/transport-qol-api/schema"
)

// syntheticConfig is a minimal two-indicator, one-dimension framework used to
// pin the pipeline arithmetic down to exact values.
func syntheticConfig() Config {
	return Config{
		Dimensions: []schema.Dimension{
			{
				Key:    "access",
				Label:  "Access",
				Weight: 1.0,
				Indicators: []schema.IndicatorDefinition{
					{Key: "a", Label: "Indicator A", Unit: "pts", Effect: schema.IndicatorEffectPositive},
					{Key: "b", Label: "Indicator B", Unit: "pts", Effect: schema.IndicatorEffectPositive},
				},
			},
		},
		Benchmarks: map[string]schema.Benchmark{
			"a": {WorstRef: 0, Target: 100},
			"b": {WorstRef: 0, Target: 100},
		},
		Grades: []schema.GradeBoundary{
			{Grade: "A", Min: 0.75},
			{Grade: "B", Min: 0.5},
			{Grade: "C", Min: 0},
		},
		FrameworkSize: 2,
	}
}

func TestCityQoLEndToEndExample(t *testing.T) {
	e := NewEngineWithConfig(syntheticConfig(), map[string]schema.CityValues{
		"testville": {"a": schema.Float64(50), "b": schema.Float64(50)},
	}, nil)

	qol := e.CityQoL("testville", nil)
	assert.NotNil(t, qol)
	assert.Equal(t, 0.5, qol.Composite)
	// the boundary value itself qualifies for the better grade
	assert.Equal(t, "B", qol.Grade)
	assert.Len(t, qol.Dimensions, 1)
	assert.Equal(t, 0.5, qol.Dimensions[0].Score)
	assert.Equal(t, 0.5, qol.Dimensions[0].Weighted)
	assert.Equal(t, 2, qol.Dimensions[0].AvailableCount)
	assert.Equal(t, 2, qol.IndicatorsAvailable)
}

func TestCityQoLUnknownCity(t *testing.T) {
	e := NewEngine(schema.DefaultBaseline, nil)
	assert.Nil(t, e.CityQoL("atlantis", nil))
}

func TestCityQoLMissingDataPenalty(t *testing.T) {
	cfg := syntheticConfig()
	withNull := NewEngineWithConfig(cfg, map[string]schema.CityValues{
		"testville": {"a": schema.Float64(50), "b": nil},
	}, nil)

	nullScore := withNull.CityQoL("testville", nil)
	assert.Equal(t, 0.25, nullScore.Dimensions[0].Score)
	assert.Equal(t, 1, nullScore.Dimensions[0].AvailableCount)
	assert.Nil(t, nullScore.Dimensions[0].Indicators[1].Normalized)

	// a measured value, however bad, can never score below the null penalty
	for _, v := range []float64{-100, 0, 1, 25, 50, 100, 500} {
		withValue := NewEngineWithConfig(cfg, map[string]schema.CityValues{
			"testville": {"a": schema.Float64(50), "b": schema.Float64(v)},
		}, nil)
		s := withValue.CityQoL("testville", nil)
		assert.GreaterOrEqual(t, s.Dimensions[0].Score, nullScore.Dimensions[0].Score, "value %f", v)
	}
}

func TestCityQoLOverridePrecedence(t *testing.T) {
	e := NewEngineWithConfig(syntheticConfig(), map[string]schema.CityValues{
		"testville": {"a": schema.Float64(50), "b": schema.Float64(50)},
	}, nil)

	overrides := schema.Overrides{"testville": {"a": schema.Float64(100)}}
	qol := e.CityQoL("testville", overrides)
	assert.Equal(t, 0.75, qol.Composite)
	assert.Equal(t, "A", qol.Grade)

	// an explicitly nil override falls through to the baseline
	nullOverride := schema.Overrides{"testville": {"a": nil}}
	qol = e.CityQoL("testville", nullOverride)
	assert.Equal(t, 0.5, qol.Composite)
}

func TestBenchmarkAnchoring(t *testing.T) {
	before := NewEngine(schema.DefaultBaseline, nil).CityQoL("bengaluru", nil)

	extended := make(map[string]schema.CityValues, len(schema.DefaultBaseline)+1)
	for id, values := range schema.DefaultBaseline {
		extended[id] = values
	}
	extended["synthtown"] = schema.CityValues{
		"pm25_annual":   schema.Float64(5),
		"pt_mode_share": schema.Float64(90),
	}

	after := NewEngine(extended, nil).CityQoL("bengaluru", nil)
	assert.Equal(t, before.Composite, after.Composite)
	assert.Equal(t, before.Grade, after.Grade)
}

func TestCompositeRangeAndGradeMonotonicity(t *testing.T) {
	e := NewEngine(schema.DefaultBaseline, NewStaticFacts())
	all := e.AllQoL(nil)
	assert.Len(t, all, len(schema.DefaultBaseline))

	gradeIndex := func(grade string) int {
		for i, g := range schema.DefaultGradeBoundaries {
			if g.Grade == grade {
				return i
			}
		}
		return -1
	}

	prevComposite := 1.1
	prevGrade := -1
	for _, qol := range all {
		assert.GreaterOrEqual(t, qol.Composite, 0.0)
		assert.LessOrEqual(t, qol.Composite, 1.0)
		assert.LessOrEqual(t, qol.Composite, prevComposite, "AllQoL must be sorted descending")

		idx := gradeIndex(qol.Grade)
		assert.GreaterOrEqual(t, idx, 0)
		assert.GreaterOrEqual(t, idx, prevGrade, "a lower composite must never earn a better grade")

		prevComposite = qol.Composite
		prevGrade = idx
	}
}

func TestCityQoLEmptyDimensionGuard(t *testing.T) {
	cfg := syntheticConfig()
	cfg.Dimensions = append(cfg.Dimensions, schema.Dimension{Key: "empty", Label: "Empty", Weight: 0})

	e := NewEngineWithConfig(cfg, map[string]schema.CityValues{
		"testville": {"a": schema.Float64(50), "b": schema.Float64(50)},
	}, nil)

	qol := e.CityQoL("testville", nil)
	assert.Equal(t, 0.0, qol.Dimensions[1].Score)
	assert.Equal(t, 0.5, qol.Composite)
}
