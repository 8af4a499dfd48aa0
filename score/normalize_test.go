package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/urbanmorph/transport-qol-api/schema"
)

func TestNormalizeBoundsForAllBenchmarks(t *testing.T) {
	e := NewEngine(schema.DefaultBaseline, nil)

	values := []float64{-1e6, -100, 0, 0.5, 1, 10, 42, 100, 500, 1e6}
	for _, d := range schema.DefaultDimensions {
		for _, ind := range d.Indicators {
			for _, v := range values {
				n := e.Normalize(ind.Key, v, ind.Effect)
				assert.GreaterOrEqual(t, n, 0.0, "indicator %s value %f", ind.Key, v)
				assert.LessOrEqual(t, n, 1.0, "indicator %s value %f", ind.Key, v)
			}
		}
	}
}

func TestNormalizePositiveEffect(t *testing.T) {
	e := NewEngineWithConfig(Config{
		Benchmarks: map[string]schema.Benchmark{
			"coverage": {WorstRef: 0, Target: 100},
		},
	}, nil, nil)

	assert.Equal(t, 0.0, e.Normalize("coverage", 0, schema.IndicatorEffectPositive))
	assert.Equal(t, 0.5, e.Normalize("coverage", 50, schema.IndicatorEffectPositive))
	assert.Equal(t, 1.0, e.Normalize("coverage", 100, schema.IndicatorEffectPositive))

	// saturates beyond the anchors
	assert.Equal(t, 0.0, e.Normalize("coverage", -50, schema.IndicatorEffectPositive))
	assert.Equal(t, 1.0, e.Normalize("coverage", 250, schema.IndicatorEffectPositive))
}

func TestNormalizeNegativeEffect(t *testing.T) {
	e := NewEngineWithConfig(Config{
		Benchmarks: map[string]schema.Benchmark{
			"pollution": {WorstRef: 100, Target: 10},
		},
	}, nil, nil)

	assert.Equal(t, 0.0, e.Normalize("pollution", 100, schema.IndicatorEffectNegative))
	assert.Equal(t, 1.0, e.Normalize("pollution", 10, schema.IndicatorEffectNegative))
	assert.InDelta(t, 0.5, e.Normalize("pollution", 55, schema.IndicatorEffectNegative), 1e-12)

	assert.Equal(t, 0.0, e.Normalize("pollution", 1000, schema.IndicatorEffectNegative))
	assert.Equal(t, 1.0, e.Normalize("pollution", 0, schema.IndicatorEffectNegative))
}

func TestNormalizeMonotonicity(t *testing.T) {
	e := NewEngine(schema.DefaultBaseline, nil)

	for _, d := range schema.DefaultDimensions {
		for _, ind := range d.Indicators {
			prev := e.Normalize(ind.Key, -1000, ind.Effect)
			for v := float64(-990); v <= 1000; v += 10 {
				n := e.Normalize(ind.Key, v, ind.Effect)
				if ind.Effect == schema.IndicatorEffectPositive {
					assert.GreaterOrEqual(t, n, prev, "indicator %s should be non-decreasing", ind.Key)
				} else {
					assert.LessOrEqual(t, n, prev, "indicator %s should be non-increasing", ind.Key)
				}
				prev = n
			}
		}
	}
}

func TestNormalizeUnknownIndicatorIsNeutral(t *testing.T) {
	e := NewEngine(schema.DefaultBaseline, nil)
	assert.Equal(t, 0.5, e.Normalize("not_registered", 123, schema.IndicatorEffectPositive))
}

func TestNormalizeDegenerateBenchmarkIsNeutral(t *testing.T) {
	e := NewEngineWithConfig(Config{
		Benchmarks: map[string]schema.Benchmark{
			"flat": {WorstRef: 42, Target: 42},
		},
	}, nil, nil)
	assert.Equal(t, 0.5, e.Normalize("flat", 0, schema.IndicatorEffectPositive))
	assert.Equal(t, 0.5, e.Normalize("flat", 42, schema.IndicatorEffectNegative))
}
