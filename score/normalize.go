package score

import (
	"github.com/urbanmorph/transport-qol-api/schema"
)

// Normalize maps a raw indicator value onto the benchmark-anchored [0,1]
// scale. Values at or beyond the target saturate at 1; values at or worse
// than the worst reference floor at 0. An unregistered or degenerate
// benchmark resolves to a neutral 0.5 instead of failing: partial display
// beats an error page on a public dashboard.
func (e *Engine) Normalize(key string, value float64, effect schema.IndicatorEffect) float64 {
	b, ok := e.cfg.Benchmarks[key]
	if !ok {
		return 0.5
	}
	if b.WorstRef == b.Target {
		return 0.5
	}

	var raw float64
	if effect == schema.IndicatorEffectNegative {
		raw = (b.WorstRef - value) / (b.WorstRef - b.Target)
	} else {
		raw = (value - b.WorstRef) / (b.Target - b.WorstRef)
	}

	return clamp01(raw)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
