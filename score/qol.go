package score

import (
	"sort"

	"github.com/urbanmorph/transport-qol-api/schema"
)

// CityQoL scores one city: normalization, dimension aggregation, composite
// grade and confidence in a single pass. It returns nil for an unknown city.
//
// A dimension score is the mean over all its indicators with nil normalized
// values substituted by 0. Missing data is penalized, not excluded, so a city
// that does not measure an indicator is treated as scoring worst-case; this
// keeps the index incentive-compatible with disclosure.
func (e *Engine) CityQoL(cityID string, overrides schema.Overrides) *schema.CityQoLScore {
	if _, ok := e.baseline[cityID]; !ok {
		return nil
	}

	dimensions := make([]schema.DimensionScore, 0, len(e.cfg.Dimensions))
	composite := float64(0)
	available := 0

	for _, d := range e.cfg.Dimensions {
		ds := schema.DimensionScore{
			Key:        d.Key,
			Label:      d.Label,
			Weight:     d.Weight,
			TotalCount: len(d.Indicators),
			Indicators: make([]schema.NormalizedIndicator, 0, len(d.Indicators)),
		}

		sum := float64(0)
		for _, ind := range d.Indicators {
			value := e.resolveValue(cityID, ind.Key, overrides)
			ni := schema.NormalizedIndicator{
				Key:   ind.Key,
				Label: ind.Label,
				Unit:  ind.Unit,
				Value: value,
			}
			if value != nil {
				n := e.Normalize(ind.Key, *value, ind.Effect)
				ni.Normalized = &n
				sum += n
				ds.AvailableCount++
			}
			ds.Indicators = append(ds.Indicators, ni)
		}

		if len(d.Indicators) > 0 {
			ds.Score = sum / float64(len(d.Indicators))
		}
		ds.Weighted = ds.Score * d.Weight

		composite += ds.Weighted
		available += ds.AvailableCount
		dimensions = append(dimensions, ds)
	}

	breakdown := e.Confidence(cityID, available, overrides)

	return &schema.CityQoLScore{
		CityID:              cityID,
		Composite:           composite,
		Grade:               e.gradeFor(composite),
		Dimensions:          dimensions,
		Confidence:          breakdown.Score,
		ConfidenceBreakdown: breakdown,
		IndicatorsAvailable: available,
		IndicatorsTotal:     e.cfg.FrameworkSize,
	}
}

// AllQoL scores every baseline city, sorted descending by composite.
func (e *Engine) AllQoL(overrides schema.Overrides) []schema.CityQoLScore {
	out := make([]schema.CityQoLScore, 0, len(e.cityIDs))
	for _, id := range e.cityIDs {
		if q := e.CityQoL(id, overrides); q != nil {
			out = append(out, *q)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Composite > out[j].Composite
	})
	return out
}

// gradeFor walks the boundaries best-first and returns the first grade whose
// minimum does not exceed the composite, so an exact boundary value
// qualifies for the better grade.
func (e *Engine) gradeFor(composite float64) string {
	for _, g := range e.cfg.Grades {
		if g.Min <= composite {
			return g.Grade
		}
	}
	if n := len(e.cfg.Grades); n > 0 {
		return e.cfg.Grades[n-1].Grade
	}
	return ""
}
