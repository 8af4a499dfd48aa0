package score

import (
	"math"

	"github.com/urbanmorph/transport-qol-api/consts"
	"github.com/urbanmorph/transport-qol-api/schema"
)

// Confidence computes the multi-factor data-confidence breakdown for a city.
// Each factor lands on a 0-100 scale; the composite is their fixed-weight
// linear combination rounded to the nearest integer. Indicator coverage is
// measured against the full target framework, not only the indicators
// currently implemented, so confidence reflects aspirational completeness.
func (e *Engine) Confidence(cityID string, indicatorsAvailable int, overrides schema.Overrides) schema.ConfidenceBreakdown {
	var factors schema.ConfidenceFactors

	if e.cfg.FrameworkSize > 0 {
		factors.IndicatorCoverage = clamp100(float64(indicatorsAvailable) / float64(e.cfg.FrameworkSize) * 100)
	}

	if indicatorsAvailable > 0 {
		factors.LiveDataFreshness = clamp100(float64(overrides.CountFor(cityID)) / float64(indicatorsAvailable) * 100)
	}

	if e.facts != nil {
		sensors := e.facts.SensorCounts(cityID)
		count := sensors.PM25 + sensors.NO2
		if count > consts.SensorCoverageSaturation {
			count = consts.SensorCoverageSaturation
		}
		factors.SensorCoverage = float64(count) / float64(consts.SensorCoverageSaturation) * 100

		if sources, ok := e.facts.TransitSources(cityID); ok {
			factors.TransitDataQuality = float64(transitQualityPoints(sources)) / float64(consts.TransitQualityMaxPoints) * 100
		}

		if readiness, ok := e.facts.ReadinessSummary(cityID); ok && readiness.MaxScore > 0 {
			factors.DataReadiness = clamp100(readiness.Total / readiness.MaxScore * 100)
		}

		switch e.facts.DataLayerStatus(cityID, schema.LayerAltmoTraces) {
		case schema.LayerStatusAvailable:
			factors.AltmoTraces = 100
		case schema.LayerStatusPartial:
			factors.AltmoTraces = 50
		}
	}

	weighted := factors.IndicatorCoverage*consts.ConfidenceWeightIndicatorCoverage +
		factors.LiveDataFreshness*consts.ConfidenceWeightLiveDataFreshness +
		factors.SensorCoverage*consts.ConfidenceWeightSensorCoverage +
		factors.TransitDataQuality*consts.ConfidenceWeightTransitDataQuality +
		factors.DataReadiness*consts.ConfidenceWeightDataReadiness +
		factors.AltmoTraces*consts.ConfidenceWeightAltmoTraces

	score := int(math.Round(weighted))

	return schema.ConfidenceBreakdown{
		Tier:    TierForScore(score),
		Score:   score,
		Factors: factors,
	}
}

// TierForScore classifies a 0-100 confidence score.
func TierForScore(score int) schema.ConfidenceTier {
	switch {
	case score >= consts.ConfidenceTierGoldMin:
		return schema.ConfidenceTierGold
	case score >= consts.ConfidenceTierSilverMin:
		return schema.ConfidenceTierSilver
	default:
		return schema.ConfidenceTierBronze
	}
}

// transitQualityPoints is the transit source checklist, out of
// consts.TransitQualityMaxPoints.
func transitQualityPoints(sources schema.TransitSources) int {
	points := 0

	switch sources.BusSource {
	case schema.TransitSourceGTFS:
		points += 5
	case schema.TransitSourceStatic:
		points += 3
	}

	switch sources.MetroSource {
	case schema.TransitSourceGTFS:
		points += 5
	case schema.TransitSourceStatic:
		points += 3
	}

	if sources.SuburbanRail {
		points += 3
	}
	if sources.OperationalLineWhitelist {
		points += 3
	}
	if sources.RidershipData {
		points += 4
	}

	return points
}
