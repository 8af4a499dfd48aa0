package score

import (
	"fmt"

	"github.com/urbanmorph/transport-qol-api/schema"
)

// ScenarioOverrides synthesizes the override layer for an intervention
// bundle: it snapshots the city's current indicator values (baseline shadowed
// by any live overrides), applies every effect of every intervention whose
// slider moved off its status quo, clamps the results at zero, and layers the
// working set on top of the caller's overrides. The result feeds the same
// CityQoL path as the baseline so the two scores can never diverge in
// normalization or aggregation semantics.
func (e *Engine) ScenarioOverrides(cityID string, values map[string]float64, baselineOverrides schema.Overrides) schema.Overrides {
	if _, ok := e.baseline[cityID]; !ok {
		return nil
	}

	modified := map[string]*float64{}
	for _, d := range e.cfg.Dimensions {
		for _, ind := range d.Indicators {
			if v := e.resolveValue(cityID, ind.Key, baselineOverrides); v != nil {
				value := *v
				modified[ind.Key] = &value
			}
		}
	}

	for _, intervention := range e.cfg.Interventions {
		slider, ok := values[intervention.Key]
		if !ok {
			continue
		}
		statusQuo := e.interventionBaseline(cityID, intervention, baselineOverrides)
		if slider == statusQuo {
			continue
		}

		for _, effect := range intervention.Effects {
			coefficient := e.effectCoefficient(cityID, effect)

			switch effect.Mode {
			case schema.EffectSet:
				value := slider
				modified[effect.Indicator] = &value

			case schema.EffectDeltaPerUnit:
				current := modified[effect.Indicator]
				if current == nil {
					continue
				}
				value := *current + coefficient*(slider-statusQuo)
				modified[effect.Indicator] = &value

			case schema.EffectMultiply:
				current := modified[effect.Indicator]
				if current == nil {
					continue
				}
				factor := 1 - coefficient*slider/100
				if factor < 0 {
					factor = 0
				}
				value := *current * factor
				modified[effect.Indicator] = &value
			}
		}
	}

	for key, value := range modified {
		if value != nil && *value < 0 {
			zero := float64(0)
			modified[key] = &zero
		}
	}

	return baselineOverrides.WithCity(cityID, modified)
}

// ScenarioResult scores an intervention bundle against the baseline. It
// returns nil for an unknown city. Both sides run through CityQoL with
// identical semantics; the scenario side only differs by the synthesized
// override layer.
func (e *Engine) ScenarioResult(cityID string, values map[string]float64, baselineOverrides schema.Overrides) *schema.ScenarioResult {
	baseline := e.CityQoL(cityID, baselineOverrides)
	if baseline == nil {
		return nil
	}

	scenarioOverrides := e.ScenarioOverrides(cityID, values, baselineOverrides)
	scenario := e.CityQoL(cityID, scenarioOverrides)

	changes := make([]schema.IndicatorChange, 0, baseline.IndicatorsTotal)
	for i, d := range baseline.Dimensions {
		for j, before := range d.Indicators {
			after := scenario.Dimensions[i].Indicators[j]
			change := schema.IndicatorChange{
				Key:      before.Key,
				Label:    before.Label,
				Unit:     before.Unit,
				Baseline: before.Value,
				Scenario: after.Value,
			}
			if before.Value != nil && after.Value != nil {
				delta := *after.Value - *before.Value
				change.Delta = &delta
			}
			changes = append(changes, change)
		}
	}

	return &schema.ScenarioResult{
		Baseline:         *baseline,
		Scenario:         *scenario,
		Delta:            scenario.Composite - baseline.Composite,
		GradeChange:      fmt.Sprintf("%s -> %s", baseline.Grade, scenario.Grade),
		IndicatorChanges: changes,
	}
}

// ResolvePreset expands a named preset into intervention values for one city.
// Monotonic sliders are resolved with max(preset, status quo) so a preset
// never regresses a lever below what the city already has.
func (e *Engine) ResolvePreset(cityID, presetKey string, baselineOverrides schema.Overrides) (map[string]float64, bool) {
	for _, preset := range e.cfg.Presets {
		if preset.Key != presetKey {
			continue
		}
		values := make(map[string]float64, len(preset.Values))
		for _, intervention := range e.cfg.Interventions {
			v, ok := preset.Values[intervention.Key]
			if !ok {
				continue
			}
			if intervention.Monotonic {
				if current := e.interventionBaseline(cityID, intervention, baselineOverrides); current > v {
					v = current
				}
			}
			values[intervention.Key] = v
		}
		return values, true
	}
	return nil, false
}

// interventionBaseline is the slider's status-quo position for a city: the
// current value of its anchoring indicator when one is declared, otherwise
// the definition default.
func (e *Engine) interventionBaseline(cityID string, intervention schema.InterventionDefinition, overrides schema.Overrides) float64 {
	if intervention.BaselineIndicator != "" {
		if v := e.resolveValue(cityID, intervention.BaselineIndicator, overrides); v != nil {
			return *v
		}
	}
	return intervention.Default
}

// effectCoefficient resolves a possibly city-specific coefficient, falling
// back to the reference city's table for cities without one of their own.
func (e *Engine) effectCoefficient(cityID string, effect schema.InterventionEffect) float64 {
	if effect.CityCoefficient == "" {
		return effect.Coefficient
	}
	if coefficients, ok := e.cfg.Coefficients[cityID]; ok {
		if v, ok := coefficients[effect.CityCoefficient]; ok {
			return v
		}
	}
	if coefficients, ok := e.cfg.Coefficients[e.cfg.FallbackCity]; ok {
		return coefficients[effect.CityCoefficient]
	}
	return 0
}
