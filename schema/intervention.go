package schema

// EffectMode tells how an intervention effect is applied to its target
// indicator.
type EffectMode string

const (
	// EffectSet writes the slider value into the indicator directly.
	EffectSet EffectMode = "set"
	// EffectDeltaPerUnit adds coefficient * (slider - baseline) to the
	// indicator.
	EffectDeltaPerUnit EffectMode = "delta_per_unit"
	// EffectMultiply scales the indicator by 1 - coefficient * slider / 100.
	EffectMultiply EffectMode = "multiply"
)

// CoefficientKey selects a city-specific coefficient from CityCoefficients.
type CoefficientKey string

const (
	CoefModeShiftPerMetroKm        CoefficientKey = "mode_shift_per_metro_km"
	CoefCongestionReliefPerMetroKm CoefficientKey = "congestion_relief_per_metro_km"
	CoefCommuteReliefPerMetroKm    CoefficientKey = "commute_relief_per_metro_km"
	CoefModeShiftPerBus            CoefficientKey = "mode_shift_per_bus"
	CoefTransportPM25Share         CoefficientKey = "transport_pm25_share"
	CoefTransportNO2Share          CoefficientKey = "transport_no2_share"
	CoefWalkShiftPerFootpathPct    CoefficientKey = "walk_shift_per_footpath_pct"
	CoefPedSafetyPerFootpathPct    CoefficientKey = "ped_safety_per_footpath_pct"
)

// CityCoefficients holds the city-specific response coefficients used by the
// scenario engine: a kilometre of new metro relieves congestion differently
// in different cities, and the transport share of PM2.5 varies with the local
// source apportionment.
type CityCoefficients map[CoefficientKey]float64

// CoefficientFallbackCity supplies coefficients for cities without a table of
// their own.
const CoefficientFallbackCity = "bengaluru"

// DefaultCityCoefficients is keyed by city id, falling back to
// CoefficientFallbackCity for cities not listed.
var DefaultCityCoefficients = map[string]CityCoefficients{
	"bengaluru": {
		CoefModeShiftPerMetroKm:        0.08,
		CoefCongestionReliefPerMetroKm: -0.06,
		CoefCommuteReliefPerMetroKm:    -0.05,
		CoefModeShiftPerBus:            0.15,
		CoefTransportPM25Share:         0.42,
		CoefTransportNO2Share:          0.55,
		CoefWalkShiftPerFootpathPct:    0.10,
		CoefPedSafetyPerFootpathPct:    -0.12,
	},
	"delhi": {
		CoefModeShiftPerMetroKm:        0.04,
		CoefCongestionReliefPerMetroKm: -0.03,
		CoefCommuteReliefPerMetroKm:    -0.02,
		CoefModeShiftPerBus:            0.12,
		CoefTransportPM25Share:         0.28,
		CoefTransportNO2Share:          0.50,
		CoefWalkShiftPerFootpathPct:    0.09,
		CoefPedSafetyPerFootpathPct:    -0.15,
	},
	"mumbai": {
		CoefModeShiftPerMetroKm:        0.06,
		CoefCongestionReliefPerMetroKm: -0.05,
		CoefCommuteReliefPerMetroKm:    -0.04,
		CoefModeShiftPerBus:            0.10,
		CoefTransportPM25Share:         0.35,
		CoefTransportNO2Share:          0.52,
		CoefWalkShiftPerFootpathPct:    0.08,
		CoefPedSafetyPerFootpathPct:    -0.18,
	},
	"chennai": {
		CoefModeShiftPerMetroKm:        0.07,
		CoefCongestionReliefPerMetroKm: -0.05,
		CoefCommuteReliefPerMetroKm:    -0.04,
		CoefModeShiftPerBus:            0.14,
		CoefTransportPM25Share:         0.38,
		CoefTransportNO2Share:          0.53,
		CoefWalkShiftPerFootpathPct:    0.10,
		CoefPedSafetyPerFootpathPct:    -0.11,
	},
}

// InterventionEffect applies one intervention to one indicator. When
// CityCoefficient is set the coefficient comes from the city coefficient
// table; otherwise Coefficient is used as-is.
type InterventionEffect struct {
	Indicator       string         `json:"indicator" bson:"indicator"`
	Mode            EffectMode     `json:"mode" bson:"mode"`
	Coefficient     float64        `json:"coefficient,omitempty" bson:"coefficient,omitempty"`
	CityCoefficient CoefficientKey `json:"city_coefficient,omitempty" bson:"city_coefficient,omitempty"`
}

// InterventionDefinition is a named, slider-controlled policy lever. When
// BaselineIndicator is set, the slider's status-quo position for a city is
// that indicator's current value; otherwise Default is the status quo.
// Monotonic levers are never resolved below the status quo by presets.
type InterventionDefinition struct {
	Key               string               `json:"key" bson:"key"`
	Label             string               `json:"label" bson:"label"`
	Unit              string               `json:"unit" bson:"unit"`
	Min               float64              `json:"min" bson:"min"`
	Max               float64              `json:"max" bson:"max"`
	Step              float64              `json:"step" bson:"step"`
	Default           float64              `json:"default" bson:"default"`
	BaselineIndicator string               `json:"baseline_indicator,omitempty" bson:"baseline_indicator,omitempty"`
	Monotonic         bool                 `json:"monotonic" bson:"monotonic"`
	Effects           []InterventionEffect `json:"effects" bson:"effects"`
}

// DefaultInterventions are the policy levers exposed by the dashboard.
var DefaultInterventions = []InterventionDefinition{
	{
		Key:               "metro_expansion",
		Label:             "Expand metro network",
		Unit:              "km",
		Min:               0,
		Max:               400,
		Step:              5,
		BaselineIndicator: "metro_network_km",
		Monotonic:         true,
		Effects: []InterventionEffect{
			{Indicator: "metro_network_km", Mode: EffectSet},
			{Indicator: "pt_mode_share", Mode: EffectDeltaPerUnit, CityCoefficient: CoefModeShiftPerMetroKm},
			{Indicator: "peak_congestion_index", Mode: EffectDeltaPerUnit, CityCoefficient: CoefCongestionReliefPerMetroKm},
			{Indicator: "avg_commute_minutes", Mode: EffectDeltaPerUnit, CityCoefficient: CoefCommuteReliefPerMetroKm},
		},
	},
	{
		Key:               "bus_fleet_growth",
		Label:             "Grow city bus fleet",
		Unit:              "buses/lakh",
		Min:               0,
		Max:               80,
		Step:              1,
		BaselineIndicator: "bus_fleet_per_lakh",
		Monotonic:         true,
		Effects: []InterventionEffect{
			{Indicator: "bus_fleet_per_lakh", Mode: EffectSet},
			{Indicator: "pt_mode_share", Mode: EffectDeltaPerUnit, CityCoefficient: CoefModeShiftPerBus},
		},
	},
	{
		Key:     "fleet_electrification",
		Label:   "Electrify vehicle fleet",
		Unit:    "%",
		Min:     0,
		Max:     100,
		Step:    5,
		Default: 0,
		Effects: []InterventionEffect{
			{Indicator: "pm25_annual", Mode: EffectMultiply, CityCoefficient: CoefTransportPM25Share},
			{Indicator: "no2_annual", Mode: EffectMultiply, CityCoefficient: CoefTransportNO2Share},
		},
	},
	{
		Key:               "footpath_buildout",
		Label:             "Build out footpath network",
		Unit:              "% coverage",
		Min:               0,
		Max:               100,
		Step:              5,
		BaselineIndicator: "footpath_coverage_pct",
		Monotonic:         true,
		Effects: []InterventionEffect{
			{Indicator: "footpath_coverage_pct", Mode: EffectSet},
			{Indicator: "walk_cycle_share", Mode: EffectDeltaPerUnit, CityCoefficient: CoefWalkShiftPerFootpathPct},
			{Indicator: "pedestrian_fatality_share", Mode: EffectDeltaPerUnit, CityCoefficient: CoefPedSafetyPerFootpathPct},
		},
	},
}

// ScenarioPreset bundles intervention slider values under one name. For
// monotonic interventions the preset value is resolved against the city
// status quo with max(preset, current) so a preset never regresses a slider.
type ScenarioPreset struct {
	Key    string             `json:"key" bson:"key"`
	Label  string             `json:"label" bson:"label"`
	Values map[string]float64 `json:"values" bson:"values"`
}

// DefaultPresets are the named scenarios offered by the dashboard.
var DefaultPresets = []ScenarioPreset{
	{
		Key:   "transit_push",
		Label: "Transit push",
		Values: map[string]float64{
			"metro_expansion":  150,
			"bus_fleet_growth": 50,
		},
	},
	{
		Key:   "clean_air",
		Label: "Clean air package",
		Values: map[string]float64{
			"fleet_electrification": 60,
			"footpath_buildout":     70,
		},
	},
}
