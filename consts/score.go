package consts

// FullFrameworkSize is the number of indicators in the complete target
// framework, not the number currently scored. Confidence coverage is measured
// against this aspirational set so that cities are not rewarded for the
// framework itself being incomplete.
const FullFrameworkSize = 18

// Confidence factor weights. They sum to 1.0.
const (
	ConfidenceWeightIndicatorCoverage  = 0.15
	ConfidenceWeightLiveDataFreshness  = 0.25
	ConfidenceWeightSensorCoverage     = 0.10
	ConfidenceWeightTransitDataQuality = 0.20
	ConfidenceWeightDataReadiness      = 0.20
	ConfidenceWeightAltmoTraces        = 0.10
)

// Confidence tier thresholds on the 0-100 confidence score.
const (
	ConfidenceTierGoldMin   = 70
	ConfidenceTierSilverMin = 45
)

// SensorCoverageSaturation is the combined PM2.5 + NO2 sensor count at which
// the sensor-coverage factor saturates at 100.
const SensorCoverageSaturation = 10

// TransitQualityMaxPoints is the maximum of the transit source checklist.
const TransitQualityMaxPoints = 20

// Gap analyzer tuning.
const (
	// GapCandidateCutoff excludes indicators already performing well from the
	// upgrade-path search.
	GapCandidateCutoff = 0.7
	// GapMaxImprovements caps the upgrade path at this many indicators.
	GapMaxImprovements = 3
)
