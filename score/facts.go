package score

import (
	"github.com/urbanmorph/transport-qol-api/schema"
)

// FactProvider supplies the externally-sourced facts the confidence
// estimator consumes: readiness checklists, data layer statuses, transit
// source descriptors and sensor counts. The engine only reads these; it never
// computes them.
type FactProvider interface {
	ReadinessSummary(cityID string) (schema.ReadinessSummary, bool)
	DataLayerStatus(cityID, layer string) schema.LayerStatus
	TransitSources(cityID string) (schema.TransitSources, bool)
	SensorCounts(cityID string) schema.SensorCounts
}

// StaticFacts is a FactProvider backed by in-memory reference tables.
type StaticFacts struct {
	Readiness map[string]schema.ReadinessSummary
	Layers    map[string]map[string]schema.LayerStatus
	Transit   map[string]schema.TransitSources
	Sensors   map[string]schema.SensorCounts
}

// NewStaticFacts returns the configured reference facts for the default
// cities.
func NewStaticFacts() *StaticFacts {
	return &StaticFacts{
		Readiness: schema.DefaultReadiness,
		Layers:    schema.DefaultLayerStatus,
		Transit:   schema.DefaultTransitSources,
		Sensors:   schema.DefaultSensorCounts,
	}
}

func (f *StaticFacts) ReadinessSummary(cityID string) (schema.ReadinessSummary, bool) {
	rs, ok := f.Readiness[cityID]
	return rs, ok
}

func (f *StaticFacts) DataLayerStatus(cityID, layer string) schema.LayerStatus {
	layers, ok := f.Layers[cityID]
	if !ok {
		return schema.LayerStatusUnavailable
	}
	status, ok := layers[layer]
	if !ok {
		return schema.LayerStatusUnavailable
	}
	return status
}

func (f *StaticFacts) TransitSources(cityID string) (schema.TransitSources, bool) {
	ts, ok := f.Transit[cityID]
	return ts, ok
}

func (f *StaticFacts) SensorCounts(cityID string) schema.SensorCounts {
	return f.Sensors[cityID]
}
