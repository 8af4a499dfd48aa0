package schema

// LayerStatus is the availability of one named data layer for a city.
type LayerStatus string

const (
	LayerStatusAvailable   LayerStatus = "available"
	LayerStatusPartial     LayerStatus = "partial"
	LayerStatusUnavailable LayerStatus = "unavailable"
)

// Named data layers consumed by the confidence estimator.
const (
	LayerAltmoTraces    = "altmo_traces"
	LayerMetroRidership = "metro_ridership"
)

// ReadinessSummary is the per-city data-readiness checklist result computed
// upstream. The confidence estimator only reads the Total/MaxScore ratio.
type ReadinessSummary struct {
	Total      float64            `json:"total" bson:"total"`
	MaxScore   float64            `json:"max_score" bson:"max_score"`
	Categories map[string]float64 `json:"categories" bson:"categories"`
}

// TransitSourceType describes how a transit feed is published.
type TransitSourceType string

const (
	TransitSourceGTFS   TransitSourceType = "gtfs"
	TransitSourceStatic TransitSourceType = "static"
	TransitSourceNone   TransitSourceType = "none"
)

// TransitSources records which transit data sources exist for a city. The
// confidence estimator consumes these only as booleans and source types.
type TransitSources struct {
	BusSource                TransitSourceType `json:"bus_source" bson:"bus_source"`
	MetroSource              TransitSourceType `json:"metro_source" bson:"metro_source"`
	SuburbanRail             bool              `json:"suburban_rail" bson:"suburban_rail"`
	OperationalLineWhitelist bool              `json:"operational_line_whitelist" bson:"operational_line_whitelist"`
	RidershipData            bool              `json:"ridership_data" bson:"ridership_data"`
}

// SensorCounts is the number of configured air-quality sensors per city.
type SensorCounts struct {
	PM25 int `json:"pm25" bson:"pm25"`
	NO2  int `json:"no2" bson:"no2"`
}

// DefaultReadiness summarizes each city's data-readiness checklist.
var DefaultReadiness = map[string]ReadinessSummary{
	"bengaluru": {Total: 34, MaxScore: 40, Categories: map[string]float64{"transit": 10, "safety": 8, "air": 9, "movement": 7}},
	"delhi":     {Total: 30, MaxScore: 40, Categories: map[string]float64{"transit": 9, "safety": 8, "air": 10, "movement": 3}},
	"mumbai":    {Total: 27, MaxScore: 40, Categories: map[string]float64{"transit": 9, "safety": 7, "air": 8, "movement": 3}},
	"chennai":   {Total: 24, MaxScore: 40, Categories: map[string]float64{"transit": 8, "safety": 6, "air": 7, "movement": 3}},
	"hyderabad": {Total: 21, MaxScore: 40, Categories: map[string]float64{"transit": 7, "safety": 5, "air": 7, "movement": 2}},
	"pune":      {Total: 19, MaxScore: 40, Categories: map[string]float64{"transit": 6, "safety": 5, "air": 6, "movement": 2}},
	"kolkata":   {Total: 17, MaxScore: 40, Categories: map[string]float64{"transit": 6, "safety": 5, "air": 5, "movement": 1}},
	"ahmedabad": {Total: 15, MaxScore: 40, Categories: map[string]float64{"transit": 5, "safety": 4, "air": 5, "movement": 1}},
}

// DefaultLayerStatus is the per-city availability of named data layers.
var DefaultLayerStatus = map[string]map[string]LayerStatus{
	"bengaluru": {LayerAltmoTraces: LayerStatusAvailable, LayerMetroRidership: LayerStatusAvailable},
	"delhi":     {LayerAltmoTraces: LayerStatusUnavailable, LayerMetroRidership: LayerStatusAvailable},
	"mumbai":    {LayerAltmoTraces: LayerStatusPartial, LayerMetroRidership: LayerStatusAvailable},
	"chennai":   {LayerAltmoTraces: LayerStatusPartial, LayerMetroRidership: LayerStatusPartial},
	"hyderabad": {LayerAltmoTraces: LayerStatusUnavailable, LayerMetroRidership: LayerStatusPartial},
	"pune":      {LayerAltmoTraces: LayerStatusPartial, LayerMetroRidership: LayerStatusUnavailable},
	"kolkata":   {LayerAltmoTraces: LayerStatusUnavailable, LayerMetroRidership: LayerStatusUnavailable},
	"ahmedabad": {LayerAltmoTraces: LayerStatusUnavailable, LayerMetroRidership: LayerStatusUnavailable},
}

// DefaultTransitSources records the configured transit feeds per city.
var DefaultTransitSources = map[string]TransitSources{
	"bengaluru": {BusSource: TransitSourceGTFS, MetroSource: TransitSourceGTFS, SuburbanRail: false, OperationalLineWhitelist: true, RidershipData: true},
	"delhi":     {BusSource: TransitSourceGTFS, MetroSource: TransitSourceStatic, SuburbanRail: true, OperationalLineWhitelist: true, RidershipData: true},
	"mumbai":    {BusSource: TransitSourceStatic, MetroSource: TransitSourceStatic, SuburbanRail: true, OperationalLineWhitelist: false, RidershipData: true},
	"chennai":   {BusSource: TransitSourceStatic, MetroSource: TransitSourceGTFS, SuburbanRail: true, OperationalLineWhitelist: false, RidershipData: false},
	"hyderabad": {BusSource: TransitSourceStatic, MetroSource: TransitSourceStatic, SuburbanRail: true, OperationalLineWhitelist: false, RidershipData: false},
	"pune":      {BusSource: TransitSourceGTFS, MetroSource: TransitSourceStatic, SuburbanRail: false, OperationalLineWhitelist: false, RidershipData: false},
	"kolkata":   {BusSource: TransitSourceNone, MetroSource: TransitSourceStatic, SuburbanRail: true, OperationalLineWhitelist: false, RidershipData: false},
	"ahmedabad": {BusSource: TransitSourceStatic, MetroSource: TransitSourceNone, SuburbanRail: false, OperationalLineWhitelist: false, RidershipData: false},
}

// DefaultSensorCounts is the number of configured air-quality sensors.
var DefaultSensorCounts = map[string]SensorCounts{
	"bengaluru": {PM25: 9, NO2: 6},
	"delhi":     {PM25: 14, NO2: 12},
	"mumbai":    {PM25: 8, NO2: 5},
	"chennai":   {PM25: 5, NO2: 3},
	"hyderabad": {PM25: 4, NO2: 3},
	"pune":      {PM25: 4, NO2: 2},
	"kolkata":   {PM25: 3, NO2: 2},
	"ahmedabad": {PM25: 3, NO2: 1},
}

// DefaultDataUnlocks are static per-city notes about what further data
// publication would unlock. Configuration, not derived from scores.
var DefaultDataUnlocks = map[string]string{
	"bengaluru": "Publishing BMTC ETM ridership by route would unlock route-level crowding and reliability indicators.",
	"delhi":     "Opening DTC and cluster bus AVL feeds would unlock a real-time reliability indicator.",
	"mumbai":    "Suburban rail ridership by station would unlock crowding and access-time indicators.",
	"chennai":   "Publishing MTC ticketing data would unlock bus-level service coverage indicators.",
	"hyderabad": "TSRTC route-level ridership would unlock service coverage and headway indicators.",
	"pune":      "PMPML AVL and ridership feeds would unlock bus reliability indicators.",
	"kolkata":   "A consolidated bus route registry would unlock coverage and a GTFS-quality transit layer.",
	"ahmedabad": "Janmarg BRT ridership and AMTS route data would unlock corridor-level indicators.",
}

// CityRecommendationNotes appends region-specific context to the gap
// recommendation for cities where a concrete local lever exists.
var CityRecommendationNotes = map[string]string{
	"bengaluru": "The Suburban Rail Project corridors already under construction are the fastest lever here.",
	"delhi":     "Winter-season source apportionment should drive the sequencing of any air-quality measure.",
	"mumbai":    "Station-access improvements move more commuters than network extensions in this network.",
	"kolkata":   "Formalizing the private bus network is a precondition for most service-level measures.",
}
