package schema

// City identifies one scored city.
type City struct {
	ID    string `json:"id" bson:"id"`
	Name  string `json:"name" bson:"name"`
	State string `json:"state" bson:"state"`
}

// CityValues is the sparse baseline dataset for one city: indicator key to
// raw value. A nil value means "not measured", which is an expected state,
// not an error.
type CityValues map[string]*float64

// Clone returns a copy safe to mutate.
func (v CityValues) Clone() CityValues {
	out := make(CityValues, len(v))
	for k, p := range v {
		if p == nil {
			out[k] = nil
			continue
		}
		val := *p
		out[k] = &val
	}
	return out
}

// Overrides is a sparse city -> indicator -> value map that shadows the
// baseline dataset for one computation. It is constructed fresh per request
// and never persisted. An override wins only when present and non-nil; a nil
// entry falls through to the baseline.
type Overrides map[string]map[string]*float64

// Value returns the override for (cityID, key) when it is present and
// non-nil.
func (o Overrides) Value(cityID, key string) (float64, bool) {
	if o == nil {
		return 0, false
	}
	cv, ok := o[cityID]
	if !ok {
		return 0, false
	}
	p, ok := cv[key]
	if !ok || p == nil {
		return 0, false
	}
	return *p, true
}

// CountFor returns the number of override entries present for a city,
// including explicit nil entries.
func (o Overrides) CountFor(cityID string) int {
	if o == nil {
		return 0
	}
	return len(o[cityID])
}

// Set records an override value for one city and indicator.
func (o Overrides) Set(cityID, key string, value *float64) {
	cv, ok := o[cityID]
	if !ok {
		cv = map[string]*float64{}
		o[cityID] = cv
	}
	cv[key] = value
}

// WithCity returns a new Overrides with values layered on top of o for one
// city. The receiver is not mutated; inner maps are copied.
func (o Overrides) WithCity(cityID string, values map[string]*float64) Overrides {
	out := make(Overrides, len(o)+1)
	for city, cv := range o {
		copied := make(map[string]*float64, len(cv))
		for k, p := range cv {
			copied[k] = p
		}
		out[city] = copied
	}
	cv, ok := out[cityID]
	if !ok {
		cv = make(map[string]*float64, len(values))
		out[cityID] = cv
	}
	for k, p := range values {
		cv[k] = p
	}
	return out
}

// Float64 is a convenience for building sparse datasets and overrides.
func Float64(v float64) *float64 {
	return &v
}

// DefaultCities lists the metros covered by the dashboard.
var DefaultCities = []City{
	{ID: "bengaluru", Name: "Bengaluru", State: "Karnataka"},
	{ID: "delhi", Name: "Delhi", State: "NCT of Delhi"},
	{ID: "mumbai", Name: "Mumbai", State: "Maharashtra"},
	{ID: "chennai", Name: "Chennai", State: "Tamil Nadu"},
	{ID: "hyderabad", Name: "Hyderabad", State: "Telangana"},
	{ID: "pune", Name: "Pune", State: "Maharashtra"},
	{ID: "kolkata", Name: "Kolkata", State: "West Bengal"},
	{ID: "ahmedabad", Name: "Ahmedabad", State: "Gujarat"},
}

// DefaultBaseline is the static baseline dataset, read-only at runtime. Live
// and scenario values shadow it through Overrides instead of mutating it.
var DefaultBaseline = map[string]CityValues{
	"bengaluru": {
		"road_fatalities_per_lakh":  Float64(8.5),
		"pedestrian_fatality_share": Float64(28),
		"pm25_annual":               Float64(33),
		"no2_annual":                Float64(38),
		"pt_mode_share":             Float64(30),
		"metro_network_km":          Float64(74),
		"bus_fleet_per_lakh":        Float64(45),
		"avg_commute_minutes":       Float64(42),
		"walk_cycle_share":          Float64(26),
		"footpath_coverage_pct":     Float64(35),
		"peak_congestion_index":     Float64(48),
		"avg_peak_speed_kmph":       Float64(18),
	},
	"delhi": {
		"road_fatalities_per_lakh":  Float64(7.2),
		"pedestrian_fatality_share": Float64(42),
		"pm25_annual":               Float64(98),
		"no2_annual":                Float64(60),
		"pt_mode_share":             Float64(38),
		"metro_network_km":          Float64(390),
		"bus_fleet_per_lakh":        Float64(22),
		"avg_commute_minutes":       Float64(45),
		"walk_cycle_share":          Float64(30),
		"footpath_coverage_pct":     Float64(40),
		"peak_congestion_index":     Float64(48),
		"avg_peak_speed_kmph":       Float64(23),
	},
	"mumbai": {
		"road_fatalities_per_lakh":  Float64(4.5),
		"pedestrian_fatality_share": Float64(52),
		"pm25_annual":               Float64(45),
		"no2_annual":                Float64(42),
		"pt_mode_share":             Float64(52),
		"metro_network_km":          Float64(46),
		"bus_fleet_per_lakh":        Float64(27),
		"avg_commute_minutes":       Float64(52),
		"walk_cycle_share":          Float64(36),
		"footpath_coverage_pct":     Float64(30),
		"peak_congestion_index":     Float64(53),
		"avg_peak_speed_kmph":       Float64(17),
	},
	"chennai": {
		"road_fatalities_per_lakh":  Float64(10.8),
		"pedestrian_fatality_share": Float64(35),
		"pm25_annual":               Float64(34),
		"no2_annual":                Float64(30),
		"pt_mode_share":             Float64(28),
		"metro_network_km":          Float64(54),
		"bus_fleet_per_lakh":        Float64(30),
		"avg_commute_minutes":       Float64(38),
		"walk_cycle_share":          Float64(28),
		"footpath_coverage_pct":     Float64(25),
		"peak_congestion_index":     Float64(42),
		"avg_peak_speed_kmph":       Float64(21),
	},
	"hyderabad": {
		"road_fatalities_per_lakh":  Float64(9.1),
		"pedestrian_fatality_share": Float64(30),
		"pm25_annual":               Float64(39),
		"no2_annual":                Float64(33),
		"pt_mode_share":             Float64(24),
		"metro_network_km":          Float64(69),
		"bus_fleet_per_lakh":        Float64(25),
		"avg_commute_minutes":       Float64(40),
		"walk_cycle_share":          Float64(22),
		"footpath_coverage_pct":     Float64(28),
		"peak_congestion_index":     Float64(38),
		"avg_peak_speed_kmph":       Float64(22),
	},
	"pune": {
		"road_fatalities_per_lakh":  Float64(6.3),
		"pedestrian_fatality_share": nil,
		"pm25_annual":               Float64(46),
		"no2_annual":                Float64(41),
		"pt_mode_share":             Float64(18),
		"metro_network_km":          Float64(33),
		"bus_fleet_per_lakh":        Float64(28),
		"avg_commute_minutes":       Float64(35),
		"walk_cycle_share":          Float64(33),
		"footpath_coverage_pct":     Float64(22),
		"peak_congestion_index":     Float64(44),
		"avg_peak_speed_kmph":       Float64(19),
	},
	"kolkata": {
		"road_fatalities_per_lakh":  Float64(3.8),
		"pedestrian_fatality_share": Float64(47),
		"pm25_annual":               Float64(55),
		"no2_annual":                Float64(50),
		"pt_mode_share":             Float64(54),
		"metro_network_km":          Float64(48),
		"bus_fleet_per_lakh":        Float64(35),
		"avg_commute_minutes":       Float64(48),
		"walk_cycle_share":          Float64(38),
		"footpath_coverage_pct":     nil,
		"peak_congestion_index":     Float64(50),
		"avg_peak_speed_kmph":       Float64(16),
	},
	"ahmedabad": {
		"road_fatalities_per_lakh":  Float64(5.9),
		"pedestrian_fatality_share": Float64(31),
		"pm25_annual":               Float64(50),
		"no2_annual":                nil,
		"pt_mode_share":             Float64(16),
		"metro_network_km":          Float64(40),
		"bus_fleet_per_lakh":        Float64(18),
		"avg_commute_minutes":       Float64(32),
		"walk_cycle_share":          Float64(29),
		"footpath_coverage_pct":     nil,
		"peak_congestion_index":     Float64(35),
		"avg_peak_speed_kmph":       Float64(24),
	},
}
