package schema

// DefaultDimensions is the transport QoL scoring taxonomy. Dimension weights
// sum to 1.0.
var DefaultDimensions = []Dimension{
	{
		Key:    "safety",
		Label:  "Road Safety",
		Weight: 0.20,
		Indicators: []IndicatorDefinition{
			{
				Key:         "road_fatalities_per_lakh",
				Label:       "Road fatalities per lakh population",
				Unit:        "deaths/lakh/year",
				Effect:      IndicatorEffectNegative,
				Source:      "MoRTH Road Accidents in India",
				Description: "Annual road crash deaths per one hundred thousand residents.",
			},
			{
				Key:         "pedestrian_fatality_share",
				Label:       "Pedestrian share of road fatalities",
				Unit:        "%",
				Effect:      IndicatorEffectNegative,
				Source:      "MoRTH Road Accidents in India",
				Description: "Share of road deaths that are pedestrians, a proxy for how hostile streets are to people on foot.",
			},
		},
	},
	{
		Key:    "air_quality",
		Label:  "Air Quality",
		Weight: 0.20,
		Indicators: []IndicatorDefinition{
			{
				Key:         "pm25_annual",
				Label:       "Annual average PM2.5",
				Unit:        "µg/m³",
				Effect:      IndicatorEffectNegative,
				Source:      "CPCB CAAQMS",
				Description: "City-wide annual mean fine particulate concentration.",
			},
			{
				Key:         "no2_annual",
				Label:       "Annual average NO2",
				Unit:        "µg/m³",
				Effect:      IndicatorEffectNegative,
				Source:      "CPCB CAAQMS",
				Description: "Annual mean nitrogen dioxide, dominated by vehicular exhaust in Indian metros.",
			},
		},
	},
	{
		Key:    "public_transport",
		Label:  "Public Transport",
		Weight: 0.25,
		Indicators: []IndicatorDefinition{
			{
				Key:         "pt_mode_share",
				Label:       "Public transport mode share",
				Unit:        "%",
				Effect:      IndicatorEffectPositive,
				Source:      "CMP household surveys",
				Description: "Share of motorized trips made by bus, metro or suburban rail.",
			},
			{
				Key:         "metro_network_km",
				Label:       "Operational metro network",
				Unit:        "km",
				Effect:      IndicatorEffectPositive,
				Source:      "Metro rail operators",
				Description: "Route kilometres of metro currently carrying passengers.",
			},
			{
				Key:         "bus_fleet_per_lakh",
				Label:       "City buses per lakh population",
				Unit:        "buses/lakh",
				Effect:      IndicatorEffectPositive,
				Source:      "State transport undertakings",
				Description: "Scheduled city bus fleet normalized by population.",
			},
			{
				Key:         "avg_commute_minutes",
				Label:       "Average one-way commute",
				Unit:        "min",
				Effect:      IndicatorEffectNegative,
				Source:      "Census / mobility surveys",
				Description: "Mean door-to-door commute duration across all modes.",
			},
		},
	},
	{
		Key:    "active_mobility",
		Label:  "Active Mobility",
		Weight: 0.20,
		Indicators: []IndicatorDefinition{
			{
				Key:         "walk_cycle_share",
				Label:       "Walking and cycling mode share",
				Unit:        "%",
				Effect:      IndicatorEffectPositive,
				Source:      "CMP household surveys",
				Description: "Share of all trips made on foot or by bicycle.",
			},
			{
				Key:         "footpath_coverage_pct",
				Label:       "Footpath coverage on arterial roads",
				Unit:        "%",
				Effect:      IndicatorEffectPositive,
				Source:      "Municipal road audits",
				Description: "Share of arterial road length with a usable footpath on at least one side.",
			},
		},
	},
	{
		Key:    "congestion",
		Label:  "Congestion",
		Weight: 0.15,
		Indicators: []IndicatorDefinition{
			{
				Key:         "peak_congestion_index",
				Label:       "Peak-hour congestion index",
				Unit:        "% extra travel time",
				Effect:      IndicatorEffectNegative,
				Source:      "TomTom Traffic Index",
				Description: "Extra travel time at peak hours relative to free flow.",
			},
			{
				Key:         "avg_peak_speed_kmph",
				Label:       "Average peak-hour speed",
				Unit:        "km/h",
				Effect:      IndicatorEffectPositive,
				Source:      "Traffic feeds",
				Description: "Network-wide mean vehicle speed during the evening peak.",
			},
		},
	},
}

// DefaultBenchmarks anchors every implemented indicator. Normalization
// depends only on these fixed references, never on the city population, so
// adding a city can never shift another city's score.
var DefaultBenchmarks = map[string]Benchmark{
	"road_fatalities_per_lakh":  {WorstRef: 25, Target: 2, Source: "Vision Zero cities vs worst Indian metros"},
	"pedestrian_fatality_share": {WorstRef: 60, Target: 15, Source: "MoRTH 2022 spread"},
	"pm25_annual":               {WorstRef: 100, Target: 10, Source: "WHO 2021 guideline vs Delhi winters"},
	"no2_annual":                {WorstRef: 80, Target: 20, Source: "WHO 2021 guideline"},
	"pt_mode_share":             {WorstRef: 5, Target: 60, Source: "Mumbai suburban benchmark"},
	"metro_network_km":          {WorstRef: 0, Target: 250, Source: "Delhi Metro phase III extent"},
	"bus_fleet_per_lakh":        {WorstRef: 10, Target: 60, Source: "MoHUA service level benchmark"},
	"avg_commute_minutes":       {WorstRef: 75, Target: 30, Source: "Census B-28 spread"},
	"walk_cycle_share":          {WorstRef: 5, Target: 50, Source: "Compact-city benchmark"},
	"footpath_coverage_pct":     {WorstRef: 10, Target: 90, Source: "IRC 103 compliant network"},
	"peak_congestion_index":     {WorstRef: 70, Target: 15, Source: "TomTom global spread"},
	"avg_peak_speed_kmph":       {WorstRef: 12, Target: 35, Source: "Traffic feed percentiles"},
}

// DefaultGradeBoundaries is ordered best-first. The first boundary whose Min
// is at or below the composite wins, so an exact boundary value qualifies.
var DefaultGradeBoundaries = []GradeBoundary{
	{Grade: "A+", Min: 0.85},
	{Grade: "A", Min: 0.70},
	{Grade: "B", Min: 0.55},
	{Grade: "C", Min: 0.40},
	{Grade: "D", Min: 0.25},
	{Grade: "E", Min: 0},
}
