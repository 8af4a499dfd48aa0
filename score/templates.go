package score

import (
	"fmt"
	"strings"

	"github.com/urbanmorph/transport-qol-api/schema"
)

// gapSentence renders the headline narrative for the weakest indicator.
// Dispatch is a plain switch on the indicator key so an unknown key can never
// silently resolve to another indicator's text.
func gapSentence(ind schema.NormalizedIndicator) string {
	if ind.Value == nil {
		return fmt.Sprintf("%s is not measured yet, which by itself drags the dimension to worst-case.", ind.Label)
	}
	v := *ind.Value

	switch ind.Key {
	case "road_fatalities_per_lakh":
		return fmt.Sprintf("Roads claim %.1f lives per lakh residents every year, far from survivable-streets levels.", v)
	case "pedestrian_fatality_share":
		return fmt.Sprintf("%.0f%% of road deaths are pedestrians, a sign that streets are designed against people on foot.", v)
	case "pm25_annual":
		return fmt.Sprintf("Annual PM2.5 averages %.0f µg/m³, several times the WHO guideline.", v)
	case "no2_annual":
		return fmt.Sprintf("Annual NO2 averages %.0f µg/m³, pointing at tailpipe exhaust on major corridors.", v)
	case "pt_mode_share":
		return fmt.Sprintf("Only %.0f%% of motorized trips use public transport; the rest sit in private vehicles.", v)
	case "metro_network_km":
		return fmt.Sprintf("The metro network carries passengers on just %.0f km of route.", v)
	case "bus_fleet_per_lakh":
		return fmt.Sprintf("The city runs %.0f buses per lakh residents, well short of service-level benchmarks.", v)
	case "avg_commute_minutes":
		return fmt.Sprintf("The average one-way commute takes %.0f minutes.", v)
	case "walk_cycle_share":
		return fmt.Sprintf("Just %.0f%% of trips happen on foot or by cycle despite short average trip lengths.", v)
	case "footpath_coverage_pct":
		return fmt.Sprintf("Only %.0f%% of arterial roads have a usable footpath.", v)
	case "peak_congestion_index":
		return fmt.Sprintf("Peak-hour trips take %.0f%% longer than free flow.", v)
	case "avg_peak_speed_kmph":
		return fmt.Sprintf("Traffic crawls at %.0f km/h during the evening peak.", v)
	default:
		return fmt.Sprintf("%s stands at %.1f %s, the weakest reading in its dimension.", ind.Label, v, ind.Unit)
	}
}

func compoundingSentence(ind schema.NormalizedIndicator) string {
	if ind.Value == nil {
		return fmt.Sprintf("%s compounds the problem.", ind.Label)
	}
	return fmt.Sprintf("The picture is compounded by %s at %.1f %s.", strings.ToLower(ind.Label), *ind.Value, ind.Unit)
}

// recommendationSentence renders the intervention advice for the weakest
// indicator, again dispatched by key.
func recommendationSentence(ind schema.NormalizedIndicator) string {
	switch ind.Key {
	case "road_fatalities_per_lakh":
		return "Prioritize speed management and junction redesign on the high-fatality corridors identified in crash records."
	case "pedestrian_fatality_share":
		return "Build continuous footpaths and safe crossings on arterial roads before adding vehicle capacity."
	case "pm25_annual":
		return "Electrify the bus fleet and tighten dust controls; transport is a large, addressable share of PM2.5 here."
	case "no2_annual":
		return "Target diesel corridors with low-emission zones and bus electrification; NO2 follows traffic closely."
	case "pt_mode_share":
		return "Grow bus service frequency and priority lanes; mode share follows service levels faster than infrastructure."
	case "metro_network_km":
		return "Finish sanctioned metro corridors and integrate feeder buses to make the network usable end-to-end."
	case "bus_fleet_per_lakh":
		return "Procure buses toward the service-level benchmark; fleet size is the binding constraint on coverage."
	case "avg_commute_minutes":
		return "Shorten commutes with bus priority and demand management rather than road widening, which induces traffic."
	case "walk_cycle_share":
		return "Protect walking and cycling with connected footpaths and safe crossings; latent demand is high at these trip lengths."
	case "footpath_coverage_pct":
		return "Fund a footpath buildout program on arterial roads with maintenance contracts, not one-off construction."
	case "peak_congestion_index":
		return "Shift peak trips to high-capacity transit and manage parking; congestion does not yield to extra lanes."
	case "avg_peak_speed_kmph":
		return "Give buses priority at signals and on corridors so the trips that remain on the road move more people."
	default:
		return fmt.Sprintf("Focus the next round of investment on %s.", strings.ToLower(ind.Label))
	}
}
