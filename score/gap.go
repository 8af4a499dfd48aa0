package score

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/urbanmorph/transport-qol-api/consts"
	"github.com/urbanmorph/transport-qol-api/schema"
)

// CityGap finds a city's weakest area and the minimal set of improvements
// needed to cross into the next grade. It returns nil for an unknown city.
func (e *Engine) CityGap(cityID string, overrides schema.Overrides) *schema.GapAnalysis {
	qol := e.CityQoL(cityID, overrides)
	if qol == nil {
		return nil
	}

	worstDim := worstDimension(qol.Dimensions)
	if len(worstDim.Indicators) == 0 {
		return &schema.GapAnalysis{
			CityID:             cityID,
			DataUnlockSentence: schema.DefaultDataUnlocks[cityID],
		}
	}
	worstInd := worstIndicator(worstDim.Indicators)

	gap := gapSentence(worstInd)
	if second := secondWorstIndicator(worstDim.Indicators, worstInd.Key); second != nil {
		gap += " " + compoundingSentence(*second)
	}

	recommendation := recommendationSentence(worstInd)
	if note, ok := schema.CityRecommendationNotes[cityID]; ok {
		recommendation += " " + note
	}

	return &schema.GapAnalysis{
		CityID:             cityID,
		WorstDimension:     worstDim.Key,
		WorstIndicator:     worstInd.Key,
		GapSentence:        gap,
		Recommendation:     recommendation,
		UpgradeSentence:    e.upgradeSentence(cityID, qol, overrides),
		DataUnlockSentence: schema.DefaultDataUnlocks[cityID],
	}
}

// AllGaps analyzes every city, ordered by the same composite ranking as
// AllQoL.
func (e *Engine) AllGaps(overrides schema.Overrides) []schema.GapAnalysis {
	ranked := e.AllQoL(overrides)
	out := make([]schema.GapAnalysis, 0, len(ranked))
	for _, qol := range ranked {
		if gap := e.CityGap(qol.CityID, overrides); gap != nil {
			out = append(out, *gap)
		}
	}
	return out
}

// worstDimension returns the dimension with the minimum score; ties go to the
// first encountered. Dimensions without indicators cannot carry a gap
// narrative and are skipped.
func worstDimension(dimensions []schema.DimensionScore) schema.DimensionScore {
	var worst schema.DimensionScore
	found := false
	for _, d := range dimensions {
		if len(d.Indicators) == 0 {
			continue
		}
		if !found || d.Score < worst.Score {
			worst = d
			found = true
		}
	}
	return worst
}

// worstIndicator treats unmeasured indicators as best (normalized 1) so the
// gap narrative is driven by measured-and-bad data, never by absence.
func worstIndicator(indicators []schema.NormalizedIndicator) schema.NormalizedIndicator {
	worst := indicators[0]
	worstScore := normalizedOrBest(worst)
	for _, ind := range indicators[1:] {
		if s := normalizedOrBest(ind); s < worstScore {
			worst = ind
			worstScore = s
		}
	}
	return worst
}

// secondWorstIndicator returns the next-worst measured indicator in the
// dimension when it also scores below 0.5, as compounding context.
func secondWorstIndicator(indicators []schema.NormalizedIndicator, excludeKey string) *schema.NormalizedIndicator {
	var second *schema.NormalizedIndicator
	secondScore := 0.5
	for i, ind := range indicators {
		if ind.Key == excludeKey || ind.Normalized == nil {
			continue
		}
		if *ind.Normalized < secondScore {
			second = &indicators[i]
			secondScore = *ind.Normalized
		}
	}
	return second
}

func normalizedOrBest(ind schema.NormalizedIndicator) float64 {
	if ind.Normalized == nil {
		return 1
	}
	return *ind.Normalized
}

type upgradeCandidate struct {
	label string
	gain  float64
}

// upgradeSentence searches for the minimal combination of realistic
// indicator improvements that would bridge the gap to the next grade. Each
// candidate is probed by re-running the full scoring pipeline with a
// single-indicator override, so the projected gains obey exactly the same
// semantics as the published scores.
func (e *Engine) upgradeSentence(cityID string, qol *schema.CityQoLScore, overrides schema.Overrides) string {
	index := -1
	for i, g := range e.cfg.Grades {
		if g.Grade == qol.Grade {
			index = i
			break
		}
	}
	if index < 0 {
		return ""
	}
	if index == 0 {
		return fmt.Sprintf("Already at grade %s, the top of the scale; the task now is holding it.", qol.Grade)
	}

	next := e.cfg.Grades[index-1]
	pointsNeeded := int(math.Ceil((next.Min - qol.Composite) * 100))

	var candidates []upgradeCandidate
	for _, d := range qol.Dimensions {
		for _, ind := range d.Indicators {
			if ind.Normalized == nil || *ind.Normalized > consts.GapCandidateCutoff {
				continue
			}
			benchmark, ok := e.cfg.Benchmarks[ind.Key]
			if !ok {
				continue
			}

			// Realistic target: halfway from the current value to the
			// benchmark target.
			target := (*ind.Value + benchmark.Target) / 2
			probe := overrides.WithCity(cityID, map[string]*float64{ind.Key: &target})
			simulated := e.CityQoL(cityID, probe)
			if simulated == nil {
				continue
			}
			gain := simulated.Composite - qol.Composite
			if gain <= 0 {
				continue
			}
			candidates = append(candidates, upgradeCandidate{label: ind.Label, gain: gain})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].gain > candidates[j].gain
	})

	var picked []string
	accumulated := float64(0)
	for _, c := range candidates {
		picked = append(picked, c.label)
		accumulated += c.gain
		if len(picked) == consts.GapMaxImprovements || accumulated*100 >= float64(pointsNeeded) {
			break
		}
	}

	if len(picked) == 0 {
		return fmt.Sprintf("No single realistic indicator improvement moves the needle; reaching grade %s needs %d more points from broader measures.",
			next.Grade, pointsNeeded)
	}

	names := joinWithAnd(picked)
	gained := accumulated * 100
	if gained >= float64(pointsNeeded) {
		return fmt.Sprintf("Bringing %s to realistic targets would bridge the %d-point gap to grade %s.",
			names, pointsNeeded, next.Grade)
	}
	return fmt.Sprintf("Bringing %s to realistic targets would add %d points toward the %d-point gap to grade %s.",
		names, int(math.Round(gained)), pointsNeeded, next.Grade)
}

func joinWithAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
