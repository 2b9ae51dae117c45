package analysis

import (
	"errors"
	"fmt"
	"strings"

	"pv-battery-sizing/internal/model"
)

var ErrNoCandidates = errors.New("no candidate scenarios to recommend")

// Recommend picks the best and worst candidate by score. Ties resolve to the
// first scenario in evaluation order.
func Recommend(outcomes []model.ScenarioOutcome) (model.RecommendationRecord, error) {
	candidates := Candidates(outcomes)
	if len(candidates) == 0 {
		return model.RecommendationRecord{}, ErrNoCandidates
	}

	best, worst := candidates[0], candidates[0]
	for _, c := range candidates[1:] {
		if c.Score > best.Score {
			best = c
		}
		if c.Score < worst.Score {
			worst = c
		}
	}

	return model.RecommendationRecord{
		BestScenario:  best.Scenario,
		BestScore:     best.Score,
		WorstScenario: worst.Scenario,
		WorstScore:    worst.Score,
		Justification: justify(best),
	}, nil
}

func justify(best model.ScenarioOutcome) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Scenario %s (%s) obtains the highest multicriteria score (%.1f/100).\n",
		best.Scenario, best.Scenario.Description(), best.Score)
	fmt.Fprintf(&b, "Grid reduction: %.1f%%\n", best.GridReduction)
	fmt.Fprintf(&b, "Self-consumption rate: %.1f%%\n", best.SelfConsumptionRate)
	fmt.Fprintf(&b, "Coverage rate: %.1f%%\n", best.CoverageRate)
	if best.RecommendedTech != "" {
		fmt.Fprintf(&b, "Recommended battery technology: %s\n", best.RecommendedTech)
	}
	fmt.Fprintf(&b, "Compared with the grid-only baseline (%s), it reduces grid imports by %.1f%%.",
		model.ScenarioGridOnly, best.GridReduction)
	return b.String()
}
