package analysis

import (
	"sort"

	"pv-battery-sizing/internal/model"
)

type Ranked struct {
	Rank int `json:"rank"`
	model.ScenarioOutcome
}

// RankByScore orders candidate outcomes by descending score. S0 is never a
// candidate. Equal scores keep evaluation order.
func RankByScore(outcomes []model.ScenarioOutcome) []Ranked {
	candidates := Candidates(outcomes)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	out := make([]Ranked, len(candidates))
	for i, c := range candidates {
		out[i] = Ranked{Rank: i + 1, ScenarioOutcome: c}
	}
	return out
}

// Candidates drops the grid-only baseline, which is a reference and not a
// solution.
func Candidates(outcomes []model.ScenarioOutcome) []model.ScenarioOutcome {
	out := make([]model.ScenarioOutcome, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Scenario == model.ScenarioGridOnly {
			continue
		}
		out = append(out, o)
	}
	return out
}
