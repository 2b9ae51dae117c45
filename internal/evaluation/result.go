package evaluation

import (
	"pv-battery-sizing/internal/analysis"
	"pv-battery-sizing/internal/model"
)

// Result is the full output of one evaluation run.
type Result struct {
	Parameters     model.SystemParameters     `json:"parameters"`
	Sizing         model.SizingResult         `json:"sizing"`
	Scenarios      []model.ScenarioOutcome    `json:"scenarios"`
	Ranking        []analysis.Ranked          `json:"ranking"`
	Recommendation model.RecommendationRecord `json:"recommendation"`
}

// Outcome returns the outcome of scenario id.
func (r *Result) Outcome(id model.ScenarioID) (model.ScenarioOutcome, bool) {
	for _, o := range r.Scenarios {
		if o.Scenario == id {
			return o, true
		}
	}
	return model.ScenarioOutcome{}, false
}

// Variation is one named parameter set of a comparison.
type Variation struct {
	Name       string                 `json:"name"`
	Parameters model.SystemParameters `json:"parameters"`
}

type Comparison struct {
	Name           string                     `json:"name"`
	Parameters     model.SystemParameters     `json:"parameters"`
	Sizing         model.SizingResult         `json:"sizing"`
	Best           model.ScenarioOutcome      `json:"best"`
	Recommendation model.RecommendationRecord `json:"recommendation"`
}
