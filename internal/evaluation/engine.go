package evaluation

import (
	"errors"
	"fmt"

	"pv-battery-sizing/internal/analysis"
	"pv-battery-sizing/internal/model"
	"pv-battery-sizing/internal/scenario"
	"pv-battery-sizing/internal/scoring"
	"pv-battery-sizing/internal/sizing"
)

// Engine runs sizing, the five scenario simulations, scoring and the
// recommendation for one parameter set. It holds no per-run state and is
// safe for concurrent use.
type Engine struct {
	techs  scenario.TechLookup
	scorer *scoring.Scorer
}

// New returns an Engine. A nil scorer uses the default weights and cost model.
func New(techs scenario.TechLookup, scorer *scoring.Scorer) *Engine {
	if scorer == nil {
		scorer = scoring.Default()
	}
	return &Engine{techs: techs, scorer: scorer}
}

// Size validates p and derives PV power, annual yield and battery capacity.
// The battery is sized with the depth of discharge of p.BatteryTech.
func (e *Engine) Size(p model.SystemParameters) (model.SizingResult, error) {
	if e.techs == nil {
		return model.SizingResult{}, errors.New("technology lookup is nil")
	}
	if err := p.Validate(); err != nil {
		return model.SizingResult{}, err
	}
	tech, err := e.techs.Battery(p.BatteryTech)
	if err != nil {
		return model.SizingResult{}, err
	}
	return sizing.Size(p, tech)
}

// Run evaluates every scenario in order S0..S4 and recommends one.
func (e *Engine) Run(p model.SystemParameters) (*Result, error) {
	s, err := e.Size(p)
	if err != nil {
		return nil, err
	}

	outcomes := make([]model.ScenarioOutcome, 0, len(model.Scenarios))
	for _, id := range model.Scenarios {
		r, err := scenario.Simulate(id, p, s, e.techs)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", id, err)
		}
		outcomes = append(outcomes, model.ScenarioOutcome{
			ScenarioResult: r,
			ScoreResult:    e.scorer.Score(r),
		})
	}

	rec, err := analysis.Recommend(outcomes)
	if err != nil {
		return nil, err
	}

	return &Result{
		Parameters:     p,
		Sizing:         s,
		Scenarios:      outcomes,
		Ranking:        analysis.RankByScore(outcomes),
		Recommendation: rec,
	}, nil
}

// Compare runs every variation independently. A failing variation aborts the
// comparison.
func (e *Engine) Compare(variations []Variation) ([]Comparison, error) {
	if len(variations) == 0 {
		return nil, errors.New("no variations")
	}
	out := make([]Comparison, 0, len(variations))
	for i, v := range variations {
		res, err := e.Run(v.Parameters)
		if err != nil {
			return nil, fmt.Errorf("variation %d (%s): %w", i, v.Name, err)
		}
		best, _ := res.Outcome(res.Recommendation.BestScenario)
		out = append(out, Comparison{
			Name:           v.Name,
			Parameters:     v.Parameters,
			Sizing:         res.Sizing,
			Best:           best,
			Recommendation: res.Recommendation,
		})
	}
	return out, nil
}
