package scoring

import (
	"fmt"
	"math"

	"pv-battery-sizing/internal/model"
)

// Scorer turns a scenario's flows into a weighted 0..100 score.
type Scorer struct {
	Weights Weights
	Costs   CostModel
}

// New returns a Scorer; zero-valued arguments fall back to the defaults.
// Weights that do not sum to 1 and invalid cost models are rejected.
func New(w Weights, c CostModel) (*Scorer, error) {
	if w.IsZero() {
		w = DefaultWeights()
	}
	if c == (CostModel{}) {
		c = DefaultCostModel()
	}
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("weights invalid: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cost model invalid: %w", err)
	}
	return &Scorer{Weights: w, Costs: c}, nil
}

// Default returns a Scorer with the default weights and cost model.
func Default() *Scorer {
	return &Scorer{Weights: DefaultWeights(), Costs: DefaultCostModel()}
}

// Score normalizes each criterion and combines them. The result is rounded to
// one decimal and the total cost to a whole currency unit.
func (s *Scorer) Score(r model.ScenarioResult) model.ScoreResult {
	totalCost := s.Costs.TotalCost(r.PVPowerKWp, r.BatteryCapacityKWh)

	b := model.ScoreBreakdown{
		GridReduction:       clampPercent(r.GridReduction),
		SelfConsumptionRate: clampPercent(r.SelfConsumptionRate),
		CoverageRate:        clampPercent(r.CoverageRate),
		CostEfficiency:      costEfficiency(totalCost, s.Costs.MaxReferenceCost),
	}

	w := s.Weights
	score := b.GridReduction*w.GridReduction +
		b.SelfConsumptionRate*w.SelfConsumptionRate +
		b.CoverageRate*w.CoverageRate +
		b.CostEfficiency*w.CostEfficiency

	return model.ScoreResult{
		Score:     round(score, 1),
		Breakdown: b,
		TotalCost: round(totalCost, 0),
	}
}

func costEfficiency(totalCost, maxReference float64) float64 {
	if maxReference <= 0 {
		return 0
	}
	return math.Max(0, 100-totalCost/maxReference*100)
}

func clampPercent(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return math.Min(math.Max(x, 0), 100)
}

func round(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(x*p) / p
}
