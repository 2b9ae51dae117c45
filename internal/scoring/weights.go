package scoring

import (
	"fmt"
	"math"
)

// Weights is the relative importance of each criterion. They must sum to 1.
type Weights struct {
	GridReduction       float64 `json:"grid_reduction" yaml:"grid_reduction"`
	SelfConsumptionRate float64 `json:"self_consumption_rate" yaml:"self_consumption_rate"`
	CoverageRate        float64 `json:"coverage_rate" yaml:"coverage_rate"`
	CostEfficiency      float64 `json:"cost_efficiency" yaml:"cost_efficiency"`
}

func DefaultWeights() Weights {
	return Weights{
		GridReduction:       0.40,
		SelfConsumptionRate: 0.30,
		CoverageRate:        0.20,
		CostEfficiency:      0.10,
	}
}

func (w Weights) Sum() float64 {
	return w.GridReduction + w.SelfConsumptionRate + w.CoverageRate + w.CostEfficiency
}

func (w Weights) IsZero() bool {
	return w == Weights{}
}

// Validate checks that weights sum to 1.0 (±0.001) and none are negative.
func (w Weights) Validate() error {
	if math.Abs(w.Sum()-1.0) > 0.001 {
		return fmt.Errorf("weights sum to %.4f, must sum to 1.0", w.Sum())
	}
	for _, v := range []float64{w.GridReduction, w.SelfConsumptionRate, w.CoverageRate, w.CostEfficiency} {
		if v < 0 {
			return fmt.Errorf("negative weight: %f", v)
		}
	}
	return nil
}
