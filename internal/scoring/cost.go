package scoring

import "errors"

// CostModel holds the pricing constants used to estimate an investment.
// Regional pricing is expressed by supplying a different CostModel, never by
// branching in the scorer.
type CostModel struct {
	PVCostPerKWp      float64 `json:"pv_cost_per_kwp" yaml:"pv_cost_per_kwp"`
	BatteryCostPerKWh float64 `json:"battery_cost_per_kwh" yaml:"battery_cost_per_kwh"`
	// MaxReferenceCost is the investment of the most expensive plausible
	// residential system; it maps to a cost efficiency of 0.
	MaxReferenceCost float64 `json:"max_reference_cost" yaml:"max_reference_cost"`
}

// DefaultCostModel is the generic (EUR) calibration.
func DefaultCostModel() CostModel {
	return CostModel{
		PVCostPerKWp:      800,
		BatteryCostPerKWh: 300,
		MaxReferenceCost:  20000,
	}
}

func (c CostModel) Validate() error {
	if c.PVCostPerKWp < 0 || c.BatteryCostPerKWh < 0 {
		return errors.New("unit costs must be >= 0")
	}
	if c.MaxReferenceCost <= 0 {
		return errors.New("max_reference_cost must be > 0")
	}
	return nil
}

// TotalCost is the estimated investment for the given equipment.
func (c CostModel) TotalCost(pvPowerKWp, batteryCapacityKWh float64) float64 {
	return pvPowerKWp*c.PVCostPerKWp + batteryCapacityKWh*c.BatteryCostPerKWh
}
