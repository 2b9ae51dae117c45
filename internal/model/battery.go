package model

import "errors"

// BatteryTechSpec describes a storage technology as listed in the catalog.
// Units:
// - DoD, Efficiency: fraction (0, 1]
// - CostPerKWh: currency per kWh of nominal capacity
// - MaintenanceCostPerYear: currency per year
type BatteryTechSpec struct {
	ID                     string  `json:"id" yaml:"-"`
	Name                   string  `json:"name" yaml:"name"`
	DoD                    float64 `json:"dod" yaml:"dod"`
	Efficiency             float64 `json:"efficiency" yaml:"efficiency"`
	LifetimeCycles         int     `json:"lifetime_cycles" yaml:"lifetime_cycles"`
	CostPerKWh             float64 `json:"cost_per_kwh" yaml:"cost_per_kwh"`
	MaintenanceCostPerYear float64 `json:"maintenance_cost" yaml:"maintenance_cost"`
	ReplacementYears       int     `json:"replacement_years" yaml:"replacement_years"`
	TemperatureRange       string  `json:"temperature_range,omitempty" yaml:"temperature_range"`
}

func (s BatteryTechSpec) Validate() error {
	if s.DoD <= 0 || s.DoD > 1 {
		return errors.New("dod must be in (0, 1]")
	}
	if s.Efficiency <= 0 || s.Efficiency > 1 {
		return errors.New("efficiency must be in (0, 1]")
	}
	if s.CostPerKWh < 0 {
		return errors.New("cost_per_kwh must be >= 0")
	}
	return nil
}

// UsableKWh is the share of a nominal capacity that may be cycled.
func (s BatteryTechSpec) UsableKWh(nominalKWh float64) float64 {
	if nominalKWh <= 0 {
		return 0
	}
	return nominalKWh * s.DoD
}

// PVModuleSpec describes a PV module family.
type PVModuleSpec struct {
	ID                string  `json:"id" yaml:"-"`
	Name              string  `json:"name" yaml:"name"`
	EfficiencyMin     float64 `json:"efficiency_min" yaml:"efficiency_min"`
	EfficiencyMax     float64 `json:"efficiency_max" yaml:"efficiency_max"`
	EfficiencyTypical float64 `json:"efficiency_typical" yaml:"efficiency_typical"`
	PowerPerModuleKWp float64 `json:"power_per_module_kwp" yaml:"power_per_module_kwp"`
	AreaPerModuleM2   float64 `json:"area_per_module_m2" yaml:"area_per_module_m2"`
	CostPerKWp        float64 `json:"cost_per_kwp" yaml:"cost_per_kwp"`
	LifetimeYears     int     `json:"lifetime_years" yaml:"lifetime_years"`
	Degradation       float64 `json:"degradation" yaml:"degradation"`
	TemperatureCoef   float64 `json:"temperature_coef" yaml:"temperature_coef"`
}

func (m PVModuleSpec) Validate() error {
	if m.EfficiencyTypical <= 0 || m.EfficiencyTypical > 1 {
		return errors.New("efficiency_typical must be in (0, 1]")
	}
	if m.PowerPerModuleKWp <= 0 {
		return errors.New("power_per_module_kwp must be > 0")
	}
	if m.CostPerKWp < 0 {
		return errors.New("cost_per_kwp must be >= 0")
	}
	return nil
}
