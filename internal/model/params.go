package model

// SystemParameters is the household energy profile a run is evaluated for.
// Units:
// - AnnualConsumptionKWh: kWh/year
// - fractions (DayFraction, CoverageTarget, PerformanceRatio, ModuleEfficiency, SystemLosses): 0..1
// - IrradiationKWhM2: kWh/m²/year
// - AutonomyHours: hours, 0..24
type SystemParameters struct {
	AnnualConsumptionKWh float64 `json:"annual_consumption" yaml:"annual_consumption"`
	DayFraction          float64 `json:"day_fraction" yaml:"day_fraction"`
	CoverageTarget       float64 `json:"pv_coverage_target" yaml:"pv_coverage_target"`
	IrradiationKWhM2     float64 `json:"irradiation" yaml:"irradiation"`
	PerformanceRatio     float64 `json:"performance_ratio" yaml:"performance_ratio"`
	ModuleEfficiency     float64 `json:"module_efficiency" yaml:"module_efficiency"`
	SystemLosses         float64 `json:"system_losses" yaml:"system_losses"`
	AutonomyHours        float64 `json:"autonomy_hours" yaml:"autonomy_hours"`
	BatteryTech          string  `json:"battery_tech" yaml:"battery_tech"`
}

// Validate checks the range of every field. It does not resolve BatteryTech;
// that happens against a catalog.
func (p SystemParameters) Validate() error {
	const op = "validate_parameters"
	if p.AnnualConsumptionKWh <= 0 {
		return outOfRange(op, "annual_consumption", "> 0")
	}
	if !unit(p.DayFraction) {
		return outOfRange(op, "day_fraction", "in [0, 1]")
	}
	if !unit(p.CoverageTarget) {
		return outOfRange(op, "pv_coverage_target", "in [0, 1]")
	}
	if p.IrradiationKWhM2 <= 0 {
		return outOfRange(op, "irradiation", "> 0")
	}
	if !unit(p.PerformanceRatio) {
		return outOfRange(op, "performance_ratio", "in [0, 1]")
	}
	if !unit(p.ModuleEfficiency) {
		return outOfRange(op, "module_efficiency", "in [0, 1]")
	}
	if !unit(p.SystemLosses) {
		return outOfRange(op, "system_losses", "in [0, 1]")
	}
	if p.AutonomyHours < 0 || p.AutonomyHours > 24 {
		return outOfRange(op, "autonomy_hours", "in [0, 24]")
	}
	if p.BatteryTech == "" {
		return outOfRange(op, "battery_tech", "non-empty")
	}
	return nil
}

// DayConsumptionKWh is the yearly energy consumed during daylight hours.
func (p SystemParameters) DayConsumptionKWh() float64 {
	return p.AnnualConsumptionKWh * p.DayFraction
}

// NightConsumptionKWh is the yearly energy consumed outside daylight hours.
func (p SystemParameters) NightConsumptionKWh() float64 {
	return p.AnnualConsumptionKWh * (1 - p.DayFraction)
}

// DailyNightConsumptionKWh is the average night-time consumption of one day.
func (p SystemParameters) DailyNightConsumptionKWh() float64 {
	return p.NightConsumptionKWh() / DaysPerYear
}

const (
	DaysPerYear = 365.0
	HoursPerDay = 24.0
)

func unit(x float64) bool {
	return x >= 0 && x <= 1
}
