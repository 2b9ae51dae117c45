package sizing

import "pv-battery-sizing/internal/model"

// SizeBattery returns the nominal capacity (kWh) that supplies autonomyHours of
// the daily night consumption, given the usable depth of discharge.
func SizeBattery(dailyNightConsumptionKWh, autonomyHours, depthOfDischarge float64) (float64, error) {
	if depthOfDischarge <= 0 {
		return 0, model.NewDomainError("size_battery", "depth_of_discharge", model.ErrDivisionByZero)
	}
	usable := dailyNightConsumptionKWh * (autonomyHours / model.HoursPerDay)
	return usable / depthOfDischarge, nil
}

// DailyConsumptionKWh is the average consumption of one day.
func DailyConsumptionKWh(annualKWh float64) float64 {
	return annualKWh / model.DaysPerYear
}

// AveragePowerKW is the mean load over a day.
func AveragePowerKW(dailyKWh float64) float64 {
	return dailyKWh / model.HoursPerDay
}

// Size derives the PV and battery sizing of a run. The battery is sized for
// the technology named in the parameters.
func Size(p model.SystemParameters, tech model.BatteryTechSpec) (model.SizingResult, error) {
	kwp, yield, err := SizePV(PVInputsFrom(p))
	if err != nil {
		return model.SizingResult{}, err
	}
	capacity, err := SizeBattery(p.DailyNightConsumptionKWh(), p.AutonomyHours, tech.DoD)
	if err != nil {
		return model.SizingResult{}, err
	}
	return model.SizingResult{
		PVPowerKWp:         kwp,
		AnnualYieldKWh:     yield,
		BatteryCapacityKWh: capacity,
	}, nil
}
