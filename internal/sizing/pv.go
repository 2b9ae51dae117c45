package sizing

import (
	"math"

	"pv-battery-sizing/internal/model"
)

// PVInputs are the factors the PV generator is sized from.
type PVInputs struct {
	ConsumptionKWh   float64 // annual consumption
	CoverageTarget   float64 // share of consumption to cover, 0..1
	IrradiationKWhM2 float64 // annual site irradiation
	PerformanceRatio float64
	ModuleEfficiency float64
	SystemLosses     float64
}

// PVInputsFrom extracts the PV sizing inputs of a run.
func PVInputsFrom(p model.SystemParameters) PVInputs {
	return PVInputs{
		ConsumptionKWh:   p.AnnualConsumptionKWh,
		CoverageTarget:   p.CoverageTarget,
		IrradiationKWhM2: p.IrradiationKWhM2,
		PerformanceRatio: p.PerformanceRatio,
		ModuleEfficiency: p.ModuleEfficiency,
		SystemLosses:     p.SystemLosses,
	}
}

// SystemEfficiency is PR * module efficiency * (1 - losses).
func (in PVInputs) SystemEfficiency() float64 {
	return in.PerformanceRatio * in.ModuleEfficiency * (1 - in.SystemLosses)
}

// SizePV returns the PV capacity (kWp) required to cover the target share of
// consumption and the annual yield (kWh) of that capacity.
//
// The yield formula deliberately omits module efficiency, so the yield equals
// energy needed / module efficiency.
func SizePV(in PVInputs) (pvPowerKWp, annualYieldKWh float64, err error) {
	const op = "size_pv"
	if in.IrradiationKWhM2 <= 0 {
		return 0, 0, model.NewDomainError(op, "irradiation", model.ErrDivisionByZero)
	}
	eff := in.SystemEfficiency()
	if eff <= 0 {
		return 0, 0, model.NewDomainError(op, "system_efficiency", model.ErrDivisionByZero)
	}

	energyNeeded := in.ConsumptionKWh * in.CoverageTarget
	pvPowerKWp = energyNeeded / (in.IrradiationKWhM2 * eff)
	annualYieldKWh = pvPowerKWp * in.IrradiationKWhM2 * in.PerformanceRatio * (1 - in.SystemLosses)
	return pvPowerKWp, annualYieldKWh, nil
}

// ModuleCount is the number of whole modules needed to reach pvPowerKWp.
func ModuleCount(pvPowerKWp float64, module model.PVModuleSpec) int {
	if pvPowerKWp <= 0 || module.PowerPerModuleKWp <= 0 {
		return 0
	}
	return int(math.Ceil(pvPowerKWp / module.PowerPerModuleKWp))
}

// ArrayAreaM2 is the roof area occupied by ModuleCount modules.
func ArrayAreaM2(pvPowerKWp float64, module model.PVModuleSpec) float64 {
	return float64(ModuleCount(pvPowerKWp, module)) * module.AreaPerModuleM2
}
