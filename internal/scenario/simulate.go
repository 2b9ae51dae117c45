package scenario

import (
	"fmt"
	"math"

	"pv-battery-sizing/internal/model"
)

// Surplus that is neither self-consumed nor stored is split between grid
// export and inverter/curtailment losses with a fixed ratio.
const (
	ExportShare = 0.8
	LossShare   = 0.2
)

// Simulate computes the annual energy balance of one scenario. It is a pure
// function of its inputs.
//
// S2 and S3 always use the lead-acid and lithium technologies respectively,
// regardless of the technology named in p; S4 evaluates both and adopts the
// one with the higher grid reduction (lithium on ties).
func Simulate(id model.ScenarioID, p model.SystemParameters, s model.SizingResult, techs TechLookup) (model.ScenarioResult, error) {
	switch id {
	case model.ScenarioGridOnly:
		return gridOnly(p), nil
	case model.ScenarioPVOnly:
		return pvOnly(p, s), nil
	case model.ScenarioPVLeadAcid:
		return fixedTech(id, model.TechLeadAcid, p, s, techs)
	case model.ScenarioPVLithium:
		return fixedTech(id, model.TechLithium, p, s, techs)
	case model.ScenarioOptimized:
		return optimized(p, s, techs)
	default:
		return model.ScenarioResult{}, model.NewDomainError("simulate", string(id), model.ErrUnknownScenario)
	}
}

func gridOnly(p model.SystemParameters) model.ScenarioResult {
	return model.ScenarioResult{
		Scenario:   model.ScenarioGridOnly,
		GridImport: p.AnnualConsumptionKWh,
	}
}

func pvOnly(p model.SystemParameters, s model.SizingResult) model.ScenarioResult {
	production := s.AnnualYieldKWh
	direct := math.Min(production, p.DayConsumptionKWh())
	surplus := production - direct

	r := model.ScenarioResult{
		Scenario:     model.ScenarioPVOnly,
		PVPowerKWp:   s.PVPowerKWp,
		PVProduction: production,
		DirectUse:    direct,
		GridImport:   p.AnnualConsumptionKWh - direct,
		GridExport:   surplus * ExportShare,
		EnergyLosses: surplus * LossShare,
	}
	r.SelfConsumptionRate = percent(direct, production)
	r.CoverageRate = percent(direct, p.AnnualConsumptionKWh)
	r.GridReduction = gridReduction(p.AnnualConsumptionKWh, r.GridImport)
	return r
}

func fixedTech(id model.ScenarioID, tech string, p model.SystemParameters, s model.SizingResult, techs TechLookup) (model.ScenarioResult, error) {
	if techs == nil {
		return model.ScenarioResult{}, fmt.Errorf("simulate %s: technology lookup is nil", id)
	}
	spec, err := techs.Battery(tech)
	if err != nil {
		return model.ScenarioResult{}, err
	}
	return withBattery(id, p, s, spec), nil
}

// withBattery applies the battery efficiency once on charge and once again on
// discharge. Losses only count the charge-side penalty; the discharge-side
// penalty shows up as a smaller EnergyDischarged.
func withBattery(id model.ScenarioID, p model.SystemParameters, s model.SizingResult, spec model.BatteryTechSpec) model.ScenarioResult {
	consumption := p.AnnualConsumptionKWh
	night := p.NightConsumptionKWh()
	production := s.AnnualYieldKWh

	direct := math.Min(production, p.DayConsumptionKWh())
	surplus := production - direct

	maxStorable := spec.UsableKWh(s.BatteryCapacityKWh)
	toStore := math.Min(surplus, maxStorable)
	stored := toStore * spec.Efficiency
	discharged := math.Min(stored, night) * spec.Efficiency
	unstored := surplus - toStore

	r := model.ScenarioResult{
		Scenario:           id,
		PVPowerKWp:         s.PVPowerKWp,
		BatteryCapacityKWh: s.BatteryCapacityKWh,
		PVProduction:       production,
		DirectUse:          direct,
		EnergyToStore:      toStore,
		EnergyStored:       stored,
		EnergyDischarged:   discharged,
		GridImport:         math.Max(0, consumption-direct-discharged),
		GridExport:         math.Max(0, unstored) * ExportShare,
		EnergyLosses:       unstored*LossShare + stored*(1-spec.Efficiency),
	}
	r.SelfConsumptionRate = percent(direct+toStore, production)
	r.CoverageRate = percent(direct+discharged, consumption)
	r.GridReduction = gridReduction(consumption, r.GridImport)
	if production > 0 {
		r.AutonomyHours = safeDiv(maxStorable, night/model.DaysPerYear/model.HoursPerDay)
	}
	return r
}

func optimized(p model.SystemParameters, s model.SizingResult, techs TechLookup) (model.ScenarioResult, error) {
	leadAcid, err := Simulate(model.ScenarioPVLeadAcid, p, s, techs)
	if err != nil {
		return model.ScenarioResult{}, err
	}
	lithium, err := Simulate(model.ScenarioPVLithium, p, s, techs)
	if err != nil {
		return model.ScenarioResult{}, err
	}

	winner, tech := lithium, model.TechLithium
	if leadAcid.GridReduction > lithium.GridReduction {
		winner, tech = leadAcid, model.TechLeadAcid
	}
	spec, err := techs.Battery(tech)
	if err != nil {
		return model.ScenarioResult{}, err
	}
	winner.Scenario = model.ScenarioOptimized
	winner.RecommendedTech = spec.Name
	if winner.RecommendedTech == "" {
		winner.RecommendedTech = tech
	}
	return winner, nil
}

func gridReduction(consumption, gridImport float64) float64 {
	return percent(consumption-gridImport, consumption)
}

func percent(num, den float64) float64 {
	return safeDiv(num, den) * 100
}

// safeDiv returns 0 instead of NaN or Inf.
func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
