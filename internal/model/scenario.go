package model

import "strings"

// ScenarioID names one of the five system configurations.
// Keep these values stable; they are intended for CSV/JSON output.
type ScenarioID string

const (
	ScenarioGridOnly   ScenarioID = "S0"
	ScenarioPVOnly     ScenarioID = "S1"
	ScenarioPVLeadAcid ScenarioID = "S2"
	ScenarioPVLithium  ScenarioID = "S3"
	ScenarioOptimized  ScenarioID = "S4"
)

// Scenarios is the evaluation order of a full run.
var Scenarios = []ScenarioID{
	ScenarioGridOnly,
	ScenarioPVOnly,
	ScenarioPVLeadAcid,
	ScenarioPVLithium,
	ScenarioOptimized,
}

// Battery technology identifiers the fixed-technology scenarios are bound to.
const (
	TechLeadAcid = "lead_acid"
	TechLithium  = "lithium"
)

func ParseScenarioID(s string) (ScenarioID, error) {
	id := ScenarioID(strings.ToUpper(strings.TrimSpace(s)))
	if !id.Valid() {
		return "", &DomainError{Op: "parse_scenario", Field: s, Err: ErrUnknownScenario}
	}
	return id, nil
}

func (id ScenarioID) Valid() bool {
	switch id {
	case ScenarioGridOnly, ScenarioPVOnly, ScenarioPVLeadAcid, ScenarioPVLithium, ScenarioOptimized:
		return true
	}
	return false
}

func (id ScenarioID) Description() string {
	switch id {
	case ScenarioGridOnly:
		return "Grid only"
	case ScenarioPVOnly:
		return "PV only"
	case ScenarioPVLeadAcid:
		return "PV + lead-acid battery"
	case ScenarioPVLithium:
		return "PV + lithium-ion battery"
	case ScenarioOptimized:
		return "Optimized PV + battery"
	default:
		return string(id)
	}
}

// SizingResult is derived once per run and shared by every scenario.
type SizingResult struct {
	PVPowerKWp         float64 `json:"pv_power_kwp"`
	AnnualYieldKWh     float64 `json:"annual_yield_kwh"`
	BatteryCapacityKWh float64 `json:"battery_capacity_kwh"`
}

// ScenarioResult is the annual energy balance of one scenario.
// Energies are kWh/year, rates are percentages in 0..100.
//
// Conservation: DirectUse + EnergyToStore + (Surplus - EnergyToStore) == PVProduction.
type ScenarioResult struct {
	Scenario ScenarioID `json:"scenario"`

	// Installed equipment, carried for cost estimation.
	PVPowerKWp         float64 `json:"pv_power"`
	BatteryCapacityKWh float64 `json:"battery_capacity"`

	PVProduction     float64 `json:"pv_production"`
	DirectUse        float64 `json:"direct_use"`
	EnergyToStore    float64 `json:"energy_to_store"`
	EnergyStored     float64 `json:"energy_stored"`
	EnergyDischarged float64 `json:"energy_discharged"`
	GridImport       float64 `json:"grid_import"`
	GridExport       float64 `json:"grid_export"`
	EnergyLosses     float64 `json:"energy_losses"`

	SelfConsumptionRate float64 `json:"self_consumption_rate"`
	CoverageRate        float64 `json:"coverage_rate"`
	GridReduction       float64 `json:"grid_reduction"`
	AutonomyHours       float64 `json:"autonomy_hours"`

	// Only set on S4.
	RecommendedTech string `json:"recommended_tech,omitempty"`
}

// Surplus is the PV production left after direct use.
func (r ScenarioResult) Surplus() float64 {
	return r.PVProduction - r.DirectUse
}

// ScoreBreakdown holds each criterion normalized to 0..100.
type ScoreBreakdown struct {
	GridReduction       float64 `json:"grid_reduction"`
	SelfConsumptionRate float64 `json:"self_consumption_rate"`
	CoverageRate        float64 `json:"coverage_rate"`
	CostEfficiency      float64 `json:"cost_efficiency"`
}

type ScoreResult struct {
	Score     float64        `json:"score"`
	Breakdown ScoreBreakdown `json:"breakdown"`
	TotalCost float64        `json:"total_cost"`
}

// RecommendationRecord is produced once per full run and never mutated.
type RecommendationRecord struct {
	BestScenario  ScenarioID `json:"best_scenario"`
	BestScore     float64    `json:"best_score"`
	WorstScenario ScenarioID `json:"worst_scenario"`
	WorstScore    float64    `json:"worst_score"`
	Justification string     `json:"justification"`
}

// ScenarioOutcome pairs a scenario with its score. Both embed, so the JSON form
// is a single flat record.
type ScenarioOutcome struct {
	ScenarioResult
	ScoreResult
}
