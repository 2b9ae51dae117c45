package models

import (
	"pv-battery-sizing/internal/analysis"
	"pv-battery-sizing/internal/catalog"
	"pv-battery-sizing/internal/evaluation"
	"pv-battery-sizing/internal/model"
	"pv-battery-sizing/internal/pricing"
	"pv-battery-sizing/internal/scoring"

	"github.com/shopspring/decimal"
)

// EvaluateResponse represents the response from an evaluation run
type EvaluateResponse struct {
	ID             string                     `json:"id"`
	Status         string                     `json:"status"`
	Parameters     model.SystemParameters     `json:"parameters"`
	Costs          scoring.CostModel          `json:"costs"`
	Weights        scoring.Weights            `json:"weights"`
	Sizing         model.SizingResult         `json:"sizing"`
	Scenarios      []model.ScenarioOutcome    `json:"scenarios"`
	Ranking        []analysis.Ranked          `json:"ranking"`
	Recommendation model.RecommendationRecord `json:"recommendation"`
	Savings        []ScenarioSavings          `json:"savings,omitempty"`
}

// ScenarioSavings is the annual bill reduction of one scenario.
type ScenarioSavings struct {
	Scenario      model.ScenarioID `json:"scenario"`
	AnnualSavings decimal.Decimal  `json:"annual_savings"`
}

// SizeResponse contains the sizing and the equipment it implies
type SizeResponse struct {
	Parameters          model.SystemParameters `json:"parameters"`
	Sizing              model.SizingResult     `json:"sizing"`
	DailyConsumptionKWh float64                `json:"daily_consumption_kwh"`
	AveragePowerKW      float64                `json:"average_power_kw"`
	Module              model.PVModuleSpec     `json:"module"`
	ModuleCount         int                    `json:"module_count"`
	ArrayAreaM2         float64                `json:"array_area_m2"`
	Battery             model.BatteryTechSpec  `json:"battery"`
	UsableBatteryKWh    float64                `json:"usable_battery_kwh"`
	PVCost              float64                `json:"pv_cost"`
	BatteryCost         float64                `json:"battery_cost"`
	Inverter            *catalog.Inverter      `json:"inverter,omitempty"`
	InverterCost        float64                `json:"inverter_cost,omitempty"`
}

// CompareResponse represents the response from a comparison
type CompareResponse struct {
	ID         string                  `json:"id"`
	Comparison []evaluation.Comparison `json:"comparison"`
}

// BillResponse contains a bill estimate and optional savings and subsidy
type BillResponse struct {
	Bill          pricing.Bill     `json:"bill"`
	AnnualSavings *decimal.Decimal `json:"annual_savings,omitempty"`
	Subsidy       *SubsidyResult   `json:"subsidy,omitempty"`
}

type SubsidyResult struct {
	Type       string          `json:"type"`
	Investment float64         `json:"investment"`
	Amount     decimal.Decimal `json:"amount"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
