package models

import (
	"pv-battery-sizing/internal/config"
	"pv-battery-sizing/internal/scoring"
)

// EvaluateRequest represents the request body for a full evaluation.
// Every field is optional; missing parameters take the default household.
type EvaluateRequest struct {
	Parameters config.ParametersConfig `json:"parameters"`
	Pricing    config.PricingConfig    `json:"pricing,omitempty"`
	Weights    *scoring.Weights        `json:"weights,omitempty"`
	Tariff     string                  `json:"tariff,omitempty"` // reports annual savings per scenario
}

// SizeRequest represents the request body for sizing only.
type SizeRequest struct {
	Parameters config.ParametersConfig `json:"parameters"`
	Inverter   string                  `json:"inverter,omitempty"` // e.g. "string", "micro", "hybrid"
}

// CompareRequest evaluates several variations of a base parameter set.
type CompareRequest struct {
	Base       config.ParametersConfig `json:"base"`
	Pricing    config.PricingConfig    `json:"pricing,omitempty"`
	Weights    *scoring.Weights        `json:"weights,omitempty"`
	Variations []Variation             `json:"variations" binding:"required,min=1,dive"`
}

// Variation overrides the non-zero fields of the base parameters.
type Variation struct {
	Name       string                  `json:"name" binding:"required"`
	Parameters config.ParametersConfig `json:"parameters"`
}

// BillRequest estimates an annual electricity bill.
type BillRequest struct {
	Consumption float64  `json:"consumption" binding:"gte=0"`
	GridImport  *float64 `json:"grid_import,omitempty"` // if set, savings versus consumption are reported
	Tariff      string   `json:"tariff,omitempty"`      // default: residential_low
	Subsidy     string   `json:"subsidy,omitempty"`
	Investment  float64  `json:"investment,omitempty" binding:"gte=0"`
}
