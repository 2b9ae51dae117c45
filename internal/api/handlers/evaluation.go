package handlers

import (
	"log"
	"net/http"

	"pv-battery-sizing/internal/api/middleware"
	"pv-battery-sizing/internal/api/models"
	"pv-battery-sizing/internal/catalog"
	"pv-battery-sizing/internal/config"
	"pv-battery-sizing/internal/evaluation"
	"pv-battery-sizing/internal/pricing"
	"pv-battery-sizing/internal/scoring"
	"pv-battery-sizing/internal/sizing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EvaluationHandler handles sizing, evaluation and comparison requests
type EvaluationHandler struct {
	catalog *catalog.Catalog
	metrics *middleware.Metrics
	cache   *evaluation.Cache
}

// NewEvaluationHandler creates a new evaluation handler. metrics and cache may
// be nil.
func NewEvaluationHandler(cat *catalog.Catalog, metrics *middleware.Metrics, cache *evaluation.Cache) *EvaluationHandler {
	return &EvaluationHandler{catalog: cat, metrics: metrics, cache: cache}
}

// Evaluate handles POST /api/v1/evaluate
func (h *EvaluationHandler) Evaluate(c *gin.Context) {
	var req models.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	cfg := config.Config{Parameters: req.Parameters, Pricing: req.Pricing, Tariff: req.Tariff}
	if req.Weights != nil {
		cfg.Weights = *req.Weights
	}
	if err := cfg.Validate(); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}
	resolved, err := cfg.Resolve(h.catalog)
	if err != nil {
		respondError(c, err)
		return
	}

	key := evaluation.CacheKey(resolved.Parameters, resolved.Weights, resolved.Costs)
	result, cached := h.cache.Get(key)
	if !cached {
		scorer, err := scoring.New(resolved.Weights, resolved.Costs)
		if err != nil {
			badRequest(c, "INVALID_REQUEST", err)
			return
		}
		result, err = evaluation.New(h.catalog, scorer).Run(resolved.Parameters)
		if err != nil {
			respondError(c, err)
			return
		}
		h.cache.Set(key, result)
	}

	resp := models.EvaluateResponse{
		ID:             uuid.NewString(),
		Status:         "completed",
		Parameters:     result.Parameters,
		Costs:          resolved.Costs,
		Weights:        resolved.Weights,
		Sizing:         result.Sizing,
		Scenarios:      result.Scenarios,
		Ranking:        result.Ranking,
		Recommendation: result.Recommendation,
	}
	if req.Tariff != "" {
		savings, err := h.savings(req.Tariff, result)
		if err != nil {
			respondError(c, err)
			return
		}
		resp.Savings = savings
	}

	h.metrics.Recommended(result.Recommendation.BestScenario)
	log.Printf("EvaluationHandler: run %s recommends %s (%.1f, cached=%v)", resp.ID,
		result.Recommendation.BestScenario, result.Recommendation.BestScore, cached)
	c.JSON(http.StatusOK, resp)
}

func (h *EvaluationHandler) savings(tariffID string, result *evaluation.Result) ([]models.ScenarioSavings, error) {
	tariff, err := h.catalog.Tariff(tariffID)
	if err != nil {
		return nil, err
	}
	out := make([]models.ScenarioSavings, 0, len(result.Scenarios))
	for _, o := range result.Scenarios {
		saved, err := pricing.AnnualSavings(result.Parameters.AnnualConsumptionKWh, o.GridImport, tariff)
		if err != nil {
			return nil, err
		}
		out = append(out, models.ScenarioSavings{Scenario: o.Scenario, AnnualSavings: saved})
	}
	return out, nil
}

// Size handles POST /api/v1/size
func (h *EvaluationHandler) Size(c *gin.Context) {
	var req models.SizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	params, err := config.ResolveParameters(req.Parameters, h.catalog)
	if err != nil {
		respondError(c, err)
		return
	}
	s, err := evaluation.New(h.catalog, nil).Size(params)
	if err != nil {
		respondError(c, err)
		return
	}

	moduleType := req.Parameters.ModuleType
	if moduleType == "" {
		moduleType = config.DefaultModuleType
	}
	module, err := h.catalog.Module(moduleType)
	if err != nil {
		respondError(c, err)
		return
	}
	battery, err := h.catalog.Battery(params.BatteryTech)
	if err != nil {
		respondError(c, err)
		return
	}

	daily := sizing.DailyConsumptionKWh(params.AnnualConsumptionKWh)
	resp := models.SizeResponse{
		Parameters:          params,
		Sizing:              s,
		DailyConsumptionKWh: daily,
		AveragePowerKW:      sizing.AveragePowerKW(daily),
		Module:              module,
		ModuleCount:         sizing.ModuleCount(s.PVPowerKWp, module),
		ArrayAreaM2:         sizing.ArrayAreaM2(s.PVPowerKWp, module),
		Battery:             battery,
		UsableBatteryKWh:    battery.UsableKWh(s.BatteryCapacityKWh),
		PVCost:              s.PVPowerKWp * module.CostPerKWp,
		BatteryCost:         s.BatteryCapacityKWh * battery.CostPerKWh,
	}
	if req.Inverter != "" {
		inv, err := h.catalog.Inverter(req.Inverter)
		if err != nil {
			respondError(c, err)
			return
		}
		resp.Inverter = &inv
		resp.InverterCost = s.PVPowerKWp * inv.CostPerKW
	}

	c.JSON(http.StatusOK, resp)
}

// Compare handles POST /api/v1/compare
func (h *EvaluationHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	cfg := config.Config{Parameters: req.Base, Pricing: req.Pricing}
	if req.Weights != nil {
		cfg.Weights = *req.Weights
	}
	if err := cfg.Validate(); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}
	resolved, err := cfg.Resolve(h.catalog)
	if err != nil {
		respondError(c, err)
		return
	}

	variations := make([]evaluation.Variation, 0, len(req.Variations))
	for _, v := range req.Variations {
		params, err := config.ResolveParameters(req.Base.Merge(v.Parameters), h.catalog)
		if err != nil {
			respondError(c, err)
			return
		}
		variations = append(variations, evaluation.Variation{Name: v.Name, Parameters: params})
	}

	scorer, err := scoring.New(resolved.Weights, resolved.Costs)
	if err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}
	comparison, err := evaluation.New(h.catalog, scorer).Compare(variations)
	if err != nil {
		respondError(c, err)
		return
	}
	for _, cmp := range comparison {
		h.metrics.Recommended(cmp.Recommendation.BestScenario)
	}

	c.JSON(http.StatusOK, models.CompareResponse{
		ID:         uuid.NewString(),
		Comparison: comparison,
	})
}
