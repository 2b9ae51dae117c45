package handlers

import (
	"net/http"

	"pv-battery-sizing/internal/api/models"
	"pv-battery-sizing/internal/catalog"
	"pv-battery-sizing/internal/pricing"

	"github.com/gin-gonic/gin"
)

const defaultTariff = "residential_low"

// BillHandler handles tariff and subsidy requests
type BillHandler struct {
	catalog *catalog.Catalog
}

// NewBillHandler creates a new bill handler
func NewBillHandler(cat *catalog.Catalog) *BillHandler {
	return &BillHandler{catalog: cat}
}

// EstimateBill handles POST /api/v1/bill
func (h *BillHandler) EstimateBill(c *gin.Context) {
	var req models.BillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	tariffID := req.Tariff
	if tariffID == "" {
		tariffID = defaultTariff
	}
	tariff, err := h.catalog.Tariff(tariffID)
	if err != nil {
		respondError(c, err)
		return
	}

	bill, err := pricing.EstimateBill(req.Consumption, tariff)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := models.BillResponse{Bill: bill}

	if req.GridImport != nil {
		saved, err := pricing.AnnualSavings(req.Consumption, *req.GridImport, tariff)
		if err != nil {
			respondError(c, err)
			return
		}
		resp.AnnualSavings = &saved
	}
	if req.Subsidy != "" {
		resp.Subsidy = &models.SubsidyResult{
			Type:       req.Subsidy,
			Investment: req.Investment,
			Amount:     pricing.SubsidyFor(h.catalog, req.Subsidy, req.Investment),
		}
	}

	c.JSON(http.StatusOK, resp)
}
