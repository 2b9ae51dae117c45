package handlers

import (
	"net/http"

	"pv-battery-sizing/internal/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the technology catalog
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// ListBatteries handles GET /api/v1/batteries
func (h *CatalogHandler) ListBatteries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"batteries": h.catalog.ListBatteries()})
}

// ListModules handles GET /api/v1/modules
func (h *CatalogHandler) ListModules(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"modules": h.catalog.ListModules()})
}

// ListInverters handles GET /api/v1/inverters
func (h *CatalogHandler) ListInverters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"inverters": h.catalog.ListInverters()})
}

// ListCities handles GET /api/v1/cities
func (h *CatalogHandler) ListCities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cities": h.catalog.ListCities()})
}

// ListProfiles handles GET /api/v1/profiles
func (h *CatalogHandler) ListProfiles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"profiles": h.catalog.ListProfiles()})
}

// ListTariffs handles GET /api/v1/tariffs
func (h *CatalogHandler) ListTariffs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tariffs": h.catalog.ListTariffs()})
}

// ListSubsidies handles GET /api/v1/subsidies
func (h *CatalogHandler) ListSubsidies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"subsidies": h.catalog.ListSubsidies()})
}
