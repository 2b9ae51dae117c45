package api

import (
	"net/http"

	"pv-battery-sizing/internal/api/handlers"
	"pv-battery-sizing/internal/api/middleware"
	"pv-battery-sizing/internal/catalog"
	"pv-battery-sizing/internal/evaluation"

	"github.com/gin-gonic/gin"
)

// NewRouter wires every route. metrics may be nil, which disables /metrics;
// cache may be nil, which disables result caching.
func NewRouter(cat *catalog.Catalog, metrics *middleware.Metrics, cache *evaluation.Cache) *gin.Engine {
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	if metrics != nil {
		router.Use(metrics.Middleware())
		router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	evaluationHandler := handlers.NewEvaluationHandler(cat, metrics, cache)
	catalogHandler := handlers.NewCatalogHandler(cat)
	billHandler := handlers.NewBillHandler(cat)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/evaluate", evaluationHandler.Evaluate)
		api.POST("/size", evaluationHandler.Size)
		api.POST("/compare", evaluationHandler.Compare)
		api.POST("/bill", billHandler.EstimateBill)

		api.GET("/batteries", catalogHandler.ListBatteries)
		api.GET("/modules", catalogHandler.ListModules)
		api.GET("/inverters", catalogHandler.ListInverters)
		api.GET("/cities", catalogHandler.ListCities)
		api.GET("/profiles", catalogHandler.ListProfiles)
		api.GET("/tariffs", catalogHandler.ListTariffs)
		api.GET("/subsidies", catalogHandler.ListSubsidies)
	}

	return router
}
