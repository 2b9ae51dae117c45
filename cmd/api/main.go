package main

import (
	"fmt"
	"log"
	"os"

	"pv-battery-sizing/internal/api"
	"pv-battery-sizing/internal/api/middleware"
	"pv-battery-sizing/internal/catalog"
	"pv-battery-sizing/internal/evaluation"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	catalogPath := catalog.DefaultPath()
	cat, err := catalog.Open(catalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	if catalogPath == "" {
		log.Printf("Using built-in catalog (%d batteries, %d modules, %d cities)",
			len(cat.Batteries), len(cat.Modules), len(cat.Cities))
	} else {
		log.Printf("Using catalog file: %s", catalogPath)
	}

	cache := evaluation.CacheFromEnv()
	if cache != nil {
		log.Printf("Evaluation cache enabled")
	}

	router := api.NewRouter(cat, middleware.NewMetrics(), cache)

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
