package main

import (
	"fmt"
	"log"
	"os"

	"github.com/nutritrack/backend/config"
	httpDelivery "github.com/nutritrack/backend/internal/delivery/http"
	"github.com/nutritrack/backend/internal/domain"
	"github.com/nutritrack/backend/internal/infrastructure/cache"
	"github.com/nutritrack/backend/internal/infrastructure/catalog"
	"github.com/nutritrack/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting NutriTrack Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	matchCache := cache.NewMatchCache()
	source := catalog.NewFileSource(cfg.Catalog.AlcoholPath, cfg.Catalog.CaffeinePath)

	// Initialize usecase layer
	beverageService := usecase.NewBeverageService(matchCache, usecase.BeverageServiceConfig{
		MatchThreshold:     cfg.Matching.Threshold,
		EnableDebugLogging: cfg.Matching.EnableDebugLogging,
	})

	log.Printf("Matching: threshold=%.2f, debug=%v",
		cfg.Matching.Threshold, cfg.Matching.EnableDebugLogging)

	// Load beverage catalogs
	for _, kind := range []domain.CatalogKind{domain.CatalogAlcohol, domain.CatalogCaffeine} {
		entries, err := source.Load(kind)
		if err != nil {
			log.Fatalf("Failed to load %s catalog: %v", kind, err)
		}
		if err := beverageService.UpdateCatalog(kind, entries); err != nil {
			log.Fatalf("Failed to install %s catalog: %v", kind, err)
		}
		log.Printf("Loaded %d %s catalog entries", len(entries), kind)
	}

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(beverageService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
