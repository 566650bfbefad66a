package main

// @title Neighborhood Gateway API
// @version 1.0.0
// @description Геокодирование адресов, поиск кофеен рядом с точкой и определение района Бостона по координатам. Все ответы - GeoJSON FeatureCollection с координатами [lon, lat].

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/neighborhood-gateway/docs/swagger"
	"github.com/neighborhood-gateway/internal/config"
	httpDelivery "github.com/neighborhood-gateway/internal/delivery/http"
	"github.com/neighborhood-gateway/internal/delivery/http/handler"
	"github.com/neighborhood-gateway/internal/infrastructure/azuremaps"
	"github.com/neighborhood-gateway/internal/pkg/logger"
	"github.com/neighborhood-gateway/internal/repository/postgres"
	"github.com/neighborhood-gateway/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", zap.Error(err))
	}

	log.Info("Starting Neighborhood Gateway")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("database", cfg.RedactedDatabaseTarget()),
		zap.String("neighborhood_table", cfg.Database.NeighborhoodTable),
		zap.String("azure_maps_base_url", cfg.AzureMaps.BaseURL),
	)

	// 3. Connect to PostGIS
	db, err := postgres.New(cfg, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	// 4. Initialize Repositories
	neighborhoodRepo, err := postgres.NewNeighborhoodRepository(db, &cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize neighborhood repository", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := neighborhoodRepo.VerifySRID(ctx); err != nil {
		cancel()
		log.Fatal("Neighborhood table check failed", zap.Error(err))
	}
	cancel()

	mapsClient := azuremaps.NewClient(&cfg.AzureMaps, log)

	log.Info("Repositories initialized")

	// 5. Initialize Use Cases
	geocodeUC := usecase.NewGeocodeUseCase(mapsClient, log)
	nearbyUC := usecase.NewNearbyPOIUseCase(mapsClient, cfg.AzureMaps.CoffeeCategory, log)
	neighborhoodUC := usecase.NewNeighborhoodUseCase(neighborhoodRepo, log)

	// 6. Initialize HTTP Handlers
	geocodeHandler := handler.NewGeocodeHandler(geocodeUC, log)
	poiHandler := handler.NewPOIHandler(nearbyUC, log)
	neighborhoodHandler := handler.NewNeighborhoodHandler(neighborhoodUC, log)
	healthHandler := handler.NewHealthHandler(db, log)

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		geocodeHandler,
		poiHandler,
		neighborhoodHandler,
		healthHandler,
	)

	// 8. Pool metrics reporter
	statsCtx, stopStats := context.WithCancel(context.Background())
	defer stopStats()
	go db.ReportPoolStats(statsCtx, 15*time.Second)

	// 9. Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info("Shutting down server gracefully...", zap.String("signal", sig.String()))
	case err := <-serverErr:
		if err != nil {
			log.Error("Server stopped unexpectedly", zap.Error(err))
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	stopStats()

	if err := db.Close(); err != nil {
		log.Error("Failed to close database", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
