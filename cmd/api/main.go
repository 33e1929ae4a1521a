package main

// @title Facility Finder API
// @version 1.0.0
// @description Поиск мест (facilities) через Google Places API v1: места рядом с точкой,
// @description параметризованный поиск с клиентскими фильтрами и детали места.

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"

	_ "github.com/facility-finder/docs"
	"github.com/facility-finder/internal/config"
	httpDelivery "github.com/facility-finder/internal/delivery/http"
	"github.com/facility-finder/internal/delivery/http/handler"
	"github.com/facility-finder/internal/infrastructure/places"
	"github.com/facility-finder/internal/pkg/logger"
	"github.com/facility-finder/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "facility-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Facility Finder API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("places_base_url", cfg.Places.BaseURL),
		zap.Bool("location_aware_text_search", cfg.Places.LocationAwareTextSearch),
	)

	// 3. Places provider client
	placesRepo := places.NewPlacesClient(&cfg.Places, log)

	// 4. Use cases
	facilityUC := usecase.NewFacilityUseCase(placesRepo, &cfg.Places, log)

	// 5. HTTP handlers and server
	facilityHandler := handler.NewFacilityHandler(facilityUC, log)
	server := httpDelivery.NewServer(cfg, log, facilityHandler)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 6. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
