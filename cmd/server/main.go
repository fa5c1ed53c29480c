package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aerovent/aerovent-backend/config"
	"github.com/aerovent/aerovent-backend/internal/app/controller"
	"github.com/aerovent/aerovent-backend/internal/app/repository"
	"github.com/aerovent/aerovent-backend/internal/app/service"
	"github.com/aerovent/aerovent-backend/internal/db"
	"github.com/aerovent/aerovent-backend/internal/router"
	"github.com/aerovent/aerovent-backend/internal/scheduler"
	"github.com/aerovent/aerovent-backend/pkg/logger"
	"github.com/aerovent/aerovent-backend/pkg/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting AEROVENT Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	database, err := db.Initialize(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(database); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	if err := db.Migrate(database); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Redis is optional: a failed connection degrades to uncached reads
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Warn("Continuing without Redis cache", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer func() {
		if err := redis.Close(); err != nil {
			logger.Error("Failed to close Redis connection", err)
		}
	}()

	// Repositories
	droneRepo := repository.NewDroneRepository(database)
	optionRepo := repository.NewOptionRepository(database)
	ewsRepo := repository.NewEWSRepository(database)
	detectorRepo := repository.NewDetectorRepository(database)
	batteryRepo := repository.NewBatteryRepository(database)
	catalogRepo := repository.NewCatalogRepository(database)
	consultationRepo := repository.NewConsultationRepository(database)
	visitRepo := repository.NewVisitRepository(database)

	// Services
	droneService := service.NewDroneService(droneRepo, optionRepo)
	ewsService := service.NewEWSService(ewsRepo)
	detectorService := service.NewDetectorService(detectorRepo)
	batteryService := service.NewBatteryService(batteryRepo)
	productService := service.NewProductService(droneRepo, ewsRepo, detectorRepo, catalogRepo, visitRepo)
	consultationService := service.NewConsultationService(consultationRepo)
	visitService := service.NewVisitService(visitRepo)

	// Controllers
	uavController := controller.NewUAVController(droneService)
	ewsController := controller.NewEWSController(ewsService)
	detectorController := controller.NewDetectorController(detectorService)
	batteryController := controller.NewBatteryController(batteryService)
	productController := controller.NewProductController(productService)
	consultationController := controller.NewConsultationController(consultationService)
	trackController := controller.NewTrackController(visitService)

	cacheScheduler := scheduler.NewCatalogCacheScheduler(droneService, ewsService, batteryService, productService)
	if err := cacheScheduler.Start(); err != nil {
		logger.Warn("Cache warm scheduler not running", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer cacheScheduler.Stop()

	r := router.NewRouter(
		uavController,
		ewsController,
		detectorController,
		batteryController,
		productController,
		consultationController,
		trackController,
		cfg,
	)
	engine := r.Setup()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
