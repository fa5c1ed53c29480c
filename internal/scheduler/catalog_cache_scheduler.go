package scheduler

import (
	"context"

	"github.com/aerovent/aerovent-backend/internal/app/service"
	"github.com/aerovent/aerovent-backend/pkg/logger"
	"github.com/aerovent/aerovent-backend/pkg/redis"
	"github.com/robfig/cron/v3"
)

// CatalogCacheScheduler refreshes the cached filter domains and site stats
// before their TTL runs out, so visitors rarely pay for the recompute.
type CatalogCacheScheduler struct {
	cron           *cron.Cron
	droneService   service.DroneService
	ewsService     service.EWSService
	batteryService service.BatteryService
	productService service.ProductService
}

func NewCatalogCacheScheduler(
	droneService service.DroneService,
	ewsService service.EWSService,
	batteryService service.BatteryService,
	productService service.ProductService,
) *CatalogCacheScheduler {
	return &CatalogCacheScheduler{
		cron:           cron.New(),
		droneService:   droneService,
		ewsService:     ewsService,
		batteryService: batteryService,
		productService: productService,
	}
}

func (s *CatalogCacheScheduler) Start() error {
	if !redis.Enabled() {
		logger.Info("Cache warm scheduler skipped, Redis disabled", nil)
		return nil
	}

	_, err := s.cron.AddFunc("*/4 * * * *", s.warm)
	if err != nil {
		logger.Error("Failed to add cache warm cron job", err, nil)
		return err
	}

	s.cron.Start()
	logger.Info("Catalog cache scheduler started (every 4 minutes)", nil)
	return nil
}

func (s *CatalogCacheScheduler) warm() {
	ctx := context.Background()

	if _, err := s.droneService.FilterDomain(ctx); err != nil {
		logger.Error("Failed to warm drone filter domain", err, nil)
	}
	if _, err := s.ewsService.FilterDomain(ctx); err != nil {
		logger.Error("Failed to warm EW filter domain", err, nil)
	}
	if _, err := s.batteryService.FilterDomain(ctx); err != nil {
		logger.Error("Failed to warm battery filter domain", err, nil)
	}
	if _, err := s.productService.Stats(ctx); err != nil {
		logger.Error("Failed to warm site stats", err, nil)
	}

	logger.Debug("Catalog caches warmed", nil)
}

func (s *CatalogCacheScheduler) Stop() {
	logger.Info("Stopping catalog cache scheduler...", nil)
	s.cron.Stop()
	logger.Info("Catalog cache scheduler stopped", nil)
}
