package db

import (
	"github.com/aerovent/aerovent-backend/internal/app/model"
	"github.com/aerovent/aerovent-backend/pkg/logger"
	"gorm.io/gorm"
)

// Migrate runs database migrations
func Migrate(database *gorm.DB) error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.Drone{},
		&model.EWS{},
		&model.DroneDetector{},
		&model.Battery{},
		&model.ConsultationRequest{},
		&model.SiteVisit{},
	}

	if err := database.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	// The five option-group tables share one row shape, so they are migrated
	// by table name rather than by a dedicated model each.
	for _, table := range model.OptionTables {
		if err := database.Table(table).AutoMigrate(&model.DroneOption{}); err != nil {
			logger.Error("Failed to migrate option table", err, map[string]interface{}{
				"table": table,
			})
			return err
		}
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models) + len(model.OptionTables),
	})
	return nil
}
