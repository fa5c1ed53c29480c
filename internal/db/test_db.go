package db

import (
	"fmt"
	"log"

	"github.com/aerovent/aerovent-backend/internal/app/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an in-memory SQLite database for testing
func SetupTestDB() (*gorm.DB, error) {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	err = database.AutoMigrate(
		&model.Drone{},
		&model.EWS{},
		&model.DroneDetector{},
		&model.Battery{},
		&model.ConsultationRequest{},
		&model.SiteVisit{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate test database: %w", err)
	}

	for _, table := range model.OptionTables {
		if err := database.Table(table).AutoMigrate(&model.DroneOption{}); err != nil {
			return nil, fmt.Errorf("failed to migrate option table %s: %w", table, err)
		}
	}

	return database, nil
}

// CleanupTestDB cleans up the test database
func CleanupTestDB(database *gorm.DB) {
	sqlDB, err := database.DB()
	if err != nil {
		log.Printf("Failed to get DB instance: %v", err)
		return
	}
	sqlDB.Close()
}
