package repository

import (
	"database/sql"

	"github.com/aerovent/aerovent-backend/internal/app/model"
	"github.com/aerovent/aerovent-backend/pkg/logger"
	"gorm.io/gorm"
)

// FamilyStats summarizes one product family for the stats endpoint.
type FamilyStats struct {
	Total    int64   `json:"total"`
	Active   int64   `json:"active"`
	AvgPrice float64 `json:"avgPrice"`
}

// CatalogStats is the cross-family summary behind GET /stats.
type CatalogStats struct {
	Drones             FamilyStats `json:"drones"`
	EWS                FamilyStats `json:"ews"`
	DroneDetectors     FamilyStats `json:"droneDetectors"`
	Batteries          FamilyStats `json:"batteries"`
	UniqueApplications int64       `json:"uniqueApplications"`
}

// CatalogRepository aggregates counts and averages across all families.
type CatalogRepository interface {
	Stats() (CatalogStats, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) Stats() (CatalogStats, error) {
	var stats CatalogStats

	droneStats, err := r.familyStats(r.db.Model(&model.Drone{}), "("+dronePriceExpr+")", true)
	if err != nil {
		return stats, err
	}
	stats.Drones = droneStats

	ewsStats, err := r.familyStats(r.db.Model(&model.EWS{}), "price", true)
	if err != nil {
		return stats, err
	}
	stats.EWS = ewsStats

	detectorStats, err := r.familyStats(r.db.Model(&model.DroneDetector{}), "price", true)
	if err != nil {
		return stats, err
	}
	stats.DroneDetectors = detectorStats

	// Batteries carry no production status; every row counts as active.
	batteryStats, err := r.familyStats(r.db.Model(&model.Battery{}), "price", false)
	if err != nil {
		return stats, err
	}
	stats.Batteries = batteryStats

	if err := r.db.Model(&model.Drone{}).
		Distinct("application").
		Count(&stats.UniqueApplications).Error; err != nil {
		logger.Error("Failed to count distinct applications", err, nil)
		return stats, err
	}

	return stats, nil
}

// familyStats computes the total row count, the in-production count and the
// average in-production price. priceExpr lets the drone family average over
// its computed catalog price.
func (r *catalogRepository) familyStats(query *gorm.DB, priceExpr string, hasStatus bool) (FamilyStats, error) {
	var stats FamilyStats

	if err := query.Session(&gorm.Session{}).Count(&stats.Total).Error; err != nil {
		logger.Error("Failed to count family rows", err, nil)
		return stats, err
	}

	active := query.Session(&gorm.Session{})
	if hasStatus {
		active = active.Where("production_status = ?", model.StatusInProduction)
	}
	if err := active.Count(&stats.Active).Error; err != nil {
		logger.Error("Failed to count active family rows", err, nil)
		return stats, err
	}

	avgQuery := query.Session(&gorm.Session{})
	if hasStatus {
		avgQuery = avgQuery.Where("production_status = ?", model.StatusInProduction)
	}
	var avg sql.NullFloat64
	row := avgQuery.Select("AVG(" + priceExpr + ")").Row()
	if err := row.Scan(&avg); err != nil {
		logger.Error("Failed to average family prices", err, nil)
		return stats, err
	}
	stats.AvgPrice = avg.Float64
	return stats, nil
}
