package repository

import (
	"fmt"

	"github.com/aerovent/aerovent-backend/internal/app/model"
	"github.com/aerovent/aerovent-backend/pkg/logger"
	"gorm.io/gorm"
)

type DetectorFilter struct {
	Search string
	Limit  int
	Offset int
}

type DetectorRepository interface {
	Create(detector *model.DroneDetector) error
	Count(filter DetectorFilter) (int64, error)
	FindWithFilter(filter DetectorFilter) ([]model.DroneDetector, error)
	FindByID(id string) (*model.DroneDetector, error)
	FindSimilar(excludeID string, limit int) ([]model.DroneDetector, error)
	FindCurated(limit int) ([]model.DroneDetector, error)
}

type detectorRepository struct {
	db *gorm.DB
}

func NewDetectorRepository(db *gorm.DB) DetectorRepository {
	return &detectorRepository{db: db}
}

func (r *detectorRepository) Create(detector *model.DroneDetector) error {
	if err := r.db.Create(detector).Error; err != nil {
		logger.Error("Failed to create drone detector", err, map[string]interface{}{
			"detector_id": detector.ID,
		})
		return err
	}
	return nil
}

func (r *detectorRepository) applyFilter(query *gorm.DB, filter DetectorFilter) *gorm.DB {
	if filter.Search != "" {
		like := fmt.Sprintf("%%%s%%", filter.Search)
		query = query.Where("LOWER(model) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", like, like)
	}
	return query
}

func (r *detectorRepository) Count(filter DetectorFilter) (int64, error) {
	var total int64
	if err := r.applyFilter(r.db.Model(&model.DroneDetector{}), filter).Count(&total).Error; err != nil {
		logger.Error("Failed to count drone detectors", err, nil)
		return 0, err
	}
	return total, nil
}

func (r *detectorRepository) FindWithFilter(filter DetectorFilter) ([]model.DroneDetector, error) {
	query := r.applyFilter(r.db.Model(&model.DroneDetector{}), filter).
		Order("created_at DESC").
		Order("id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var detectors []model.DroneDetector
	if err := query.Find(&detectors).Error; err != nil {
		logger.Error("Failed to find drone detectors with filter", err, map[string]interface{}{
			"search": filter.Search,
		})
		return nil, err
	}
	return detectors, nil
}

func (r *detectorRepository) FindByID(id string) (*model.DroneDetector, error) {
	var detector model.DroneDetector
	if err := r.db.Where("id = ?", id).First(&detector).Error; err != nil {
		return nil, err
	}
	return &detector, nil
}

func (r *detectorRepository) FindSimilar(excludeID string, limit int) ([]model.DroneDetector, error) {
	var detectors []model.DroneDetector
	err := r.db.Model(&model.DroneDetector{}).
		Where("id <> ?", excludeID).
		Where("production_status = ?", model.StatusInProduction).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&detectors).Error
	if err != nil {
		logger.Error("Failed to find similar drone detectors", err, map[string]interface{}{
			"exclude_id": excludeID,
		})
		return nil, err
	}
	return detectors, nil
}

func (r *detectorRepository) FindCurated(limit int) ([]model.DroneDetector, error) {
	var detectors []model.DroneDetector
	query := r.db.Model(&model.DroneDetector{}).
		Where("main_image IS NOT NULL AND main_image <> ''").
		Where("production_status = ?", model.StatusInProduction).
		Order("created_at DESC").
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&detectors).Error; err != nil {
		logger.Error("Failed to find curated drone detectors", err, nil)
		return nil, err
	}
	return detectors, nil
}
