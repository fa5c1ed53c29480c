package repository

import (
	"database/sql"
	"fmt"

	"github.com/aerovent/aerovent-backend/internal/app/model"
	"github.com/aerovent/aerovent-backend/pkg/logger"
	"gorm.io/gorm"
)

type EWSFilter struct {
	Search             string
	ProductionStatuses []string
	MinPrice           *float64
	MaxPrice           *float64
	Limit              int
	Offset             int
}

type EWSFilterDomain struct {
	PriceRange         PriceRange               `json:"priceRange"`
	ProductionStatuses []model.ProductionStatus `json:"productionStatuses"`
}

type EWSRepository interface {
	Create(system *model.EWS) error
	Count(filter EWSFilter) (int64, error)
	FindWithFilter(filter EWSFilter) ([]model.EWS, error)
	FindByID(id string) (*model.EWS, error)
	FindSimilar(excludeID string, limit int) ([]model.EWS, error)
	FindCurated(limit int) ([]model.EWS, error)
	FilterDomain() (EWSFilterDomain, error)
}

type ewsRepository struct {
	db *gorm.DB
}

func NewEWSRepository(db *gorm.DB) EWSRepository {
	return &ewsRepository{db: db}
}

func (r *ewsRepository) Create(system *model.EWS) error {
	if err := r.db.Create(system).Error; err != nil {
		logger.Error("Failed to create EW system", err, map[string]interface{}{
			"ews_id": system.ID,
		})
		return err
	}
	return nil
}

func (r *ewsRepository) applyFilter(query *gorm.DB, filter EWSFilter) *gorm.DB {
	if len(filter.ProductionStatuses) > 0 {
		query = query.Where("production_status IN ?", filter.ProductionStatuses)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Search != "" {
		like := fmt.Sprintf("%%%s%%", filter.Search)
		query = query.Where("LOWER(model) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", like, like)
	}
	return query
}

func (r *ewsRepository) Count(filter EWSFilter) (int64, error) {
	var total int64
	if err := r.applyFilter(r.db.Model(&model.EWS{}), filter).Count(&total).Error; err != nil {
		logger.Error("Failed to count EW systems", err, nil)
		return 0, err
	}
	return total, nil
}

func (r *ewsRepository) FindWithFilter(filter EWSFilter) ([]model.EWS, error) {
	query := r.applyFilter(r.db.Model(&model.EWS{}), filter).
		Order("created_at DESC").
		Order("id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var systems []model.EWS
	if err := query.Find(&systems).Error; err != nil {
		logger.Error("Failed to find EW systems with filter", err, map[string]interface{}{
			"search": filter.Search,
		})
		return nil, err
	}
	return systems, nil
}

func (r *ewsRepository) FindByID(id string) (*model.EWS, error) {
	var system model.EWS
	if err := r.db.Where("id = ?", id).First(&system).Error; err != nil {
		return nil, err
	}
	return &system, nil
}

// FindSimilar picks random in-production systems. The family is small enough
// that a random draw reads better on the detail page than recency.
func (r *ewsRepository) FindSimilar(excludeID string, limit int) ([]model.EWS, error) {
	var systems []model.EWS
	err := r.db.Model(&model.EWS{}).
		Where("id <> ?", excludeID).
		Where("production_status = ?", model.StatusInProduction).
		Order("RANDOM()").
		Limit(limit).
		Find(&systems).Error
	if err != nil {
		logger.Error("Failed to find similar EW systems", err, map[string]interface{}{
			"exclude_id": excludeID,
		})
		return nil, err
	}
	return systems, nil
}

func (r *ewsRepository) FindCurated(limit int) ([]model.EWS, error) {
	var systems []model.EWS
	query := r.db.Model(&model.EWS{}).
		Where("main_image IS NOT NULL AND main_image <> ''").
		Where("production_status = ?", model.StatusInProduction).
		Order("created_at DESC").
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&systems).Error; err != nil {
		logger.Error("Failed to find curated EW systems", err, nil)
		return nil, err
	}
	return systems, nil
}

func (r *ewsRepository) FilterDomain() (EWSFilterDomain, error) {
	domain := EWSFilterDomain{
		ProductionStatuses: model.ProductionStatuses,
	}

	var minPrice, maxPrice sql.NullFloat64
	row := r.db.Model(&model.EWS{}).Select("MIN(price), MAX(price)").Row()
	if err := row.Scan(&minPrice, &maxPrice); err != nil {
		logger.Error("Failed to fetch EW price bounds", err, nil)
		return domain, err
	}

	domain.PriceRange = PriceRange{Min: minPrice.Float64, Max: maxPrice.Float64}
	if !maxPrice.Valid || domain.PriceRange.Max == 0 {
		domain.PriceRange.Max = fallbackMaxPrice
	}
	return domain, nil
}
