package repository

import (
	"database/sql"
	"fmt"

	"github.com/aerovent/aerovent-backend/internal/app/model"
	"github.com/aerovent/aerovent-backend/pkg/logger"
	"gorm.io/gorm"
)

type BatteryFilter struct {
	Search         string
	Manufacturers  []string
	BatteryTypes   []string
	Configurations []string
	MinPrice       *float64
	MaxPrice       *float64
	Limit          int
	Offset         int
}

type BatteryFilterDomain struct {
	Manufacturers  []string   `json:"manufacturers"`
	BatteryTypes   []string   `json:"batteryTypes"`
	Configurations []string   `json:"configurations"`
	PriceRange     PriceRange `json:"priceRange"`
}

type BatteryRepository interface {
	Create(battery *model.Battery) error
	Count(filter BatteryFilter) (int64, error)
	FindWithFilter(filter BatteryFilter) ([]model.Battery, error)
	FindByID(id string) (*model.Battery, error)
	FindSimilar(excludeID string, limit int) ([]model.Battery, error)
	FindCurated(limit int) ([]model.Battery, error)
	FilterDomain() (BatteryFilterDomain, error)
}

type batteryRepository struct {
	db *gorm.DB
}

func NewBatteryRepository(db *gorm.DB) BatteryRepository {
	return &batteryRepository{db: db}
}

func (r *batteryRepository) Create(battery *model.Battery) error {
	if err := r.db.Create(battery).Error; err != nil {
		logger.Error("Failed to create battery", err, map[string]interface{}{
			"battery_id": battery.ID,
		})
		return err
	}
	return nil
}

func (r *batteryRepository) applyFilter(query *gorm.DB, filter BatteryFilter) *gorm.DB {
	if len(filter.Manufacturers) > 0 {
		query = query.Where("manufacturer IN ?", filter.Manufacturers)
	}
	if len(filter.BatteryTypes) > 0 {
		query = query.Where("battery_type IN ?", filter.BatteryTypes)
	}
	if len(filter.Configurations) > 0 {
		query = query.Where("configuration IN ?", filter.Configurations)
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

func (r *batteryRepository) Count(filter BatteryFilter) (int64, error) {
	var total int64
	if err := r.applyFilter(r.db.Model(&model.Battery{}), filter).Count(&total).Error; err != nil {
		logger.Error("Failed to count batteries", err, nil)
		return 0, err
	}
	return total, nil
}

func (r *batteryRepository) FindWithFilter(filter BatteryFilter) ([]model.Battery, error) {
	query := r.applyFilter(r.db.Model(&model.Battery{}), filter).
		Order("created_at DESC").
		Order("id DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var batteries []model.Battery
	if err := query.Find(&batteries).Error; err != nil {
		logger.Error("Failed to find batteries with filter", err, map[string]interface{}{
			"search": filter.Search,
		})
		return nil, err
	}
	return batteries, nil
}

func (r *batteryRepository) FindByID(id string) (*model.Battery, error) {
	var battery model.Battery
	if err := r.db.Where("id = ?", id).First(&battery).Error; err != nil {
		return nil, err
	}
	return &battery, nil
}

// FindSimilar prefers batteries of the same type as the excluded record's
// siblings are usually browsed together; here recency is enough.
func (r *batteryRepository) FindSimilar(excludeID string, limit int) ([]model.Battery, error) {
	var batteries []model.Battery
	err := r.db.Model(&model.Battery{}).
		Where("id <> ?", excludeID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&batteries).Error
	if err != nil {
		logger.Error("Failed to find similar batteries", err, map[string]interface{}{
			"exclude_id": excludeID,
		})
		return nil, err
	}
	return batteries, nil
}

func (r *batteryRepository) FindCurated(limit int) ([]model.Battery, error) {
	var batteries []model.Battery
	query := r.db.Model(&model.Battery{}).
		Where("main_image IS NOT NULL AND main_image <> ''").
		Order("created_at DESC").
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&batteries).Error; err != nil {
		logger.Error("Failed to find curated batteries", err, nil)
		return nil, err
	}
	return batteries, nil
}

func (r *batteryRepository) FilterDomain() (BatteryFilterDomain, error) {
	var domain BatteryFilterDomain

	distinct := func(column string, dest *[]string) error {
		return r.db.Model(&model.Battery{}).
			Where(column + " IS NOT NULL AND " + column + " <> ''").
			Distinct().
			Order(column + " ASC").
			Pluck(column, dest).Error
	}

	if err := distinct("manufacturer", &domain.Manufacturers); err != nil {
		logger.Error("Failed to fetch distinct battery manufacturers", err, nil)
		return domain, err
	}
	if err := distinct("battery_type", &domain.BatteryTypes); err != nil {
		logger.Error("Failed to fetch distinct battery types", err, nil)
		return domain, err
	}
	if err := distinct("configuration", &domain.Configurations); err != nil {
		logger.Error("Failed to fetch distinct battery configurations", err, nil)
		return domain, err
	}

	var minPrice, maxPrice sql.NullFloat64
	row := r.db.Model(&model.Battery{}).Select("MIN(price), MAX(price)").Row()
	if err := row.Scan(&minPrice, &maxPrice); err != nil {
		logger.Error("Failed to fetch battery price bounds", err, nil)
		return domain, err
	}
	domain.PriceRange = PriceRange{Min: minPrice.Float64, Max: maxPrice.Float64}
	if !maxPrice.Valid || domain.PriceRange.Max == 0 {
		domain.PriceRange.Max = fallbackMaxPrice
	}
	return domain, nil
}
