package repository

import (
	"database/sql"
	"fmt"

	"github.com/aerovent/aerovent-backend/internal/app/model"
	"github.com/aerovent/aerovent-backend/pkg/logger"
	"gorm.io/gorm"
)

// dronePriceExpr is the catalog price of a drone: the stored base price plus
// the price of the factory-default option in every add-on group. A default id
// that matches no option row contributes nothing.
const dronePriceExpr = `drones.price
 + COALESCE((SELECT o.price FROM rx_options o WHERE o.id = drones.rx_default_id), 0)
 + COALESCE((SELECT o.price FROM vtx_options o WHERE o.id = drones.vtx_default_id), 0)
 + COALESCE((SELECT o.price FROM camera_options o WHERE o.id = drones.camera_default_id), 0)
 + COALESCE((SELECT o.price FROM battery_options o WHERE o.id = drones.battery_default_id), 0)
 + COALESCE((SELECT o.price FROM fiber_spool_options o WHERE o.id = drones.fiber_spool_default_id), 0)`

// DroneFilter carries the optional catalog filters. Nil/empty fields mean
// "no constraint from this dimension". Multi-select fields arrive as lists;
// comma-splitting of query strings happens at the transport boundary.
type DroneFilter struct {
	Search             string
	Applications       []string
	Connections        []string
	ProductionStatuses []string
	MinPrice           *float64
	MaxPrice           *float64
	MinSize            *int
	MaxSize            *int
	Limit              int
	Offset             int
}

// DroneFilterDomain describes the full available filter domain for the drone
// family, irrespective of any currently-applied filter.
type DroneFilterDomain struct {
	Applications       []string                 `json:"applications"`
	Connections        []string                 `json:"connections"`
	PriceRange         PriceRange               `json:"priceRange"`
	SizeRange          SizeRange                `json:"sizeRange"`
	ProductionStatuses []model.ProductionStatus `json:"productionStatuses"`
}

type DroneRepository interface {
	Create(drone *model.Drone) error
	Count(filter DroneFilter) (int64, error)
	FindWithFilter(filter DroneFilter) ([]model.Drone, error)
	FindByID(id string) (*model.Drone, error)
	FindSimilar(application model.DroneApplication, excludeID string, limit int) ([]model.Drone, error)
	FindCurated(limit int) ([]model.Drone, error)
	FilterDomain() (DroneFilterDomain, error)
}

type droneRepository struct {
	db *gorm.DB
}

func NewDroneRepository(db *gorm.DB) DroneRepository {
	return &droneRepository{db: db}
}

func (r *droneRepository) Create(drone *model.Drone) error {
	if err := r.db.Create(drone).Error; err != nil {
		logger.Error("Failed to create drone", err, map[string]interface{}{
			"drone_id": drone.ID,
			"model":    drone.Model,
		})
		return err
	}
	return nil
}

// applyFilter conjoins every supplied predicate. An absent parameter adds no
// clause at all.
func (r *droneRepository) applyFilter(query *gorm.DB, filter DroneFilter) *gorm.DB {
	if len(filter.Applications) > 0 {
		query = query.Where("drones.application IN ?", filter.Applications)
	}
	if len(filter.Connections) > 0 {
		query = query.Where("drones.connection IN ?", filter.Connections)
	}
	if len(filter.ProductionStatuses) > 0 {
		query = query.Where("drones.production_status IN ?", filter.ProductionStatuses)
	}
	if filter.MinPrice != nil {
		query = query.Where("("+dronePriceExpr+") >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("("+dronePriceExpr+") <= ?", *filter.MaxPrice)
	}
	if filter.MinSize != nil {
		query = query.Where("drones.size >= ?", *filter.MinSize)
	}
	if filter.MaxSize != nil {
		query = query.Where("drones.size <= ?", *filter.MaxSize)
	}
	if filter.Search != "" {
		like := fmt.Sprintf("%%%s%%", filter.Search)
		query = query.Where("LOWER(drones.model) LIKE LOWER(?) OR LOWER(drones.description) LIKE LOWER(?)", like, like)
	}
	return query
}

func (r *droneRepository) Count(filter DroneFilter) (int64, error) {
	var total int64
	query := r.applyFilter(r.db.Model(&model.Drone{}), filter)
	if err := query.Count(&total).Error; err != nil {
		logger.Error("Failed to count drones", err, nil)
		return 0, err
	}
	return total, nil
}

func (r *droneRepository) FindWithFilter(filter DroneFilter) ([]model.Drone, error) {
	logger.Debug("Finding drones with filter", map[string]interface{}{
		"search":       filter.Search,
		"applications": filter.Applications,
		"connections":  filter.Connections,
		"limit":        filter.Limit,
		"offset":       filter.Offset,
	})

	query := r.applyFilter(r.db.Model(&model.Drone{}), filter).
		Select("drones.*, (" + dronePriceExpr + ") AS display_price").
		Order("drones.created_at DESC").
		Order("drones.id DESC")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var drones []model.Drone
	if err := query.Find(&drones).Error; err != nil {
		logger.Error("Failed to find drones with filter", err, map[string]interface{}{
			"search": filter.Search,
		})
		return nil, err
	}

	logger.Debug("Drones found with filter", map[string]interface{}{
		"count": len(drones),
	})
	return drones, nil
}

func (r *droneRepository) FindByID(id string) (*model.Drone, error) {
	var drone model.Drone
	err := r.db.Model(&model.Drone{}).
		Select("drones.*, ("+dronePriceExpr+") AS display_price").
		Where("drones.id = ?", id).
		First(&drone).Error
	if err != nil {
		return nil, err
	}
	return &drone, nil
}

// FindSimilar returns up to limit in-production drones of the same
// application, newest first, excluding the current record.
func (r *droneRepository) FindSimilar(application model.DroneApplication, excludeID string, limit int) ([]model.Drone, error) {
	var drones []model.Drone
	err := r.db.Model(&model.Drone{}).
		Select("drones.*, ("+dronePriceExpr+") AS display_price").
		Where("drones.application = ?", application).
		Where("drones.id <> ?", excludeID).
		Where("drones.production_status = ?", model.StatusInProduction).
		Order("drones.created_at DESC").
		Order("drones.id DESC").
		Limit(limit).
		Find(&drones).Error
	if err != nil {
		logger.Error("Failed to find similar drones", err, map[string]interface{}{
			"application": application,
			"exclude_id":  excludeID,
		})
		return nil, err
	}
	return drones, nil
}

// FindCurated returns in-production drones that have a main image, for the
// storefront's blended product showcase.
func (r *droneRepository) FindCurated(limit int) ([]model.Drone, error) {
	var drones []model.Drone
	query := r.db.Model(&model.Drone{}).
		Select("drones.*, ("+dronePriceExpr+") AS display_price").
		Where("drones.main_image IS NOT NULL AND drones.main_image <> ''").
		Where("drones.production_status = ?", model.StatusInProduction).
		Order("drones.created_at DESC").
		Order("drones.id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&drones).Error; err != nil {
		logger.Error("Failed to find curated drones", err, nil)
		return nil, err
	}
	return drones, nil
}

// FilterDomain reports the distinct categorical values and global numeric
// bounds over the entire family. Applied filters never narrow it.
func (r *droneRepository) FilterDomain() (DroneFilterDomain, error) {
	domain := DroneFilterDomain{
		ProductionStatuses: model.ProductionStatuses,
	}

	if err := r.db.Model(&model.Drone{}).
		Where("application IS NOT NULL AND application <> ''").
		Distinct().
		Order("application ASC").
		Pluck("application", &domain.Applications).Error; err != nil {
		logger.Error("Failed to fetch distinct applications", err, nil)
		return domain, err
	}

	if err := r.db.Model(&model.Drone{}).
		Where("connection IS NOT NULL AND connection <> ''").
		Distinct().
		Order("connection ASC").
		Pluck("connection", &domain.Connections).Error; err != nil {
		logger.Error("Failed to fetch distinct connections", err, nil)
		return domain, err
	}

	var minPrice, maxPrice sql.NullFloat64
	var minSize, maxSize sql.NullInt64
	row := r.db.Model(&model.Drone{}).
		Select("MIN(" + dronePriceExpr + "), MAX(" + dronePriceExpr + "), MIN(drones.size), MAX(drones.size)").
		Row()
	if err := row.Scan(&minPrice, &maxPrice, &minSize, &maxSize); err != nil {
		logger.Error("Failed to fetch drone price/size bounds", err, nil)
		return domain, err
	}

	domain.PriceRange = PriceRange{Min: minPrice.Float64, Max: maxPrice.Float64}
	if !maxPrice.Valid || domain.PriceRange.Max == 0 {
		domain.PriceRange.Max = fallbackMaxPrice
	}
	domain.SizeRange = SizeRange{Min: int(minSize.Int64), Max: int(maxSize.Int64)}
	if !maxSize.Valid || domain.SizeRange.Max == 0 {
		domain.SizeRange.Max = fallbackMaxSize
	}

	return domain, nil
}
