package service

import (
	"context"
	"sort"
	"time"

	"github.com/aerovent/aerovent-backend/internal/app/model"
	"github.com/aerovent/aerovent-backend/internal/app/repository"
	"github.com/aerovent/aerovent-backend/pkg/logger"
	"github.com/aerovent/aerovent-backend/pkg/redis"
)

const statsCacheKey = "catalog:stats"

// ShowcaseItem is one entry of the blended landing-page catalog: drones, EW
// systems and detectors merged into a single newest-first feed.
type ShowcaseItem struct {
	ID               string                 `json:"id"`
	Type             string                 `json:"type"` // drone | ews | detector
	Model            string                 `json:"model"`
	Price            float64                `json:"price"`
	ProductionStatus model.ProductionStatus `json:"productionStatus"`
	Size             int                    `json:"size,omitempty"`
	Application      model.DroneApplication `json:"application,omitempty"`
	Connection       string                 `json:"connection,omitempty"`
	Description      string                 `json:"description,omitempty"`
	Image            string                 `json:"image,omitempty"`
	Gallery          []string               `json:"gallery"`
	URL              string                 `json:"url"`
	CreatedAt        time.Time              `json:"createdAt"`
}

// VisitStats summarizes the site-visit counter for the stats endpoint.
type VisitStats struct {
	UniqueVisitors int64 `json:"uniqueVisitors"`
	TotalVisits    int64 `json:"totalVisits"`
}

// SiteStats is the payload of GET /stats.
type SiteStats struct {
	repository.CatalogStats
	Visits VisitStats `json:"visits"`
}

type ProductService interface {
	Showcase(family string, limit int) ([]ShowcaseItem, error)
	Stats(ctx context.Context) (*SiteStats, error)
}

type productService struct {
	droneRepo    repository.DroneRepository
	ewsRepo      repository.EWSRepository
	detectorRepo repository.DetectorRepository
	catalogRepo  repository.CatalogRepository
	visitRepo    repository.VisitRepository
}

func NewProductService(
	droneRepo repository.DroneRepository,
	ewsRepo repository.EWSRepository,
	detectorRepo repository.DetectorRepository,
	catalogRepo repository.CatalogRepository,
	visitRepo repository.VisitRepository,
) ProductService {
	return &productService{
		droneRepo:    droneRepo,
		ewsRepo:      ewsRepo,
		detectorRepo: detectorRepo,
		catalogRepo:  catalogRepo,
		visitRepo:    visitRepo,
	}
}

// Showcase merges the curated rows of each family and keeps the limit newest.
// family narrows the feed to "drone" or "ews"; any other value blends all
// three showcase families. Each family query is already capped at limit, so
// the merge never over-fetches by more than two families' worth.
func (s *productService) Showcase(family string, limit int) ([]ShowcaseItem, error) {
	if limit <= 0 {
		limit = 12
	}

	var (
		drones    []model.Drone
		systems   []model.EWS
		detectors []model.DroneDetector
		err       error
	)
	switch family {
	case "drone":
		drones, err = s.droneRepo.FindCurated(limit)
	case "ews":
		systems, err = s.ewsRepo.FindCurated(limit)
	default:
		if drones, err = s.droneRepo.FindCurated(limit); err != nil {
			return nil, err
		}
		if systems, err = s.ewsRepo.FindCurated(limit); err != nil {
			return nil, err
		}
		detectors, err = s.detectorRepo.FindCurated(limit)
	}
	if err != nil {
		return nil, err
	}

	items := make([]ShowcaseItem, 0, len(drones)+len(systems)+len(detectors))
	for i := range drones {
		d := &drones[i]
		items = append(items, ShowcaseItem{
			ID:               d.ID,
			Type:             "drone",
			Model:            d.Model,
			Price:            d.DisplayPrice,
			ProductionStatus: d.ProductionStatus,
			Size:             d.Size,
			Application:      d.Application,
			Connection:       d.Connection,
			Description:      d.Description,
			Image:            d.MainImage,
			Gallery:          d.Gallery(),
			URL:              "/uav/" + d.ID,
			CreatedAt:        d.CreatedAt,
		})
	}
	for i := range systems {
		e := &systems[i]
		items = append(items, ShowcaseItem{
			ID:               e.ID,
			Type:             "ews",
			Model:            e.Model,
			Price:            e.Price,
			ProductionStatus: e.ProductionStatus,
			Description:      e.Description,
			Image:            e.MainImage,
			Gallery:          e.Gallery(),
			URL:              "/electronic_warfare_systems/" + e.ID,
			CreatedAt:        e.CreatedAt,
		})
	}
	for i := range detectors {
		d := &detectors[i]
		items = append(items, ShowcaseItem{
			ID:               d.ID,
			Type:             "detector",
			Model:            d.Model,
			Price:            d.Price,
			ProductionStatus: d.ProductionStatus,
			Description:      d.Description,
			Image:            d.MainImage,
			Gallery:          d.Gallery(),
			URL:              "/drone_detectors/" + d.ID,
			CreatedAt:        d.CreatedAt,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID > items[j].ID
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if len(items) > limit {
		items = items[:limit]
	}

	logger.Debug("Showcase assembled", map[string]interface{}{
		"count": len(items),
	})
	return items, nil
}

func (s *productService) Stats(ctx context.Context) (*SiteStats, error) {
	var cached SiteStats
	if redis.GetJSON(ctx, statsCacheKey, &cached) {
		return &cached, nil
	}

	catalog, err := s.catalogRepo.Stats()
	if err != nil {
		return nil, err
	}
	unique, err := s.visitRepo.UniqueVisitors()
	if err != nil {
		return nil, err
	}
	total, err := s.visitRepo.TotalVisits()
	if err != nil {
		return nil, err
	}

	stats := &SiteStats{
		CatalogStats: catalog,
		Visits: VisitStats{
			UniqueVisitors: unique,
			TotalVisits:    total,
		},
	}
	redis.SetJSON(ctx, statsCacheKey, stats)
	return stats, nil
}
