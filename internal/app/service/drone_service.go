package service

import (
	"context"

	"github.com/aerovent/aerovent-backend/internal/app/model"
	"github.com/aerovent/aerovent-backend/internal/app/repository"
	"github.com/aerovent/aerovent-backend/pkg/logger"
	"github.com/aerovent/aerovent-backend/pkg/redis"
)

const droneDomainCacheKey = "catalog:drones:domain"

// DroneListResult is one page of the drone catalog plus the full filter
// domain the storefront renders its filter panel from.
type DroneListResult struct {
	Items  []model.Drone
	Total  int64
	Domain repository.DroneFilterDomain
}

// DroneDetail is the full detail-page payload for one drone.
type DroneDetail struct {
	model.Drone
	Similar      []model.Drone `json:"similar"`
	OptionGroups []OptionGroup `json:"optionGroups"`
	TotalPrice   float64       `json:"totalPrice"`
}

type DroneService interface {
	List(ctx context.Context, filter repository.DroneFilter) (*DroneListResult, error)
	GetByID(id string) (*DroneDetail, error)
	Quote(id string, req QuoteRequest) (*Quote, error)
	FilterDomain(ctx context.Context) (repository.DroneFilterDomain, error)
}

type droneService struct {
	droneRepo  repository.DroneRepository
	optionRepo repository.OptionRepository
}

func NewDroneService(droneRepo repository.DroneRepository, optionRepo repository.OptionRepository) DroneService {
	return &droneService{droneRepo: droneRepo, optionRepo: optionRepo}
}

func (s *droneService) List(ctx context.Context, filter repository.DroneFilter) (*DroneListResult, error) {
	logger.Debug("Listing drones", map[string]interface{}{
		"limit":  filter.Limit,
		"offset": filter.Offset,
	})

	total, err := s.droneRepo.Count(filter)
	if err != nil {
		return nil, err
	}

	drones, err := s.droneRepo.FindWithFilter(filter)
	if err != nil {
		return nil, err
	}
	for i := range drones {
		drones[i].Price = drones[i].DisplayPrice
		drones[i].GalleryList = drones[i].Gallery()
	}

	domain, err := s.FilterDomain(ctx)
	if err != nil {
		return nil, err
	}

	return &DroneListResult{Items: drones, Total: total, Domain: domain}, nil
}

func (s *droneService) GetByID(id string) (*DroneDetail, error) {
	drone, err := s.droneRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	similar, err := s.droneRepo.FindSimilar(drone.Application, drone.ID, 4)
	if err != nil {
		return nil, err
	}
	for i := range similar {
		similar[i].Price = similar[i].DisplayPrice
		similar[i].GalleryList = similar[i].Gallery()
	}

	groups, err := resolveOptionGroups(s.optionRepo, drone)
	if err != nil {
		return nil, err
	}

	drone.GalleryList = drone.Gallery()
	detail := &DroneDetail{
		Drone:        *drone,
		Similar:      similar,
		OptionGroups: groups,
		TotalPrice:   totalPrice(drone.Price, groups, nil),
	}

	logger.Debug("Drone detail assembled", map[string]interface{}{
		"drone_id":      drone.ID,
		"similar_count": len(similar),
		"group_count":   len(groups),
	})
	return detail, nil
}

func (s *droneService) Quote(id string, req QuoteRequest) (*Quote, error) {
	drone, err := s.droneRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return buildQuote(s.optionRepo, drone, req)
}

// FilterDomain serves the drone filter domain from cache when available.
// The domain only changes when the catalog does, so a short TTL is plenty.
func (s *droneService) FilterDomain(ctx context.Context) (repository.DroneFilterDomain, error) {
	var domain repository.DroneFilterDomain
	if redis.GetJSON(ctx, droneDomainCacheKey, &domain) {
		return domain, nil
	}

	domain, err := s.droneRepo.FilterDomain()
	if err != nil {
		return domain, err
	}
	redis.SetJSON(ctx, droneDomainCacheKey, domain)
	return domain, nil
}
