package service

import (
	"context"

	"github.com/aerovent/aerovent-backend/internal/app/model"
	"github.com/aerovent/aerovent-backend/internal/app/repository"
	"github.com/aerovent/aerovent-backend/pkg/redis"
)

const batteryDomainCacheKey = "catalog:batteries:domain"

type BatteryListResult struct {
	Items  []model.Battery
	Total  int64
	Domain repository.BatteryFilterDomain
}

type BatteryDetail struct {
	model.Battery
	Similar []model.Battery `json:"similar"`
}

type BatteryService interface {
	List(ctx context.Context, filter repository.BatteryFilter) (*BatteryListResult, error)
	GetByID(id string) (*BatteryDetail, error)
	FilterDomain(ctx context.Context) (repository.BatteryFilterDomain, error)
}

type batteryService struct {
	batteryRepo repository.BatteryRepository
}

func NewBatteryService(batteryRepo repository.BatteryRepository) BatteryService {
	return &batteryService{batteryRepo: batteryRepo}
}

func (s *batteryService) List(ctx context.Context, filter repository.BatteryFilter) (*BatteryListResult, error) {
	total, err := s.batteryRepo.Count(filter)
	if err != nil {
		return nil, err
	}

	batteries, err := s.batteryRepo.FindWithFilter(filter)
	if err != nil {
		return nil, err
	}
	for i := range batteries {
		batteries[i].GalleryList = batteries[i].Gallery()
	}

	domain, err := s.FilterDomain(ctx)
	if err != nil {
		return nil, err
	}

	return &BatteryListResult{Items: batteries, Total: total, Domain: domain}, nil
}

func (s *batteryService) GetByID(id string) (*BatteryDetail, error) {
	battery, err := s.batteryRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	similar, err := s.batteryRepo.FindSimilar(battery.ID, 4)
	if err != nil {
		return nil, err
	}
	for i := range similar {
		similar[i].GalleryList = similar[i].Gallery()
	}

	battery.GalleryList = battery.Gallery()
	return &BatteryDetail{
		Battery: *battery,
		Similar: similar,
	}, nil
}

func (s *batteryService) FilterDomain(ctx context.Context) (repository.BatteryFilterDomain, error) {
	var domain repository.BatteryFilterDomain
	if redis.GetJSON(ctx, batteryDomainCacheKey, &domain) {
		return domain, nil
	}

	domain, err := s.batteryRepo.FilterDomain()
	if err != nil {
		return domain, err
	}
	redis.SetJSON(ctx, batteryDomainCacheKey, domain)
	return domain, nil
}
