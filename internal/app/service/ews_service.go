package service

import (
	"context"

	"github.com/aerovent/aerovent-backend/internal/app/model"
	"github.com/aerovent/aerovent-backend/internal/app/repository"
	"github.com/aerovent/aerovent-backend/pkg/redis"
)

const ewsDomainCacheKey = "catalog:ews:domain"

type EWSListResult struct {
	Items  []model.EWS
	Total  int64
	Domain repository.EWSFilterDomain
}

// EWSDetail is the detail-page payload for one electronic-warfare system.
type EWSDetail struct {
	model.EWS
	Similar []model.EWS `json:"similar"`
}

type EWSService interface {
	List(ctx context.Context, filter repository.EWSFilter) (*EWSListResult, error)
	GetByID(id string) (*EWSDetail, error)
	FilterDomain(ctx context.Context) (repository.EWSFilterDomain, error)
}

type ewsService struct {
	ewsRepo repository.EWSRepository
}

func NewEWSService(ewsRepo repository.EWSRepository) EWSService {
	return &ewsService{ewsRepo: ewsRepo}
}

func (s *ewsService) List(ctx context.Context, filter repository.EWSFilter) (*EWSListResult, error) {
	total, err := s.ewsRepo.Count(filter)
	if err != nil {
		return nil, err
	}

	systems, err := s.ewsRepo.FindWithFilter(filter)
	if err != nil {
		return nil, err
	}
	for i := range systems {
		systems[i].GalleryList = systems[i].Gallery()
	}

	domain, err := s.FilterDomain(ctx)
	if err != nil {
		return nil, err
	}

	return &EWSListResult{Items: systems, Total: total, Domain: domain}, nil
}

func (s *ewsService) GetByID(id string) (*EWSDetail, error) {
	system, err := s.ewsRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	similar, err := s.ewsRepo.FindSimilar(system.ID, 4)
	if err != nil {
		return nil, err
	}
	for i := range similar {
		similar[i].GalleryList = similar[i].Gallery()
	}

	system.GalleryList = system.Gallery()
	return &EWSDetail{
		EWS:     *system,
		Similar: similar,
	}, nil
}

func (s *ewsService) FilterDomain(ctx context.Context) (repository.EWSFilterDomain, error) {
	var domain repository.EWSFilterDomain
	if redis.GetJSON(ctx, ewsDomainCacheKey, &domain) {
		return domain, nil
	}

	domain, err := s.ewsRepo.FilterDomain()
	if err != nil {
		return domain, err
	}
	redis.SetJSON(ctx, ewsDomainCacheKey, domain)
	return domain, nil
}
