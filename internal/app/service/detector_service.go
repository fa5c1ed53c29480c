package service

import (
	"github.com/aerovent/aerovent-backend/internal/app/model"
	"github.com/aerovent/aerovent-backend/internal/app/repository"
)

type DetectorListResult struct {
	Items []model.DroneDetector
	Total int64
}

type DetectorDetail struct {
	model.DroneDetector
	Similar []model.DroneDetector `json:"similar"`
}

type DetectorService interface {
	List(filter repository.DetectorFilter) (*DetectorListResult, error)
	GetByID(id string) (*DetectorDetail, error)
}

type detectorService struct {
	detectorRepo repository.DetectorRepository
}

func NewDetectorService(detectorRepo repository.DetectorRepository) DetectorService {
	return &detectorService{detectorRepo: detectorRepo}
}

func (s *detectorService) List(filter repository.DetectorFilter) (*DetectorListResult, error) {
	total, err := s.detectorRepo.Count(filter)
	if err != nil {
		return nil, err
	}

	detectors, err := s.detectorRepo.FindWithFilter(filter)
	if err != nil {
		return nil, err
	}
	for i := range detectors {
		detectors[i].GalleryList = detectors[i].Gallery()
	}

	return &DetectorListResult{Items: detectors, Total: total}, nil
}

func (s *detectorService) GetByID(id string) (*DetectorDetail, error) {
	detector, err := s.detectorRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	similar, err := s.detectorRepo.FindSimilar(detector.ID, 4)
	if err != nil {
		return nil, err
	}
	for i := range similar {
		similar[i].GalleryList = similar[i].Gallery()
	}

	detector.GalleryList = detector.Gallery()
	return &DetectorDetail{
		DroneDetector: *detector,
		Similar:       similar,
	}, nil
}
