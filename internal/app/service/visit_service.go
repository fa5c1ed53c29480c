package service

import (
	"strings"
	"time"

	"github.com/aerovent/aerovent-backend/internal/app/repository"
	"github.com/aerovent/aerovent-backend/pkg/logger"
)

// sessionStartEvent is the only event type that touches storage. Anything
// else is acknowledged and dropped so the beacon endpoint stays cheap.
const sessionStartEvent = "session_start"

type VisitService interface {
	Track(eventType, visitorID string) error
}

type visitService struct {
	visitRepo repository.VisitRepository
}

func NewVisitService(visitRepo repository.VisitRepository) VisitService {
	return &visitService{visitRepo: visitRepo}
}

func (s *visitService) Track(eventType, visitorID string) error {
	eventType = strings.TrimSpace(eventType)
	visitorID = strings.TrimSpace(visitorID)

	if eventType == "" || visitorID == "" {
		return ErrMissingFields
	}
	if eventType != sessionStartEvent {
		return ErrIgnoredEventType
	}

	if err := s.visitRepo.RecordVisit(visitorID, time.Now().UTC()); err != nil {
		return err
	}

	logger.Debug("Session start recorded", map[string]interface{}{
		"visitor_id": visitorID,
	})
	return nil
}
