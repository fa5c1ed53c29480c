package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aerovent/aerovent-backend/internal/app/service"
	apperrors "github.com/aerovent/aerovent-backend/internal/errors"
	"github.com/aerovent/aerovent-backend/internal/middleware"
)

type TrackController struct {
	visitService service.VisitService
}

func NewTrackController(visitService service.VisitService) *TrackController {
	return &TrackController{visitService: visitService}
}

type trackRequest struct {
	EventType string `json:"eventType"`
	VisitorID string `json:"visitorId"`
}

// Track records a visitor beacon. Only session_start events persist; every
// other event type is acknowledged and dropped.
// POST /track
func (ctrl *TrackController) Track(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req trackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.TrackMissingFields, "Missing eventType or visitorId")
		return
	}

	err := ctrl.visitService.Track(req.EventType, req.VisitorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			apperrors.BadRequest(c, apperrors.TrackMissingFields, "Missing eventType or visitorId")
		case errors.Is(err, service.ErrIgnoredEventType):
			c.JSON(http.StatusOK, gin.H{"success": true})
		default:
			log.Error("Failed to record visit", err, map[string]interface{}{
				"event_type": req.EventType,
			})
			apperrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
