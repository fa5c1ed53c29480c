package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aerovent/aerovent-backend/internal/app/service"
	apperrors "github.com/aerovent/aerovent-backend/internal/errors"
	"github.com/aerovent/aerovent-backend/internal/middleware"
)

type ConsultationController struct {
	consultationService service.ConsultationService
}

func NewConsultationController(consultationService service.ConsultationService) *ConsultationController {
	return &ConsultationController{consultationService: consultationService}
}

// Submit captures a consultation lead
// POST /consultation
func (ctrl *ConsultationController) Submit(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var input service.ConsultationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		log.Warn("Malformed consultation payload", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationRequired, "Заповніть усі обовʼязкові поля")
		return
	}

	request, err := ctrl.consultationService.Submit(input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			apperrors.BadRequest(c, apperrors.ValidationRequired, "Заповніть усі обовʼязкові поля")
		case errors.Is(err, service.ErrInvalidPhone):
			apperrors.BadRequest(c, apperrors.ValidationInvalidPhone, "Невірний формат телефону. Приклад: +380XXXXXXXXX")
		case errors.Is(err, service.ErrInvalidMethod):
			apperrors.BadRequest(c, apperrors.ValidationInvalidMethod, "Невірний спосіб звʼязку")
		default:
			log.Error("Failed to store consultation request", err, nil)
			apperrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"id":     request.ID,
			"status": request.Status,
		},
	})
}
