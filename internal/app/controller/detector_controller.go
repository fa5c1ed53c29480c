package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/aerovent/aerovent-backend/internal/app/repository"
	"github.com/aerovent/aerovent-backend/internal/app/service"
	apperrors "github.com/aerovent/aerovent-backend/internal/errors"
	"github.com/aerovent/aerovent-backend/internal/middleware"
)

type DetectorController struct {
	detectorService service.DetectorService
}

func NewDetectorController(detectorService service.DetectorService) *DetectorController {
	return &DetectorController{detectorService: detectorService}
}

// List returns one page of drone detectors
// GET /drone_detectors
func (ctrl *DetectorController) List(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	page, limit, offset := parsePagination(c)
	filter := repository.DetectorFilter{
		Search: c.Query("search"),
		Limit:  limit,
		Offset: offset,
	}

	result, err := ctrl.detectorService.List(filter)
	if err != nil {
		log.Error("Failed to list drone detectors", err, map[string]interface{}{
			"page": page,
		})
		apperrors.InternalError(c, "")
		return
	}

	respondPage(c, result.Items, newPagination(page, limit, result.Total), nil)
}

// Detail returns one detector with its gallery and similar items
// GET /drone_detectors/:id
func (ctrl *DetectorController) Detail(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	detail, err := ctrl.detectorService.GetByID(id)
	if err != nil {
		info := apperrors.ParseError(err, "detector")
		if info.Code == apperrors.ResourceNotFound {
			log.Warn("Drone detector not found", map[string]interface{}{
				"detector_id": id,
			})
			apperrors.NotFound(c, apperrors.CatalogDetectorNotFound, info.Message)
			return
		}
		log.Error("Failed to fetch drone detector", err, map[string]interface{}{
			"detector_id": id,
		})
		apperrors.InternalError(c, info.Message)
		return
	}

	respondOK(c, detail)
}
