package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aerovent/aerovent-backend/internal/app/repository"
	"github.com/aerovent/aerovent-backend/internal/app/service"
	apperrors "github.com/aerovent/aerovent-backend/internal/errors"
	"github.com/aerovent/aerovent-backend/internal/middleware"
)

type UAVController struct {
	droneService service.DroneService
}

func NewUAVController(droneService service.DroneService) *UAVController {
	return &UAVController{droneService: droneService}
}

// List returns one page of the drone catalog
// GET /uav
func (ctrl *UAVController) List(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	page, limit, offset := parsePagination(c)
	filter := repository.DroneFilter{
		Search:             c.Query("search"),
		Applications:       queryList(c, "application"),
		Connections:        queryList(c, "connection"),
		ProductionStatuses: queryList(c, "productionStatus"),
		MinPrice:           queryFloat(c, "minPrice"),
		MaxPrice:           queryFloat(c, "maxPrice"),
		MinSize:            queryInt(c, "minSize"),
		MaxSize:            queryInt(c, "maxSize"),
		Limit:              limit,
		Offset:             offset,
	}

	result, err := ctrl.droneService.List(c.Request.Context(), filter)
	if err != nil {
		log.Error("Failed to list drones", err, map[string]interface{}{
			"page": page,
		})
		apperrors.InternalError(c, "")
		return
	}

	respondPage(c, result.Items, newPagination(page, limit, result.Total), result.Domain)
}

// Detail returns one drone with its gallery, similar items and configurator
// option groups
// GET /uav/:id
func (ctrl *UAVController) Detail(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	detail, err := ctrl.droneService.GetByID(id)
	if err != nil {
		info := apperrors.ParseError(err, "drone")
		if info.Code == apperrors.ResourceNotFound {
			log.Warn("Drone not found", map[string]interface{}{
				"drone_id": id,
			})
			apperrors.NotFound(c, apperrors.CatalogDroneNotFound, info.Message)
			return
		}
		log.Error("Failed to fetch drone", err, map[string]interface{}{
			"drone_id": id,
		})
		apperrors.InternalError(c, info.Message)
		return
	}

	respondOK(c, detail)
}

// Quote prices a configurator selection and renders the order message
// POST /uav/:id/quote
func (ctrl *UAVController) Quote(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	var req service.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Malformed quote request", map[string]interface{}{
			"drone_id": id,
			"error":    err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Невірний формат запиту")
		return
	}

	quote, err := ctrl.droneService.Quote(id, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidOption) {
			apperrors.RespondWithError(c, http.StatusUnprocessableEntity, apperrors.CatalogInvalidOption, "Обрана опція недоступна для цього дрона")
			return
		}
		info := apperrors.ParseError(err, "drone")
		if info.Code == apperrors.ResourceNotFound {
			apperrors.NotFound(c, apperrors.CatalogDroneNotFound, info.Message)
			return
		}
		log.Error("Failed to build quote", err, map[string]interface{}{
			"drone_id": id,
		})
		apperrors.InternalError(c, info.Message)
		return
	}

	respondOK(c, quote)
}
