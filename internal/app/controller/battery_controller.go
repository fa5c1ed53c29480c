package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/aerovent/aerovent-backend/internal/app/repository"
	"github.com/aerovent/aerovent-backend/internal/app/service"
	apperrors "github.com/aerovent/aerovent-backend/internal/errors"
	"github.com/aerovent/aerovent-backend/internal/middleware"
)

type BatteryController struct {
	batteryService service.BatteryService
}

func NewBatteryController(batteryService service.BatteryService) *BatteryController {
	return &BatteryController{batteryService: batteryService}
}

// List returns one page of batteries
// GET /batteries
func (ctrl *BatteryController) List(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	page, limit, offset := parsePagination(c)
	filter := repository.BatteryFilter{
		Search:         c.Query("search"),
		Manufacturers:  queryList(c, "manufacturer"),
		BatteryTypes:   queryList(c, "batteryType"),
		Configurations: queryList(c, "configuration"),
		MinPrice:       queryFloat(c, "minPrice"),
		MaxPrice:       queryFloat(c, "maxPrice"),
		Limit:          limit,
		Offset:         offset,
	}

	result, err := ctrl.batteryService.List(c.Request.Context(), filter)
	if err != nil {
		log.Error("Failed to list batteries", err, map[string]interface{}{
			"page": page,
		})
		apperrors.InternalError(c, "")
		return
	}

	respondPage(c, result.Items, newPagination(page, limit, result.Total), result.Domain)
}

// Detail returns one battery with its gallery and similar items
// GET /batteries/:id
func (ctrl *BatteryController) Detail(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	detail, err := ctrl.batteryService.GetByID(id)
	if err != nil {
		info := apperrors.ParseError(err, "battery")
		if info.Code == apperrors.ResourceNotFound {
			log.Warn("Battery not found", map[string]interface{}{
				"battery_id": id,
			})
			apperrors.NotFound(c, apperrors.CatalogBatteryNotFound, info.Message)
			return
		}
		log.Error("Failed to fetch battery", err, map[string]interface{}{
			"battery_id": id,
		})
		apperrors.InternalError(c, info.Message)
		return
	}

	respondOK(c, detail)
}
