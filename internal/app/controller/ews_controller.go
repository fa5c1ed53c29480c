package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/aerovent/aerovent-backend/internal/app/repository"
	"github.com/aerovent/aerovent-backend/internal/app/service"
	apperrors "github.com/aerovent/aerovent-backend/internal/errors"
	"github.com/aerovent/aerovent-backend/internal/middleware"
)

type EWSController struct {
	ewsService service.EWSService
}

func NewEWSController(ewsService service.EWSService) *EWSController {
	return &EWSController{ewsService: ewsService}
}

// List returns one page of electronic-warfare systems
// GET /ews
func (ctrl *EWSController) List(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	page, limit, offset := parsePagination(c)
	filter := repository.EWSFilter{
		Search:             c.Query("search"),
		ProductionStatuses: queryList(c, "productionStatus"),
		MinPrice:           queryFloat(c, "minPrice"),
		MaxPrice:           queryFloat(c, "maxPrice"),
		Limit:              limit,
		Offset:             offset,
	}

	result, err := ctrl.ewsService.List(c.Request.Context(), filter)
	if err != nil {
		log.Error("Failed to list EW systems", err, map[string]interface{}{
			"page": page,
		})
		apperrors.InternalError(c, "")
		return
	}

	respondPage(c, result.Items, newPagination(page, limit, result.Total), result.Domain)
}

// Detail returns one system with its gallery and similar items
// GET /ews/:id
func (ctrl *EWSController) Detail(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	detail, err := ctrl.ewsService.GetByID(id)
	if err != nil {
		info := apperrors.ParseError(err, "ews")
		if info.Code == apperrors.ResourceNotFound {
			log.Warn("EW system not found", map[string]interface{}{
				"ews_id": id,
			})
			apperrors.NotFound(c, apperrors.CatalogEwsNotFound, info.Message)
			return
		}
		log.Error("Failed to fetch EW system", err, map[string]interface{}{
			"ews_id": id,
		})
		apperrors.InternalError(c, info.Message)
		return
	}

	respondOK(c, detail)
}
