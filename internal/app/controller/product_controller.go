package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aerovent/aerovent-backend/internal/app/service"
	apperrors "github.com/aerovent/aerovent-backend/internal/errors"
	"github.com/aerovent/aerovent-backend/internal/middleware"
)

type ProductController struct {
	productService service.ProductService
}

func NewProductController(productService service.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

// Showcase returns the newest-first catalog feed, optionally narrowed to one
// family via ?type=drone or ?type=ews
// GET /products
func (ctrl *ProductController) Showcase(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	limit := 12
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 && v <= maxLimit {
			limit = v
		}
	}

	items, err := ctrl.productService.Showcase(c.Query("type"), limit)
	if err != nil {
		log.Error("Failed to build product showcase", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	respondOK(c, items)
}

// Stats returns catalog and visit aggregates
// GET /stats
func (ctrl *ProductController) Stats(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	stats, err := ctrl.productService.Stats(c.Request.Context())
	if err != nil {
		log.Error("Failed to compute site stats", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	respondOK(c, stats)
}
