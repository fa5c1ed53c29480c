package router

import (
	"github.com/gin-gonic/gin"

	"github.com/aerovent/aerovent-backend/config"
	"github.com/aerovent/aerovent-backend/internal/app/controller"
	"github.com/aerovent/aerovent-backend/internal/middleware"
)

// Shared-cache lifetimes for catalog reads, in seconds
const (
	catalogMaxAge               = 300
	catalogStaleWhileRevalidate = 600
)

type Router struct {
	uavController          *controller.UAVController
	ewsController          *controller.EWSController
	detectorController     *controller.DetectorController
	batteryController      *controller.BatteryController
	productController      *controller.ProductController
	consultationController *controller.ConsultationController
	trackController        *controller.TrackController
	config                 *config.Config
}

func NewRouter(
	uavController *controller.UAVController,
	ewsController *controller.EWSController,
	detectorController *controller.DetectorController,
	batteryController *controller.BatteryController,
	productController *controller.ProductController,
	consultationController *controller.ConsultationController,
	trackController *controller.TrackController,
	cfg *config.Config,
) *Router {
	return &Router{
		uavController:          uavController,
		ewsController:          ewsController,
		detectorController:     detectorController,
		batteryController:      batteryController,
		productController:      productController,
		consultationController: consultationController,
		trackController:        trackController,
		config:                 cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "AEROVENT API is running",
		})
	})

	cached := middleware.CacheControl(catalogMaxAge, catalogStaleWhileRevalidate)

	router.GET("/products", cached, r.productController.Showcase)
	router.GET("/stats", cached, r.productController.Stats)

	uav := router.Group("/uav")
	{
		uav.GET("", cached, r.uavController.List)
		uav.GET("/:id", cached, r.uavController.Detail)
		uav.POST("/:id/quote", r.uavController.Quote)
	}

	ews := router.Group("/ews")
	{
		ews.GET("", cached, r.ewsController.List)
		ews.GET("/:id", cached, r.ewsController.Detail)
	}

	detectors := router.Group("/drone_detectors")
	{
		detectors.GET("", cached, r.detectorController.List)
		detectors.GET("/:id", cached, r.detectorController.Detail)
	}

	batteries := router.Group("/batteries")
	{
		batteries.GET("", cached, r.batteryController.List)
		batteries.GET("/:id", cached, r.batteryController.Detail)
	}

	router.POST("/consultation", r.consultationController.Submit)
	router.POST("/track", r.trackController.Track)

	return router
}
