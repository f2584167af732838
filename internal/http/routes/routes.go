package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/phambaophuc/product-variations/internal/http/handlers"
	"github.com/phambaophuc/product-variations/internal/http/middleware"
	"github.com/phambaophuc/product-variations/internal/http/templates"
	"go.uber.org/zap"
)

type Router struct {
	variationHandler *handlers.VariationHandler
	logger           *zap.Logger
	maxUploadSize    int64
}

func NewRouter(
	variationHandler *handlers.VariationHandler,
	logger *zap.Logger,
	maxUploadSize int64,
) *Router {
	return &Router{
		variationHandler: variationHandler,
		logger:           logger,
		maxUploadSize:    maxUploadSize,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	router := gin.New()
	if r.maxUploadSize > 0 {
		router.MaxMultipartMemory = r.maxUploadSize
	}
	router.SetHTMLTemplate(templates.Load())

	router.Use(middleware.Logger(r.logger))
	router.Use(middleware.ErrorHandler(r.logger))
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())

	router.GET("/", r.variationHandler.Index)
	router.POST("/generate", r.variationHandler.GenerateForm)

	// API version 1
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", r.variationHandler.HealthCheck)
		v1.GET("/aspect-ratios", r.variationHandler.AspectRatios)
		v1.GET("/stats", r.variationHandler.GetStats)

		variations := v1.Group("/variations")
		{
			variations.POST("", middleware.RequireMultipart(), r.variationHandler.GenerateVariations)
			variations.POST("/jobs", middleware.RequireMultipart(), r.variationHandler.SubmitJob)
			variations.GET("/jobs/:id", r.variationHandler.GetJob)
		}
	}

	return router
}
