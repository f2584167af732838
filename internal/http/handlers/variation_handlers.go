package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/phambaophuc/product-variations/internal/config"
	"github.com/phambaophuc/product-variations/internal/models"
	"github.com/phambaophuc/product-variations/internal/services/builder"
	"github.com/phambaophuc/product-variations/internal/services/processor"
	"go.uber.org/zap"
)

type Generator interface {
	Generate(ctx context.Context, req *models.GenerationRequest) models.GenerationResult
}

type JobStore interface {
	UploadOriginal(ctx context.Context, data []byte, filename, contentType string) (string, error)
	SaveJob(ctx context.Context, job *models.GenerationJob) error
	Delete(ctx context.Context, path string) error
	GetJob(ctx context.Context, id string) (*models.GenerationJob, error)
	HealthCheck(ctx context.Context) map[string]string
	GetJobStats(ctx context.Context) (map[string]interface{}, error)
	OriginalsEnabled() bool
}

type JobPublisher interface {
	PublishJob(ctx context.Context, job *models.GenerationJob) error
	HealthCheck() string
	GetQueueStats() (map[string]interface{}, error)
}

type MediaHealth interface {
	HealthCheck(ctx context.Context) string
}

const (
	imageParamKey        = "image"
	asyncUnavailableText = "Async generation is not available"
	healthCheckTimeout   = 5 * time.Second
)

type VariationHandler struct {
	generator Generator
	processor *processor.ImageProcessor
	storage   JobStore
	queue     JobPublisher
	media     MediaHealth
	logger    *zap.Logger
	config    *config.Config
}

// NewVariationHandler builds the handler. storage, queue and media may be nil; the
// endpoints that need them then report the dependency as unavailable.
func NewVariationHandler(
	generator Generator,
	processor *processor.ImageProcessor,
	storage JobStore,
	queue JobPublisher,
	media MediaHealth,
	logger *zap.Logger,
	config *config.Config,
) *VariationHandler {
	return &VariationHandler{
		generator: generator,
		processor: processor,
		storage:   storage,
		queue:     queue,
		media:     media,
		logger:    logger,
		config:    config,
	}
}

// === MAIN API ENDPOINTS ===

func (h *VariationHandler) GenerateVariations(c *gin.Context) {
	req, err := h.parseGenerationRequest(c)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result := h.generator.Generate(c.Request.Context(), req)
	if !result.OK() {
		h.respondError(c, statusForFailure(result.Failure), result.Failure.Message)
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data: models.VariationsResponse{
			AssetID:    result.AssetID,
			URLs:       result.URLs(),
			Variations: result.Variations,
		},
	})
}

func (h *VariationHandler) SubmitJob(c *gin.Context) {
	if !h.asyncAvailable() {
		h.respondError(c, http.StatusServiceUnavailable, asyncUnavailableText)
		return
	}

	req, err := h.parseGenerationRequest(c)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := builder.Validate(req); err != nil {
		h.respondError(c, http.StatusBadRequest, builder.ValidationFailure(err).Message)
		return
	}

	ctx := c.Request.Context()

	key, err := h.storage.UploadOriginal(ctx, req.Image, req.Filename, req.ContentType)
	if err != nil {
		h.logger.Error("Failed to store original", zap.Error(err))
		h.respondError(c, http.StatusBadGateway, "An error occurred: "+err.Error())
		return
	}

	job := models.NewGenerationJob(uuid.New().String(), key, req)
	if err := h.storage.SaveJob(ctx, job); err != nil {
		h.logger.Error("Failed to save job", zap.String("job_id", job.ID), zap.Error(err))
		if err := h.storage.Delete(context.WithoutCancel(ctx), key); err != nil {
			h.logger.Warn("Failed to delete orphaned original",
				zap.String("storage_key", key),
				zap.Error(err))
		}
		h.respondError(c, http.StatusInternalServerError, "Failed to create job")
		return
	}

	if err := h.queue.PublishJob(ctx, job); err != nil {
		h.logger.Error("Failed to publish job", zap.String("job_id", job.ID), zap.Error(err))
		job.Apply(models.GenerationResult{Failure: &models.Failure{
			Kind:    models.FailureRemote,
			Message: "An error occurred: " + err.Error(),
		}})
		if err := h.storage.SaveJob(ctx, job); err != nil {
			h.logger.Warn("Failed to mark job failed", zap.String("job_id", job.ID), zap.Error(err))
		}
		h.respondError(c, http.StatusBadGateway, "Failed to queue job")
		return
	}

	c.JSON(http.StatusAccepted, models.APIResponse{
		Success: true,
		Data: models.JobAccepted{
			JobID:  job.ID,
			Status: job.Status,
		},
	})
}

func (h *VariationHandler) GetJob(c *gin.Context) {
	if h.storage == nil {
		h.respondError(c, http.StatusServiceUnavailable, asyncUnavailableText)
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		h.respondError(c, http.StatusBadRequest, "invalid job id")
		return
	}

	job, err := h.storage.GetJob(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("Failed to load job", zap.String("job_id", id), zap.Error(err))
		h.respondError(c, http.StatusInternalServerError, "Failed to load job")
		return
	}
	if job == nil {
		h.respondError(c, http.StatusNotFound, "job not found")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    job,
	})
}

func (h *VariationHandler) AspectRatios(c *gin.Context) {
	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    models.AspectRatioOptions,
	})
}

// HealthCheck
func (h *VariationHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	services := map[string]string{
		"cloudinary": models.HealthNotConfigured,
		"redis":      models.HealthNotConfigured,
		"supabase":   models.HealthNotConfigured,
		"queue":      models.HealthNotConfigured,
	}
	if h.media != nil {
		services["cloudinary"] = h.media.HealthCheck(ctx)
	}
	if h.storage != nil {
		for name, status := range h.storage.HealthCheck(ctx) {
			services[name] = status
		}
	}
	if h.queue != nil {
		services["queue"] = h.queue.HealthCheck()
	}

	overall := models.OverallHealth(services)
	statusCode := http.StatusOK
	if overall == models.HealthUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, models.APIResponse{
		Success: overall == models.HealthHealthy,
		Data: models.HealthCheck{
			Status:    overall,
			Timestamp: time.Now(),
			Services:  services,
		},
	})
}

func (h *VariationHandler) GetStats(c *gin.Context) {
	stats := map[string]interface{}{
		"timestamp": time.Now(),
	}

	if h.queue != nil {
		queueStats, err := h.queue.GetQueueStats()
		if err != nil {
			h.logger.Error("Failed to get queue stats", zap.Error(err))
		}
		stats["queue"] = queueStats
	}

	if h.storage != nil {
		jobStats, err := h.storage.GetJobStats(c.Request.Context())
		if err != nil {
			h.logger.Error("Failed to get job store stats", zap.Error(err))
		}
		stats["jobs"] = jobStats
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    stats,
	})
}

func (h *VariationHandler) asyncAvailable() bool {
	return h.queue != nil && h.storage != nil && h.storage.OriginalsEnabled()
}
