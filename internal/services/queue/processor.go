package queue

import (
	"context"
	"time"

	"github.com/phambaophuc/product-variations/internal/models"
	"go.uber.org/zap"
)

// processJob reports whether the job reached a terminal state. A run cut short by
// ctx is put back to pending with its original kept, so the message can be requeued.
// Job state is persisted on a context detached from cancellation.
func (q *QueueService) processJob(ctx context.Context, job *models.GenerationJob) bool {
	persistCtx := context.WithoutCancel(ctx)

	job.Status = models.StatusProcessing
	job.UpdatedAt = time.Now()
	q.saveJob(persistCtx, job)

	image, err := q.storage.Download(ctx, job.StorageKey)
	if ctx.Err() != nil {
		q.interrupt(persistCtx, job)
		return false
	}
	if err != nil {
		job.Apply(models.GenerationResult{Failure: &models.Failure{
			Kind:    models.FailureRemote,
			Message: "An error occurred: " + err.Error(),
		}})
		q.logger.Error("Job processing failed", zap.String("job_id", job.ID), zap.Error(err))
		q.saveJob(persistCtx, job)
		return true
	}

	result := q.generator.Generate(ctx, job.Request(image))
	if ctx.Err() != nil {
		q.interrupt(persistCtx, job)
		return false
	}
	job.Apply(result)

	if result.OK() {
		q.logger.Info("Job completed successfully",
			zap.String("job_id", job.ID),
			zap.Int("variations", len(result.Variations)))
	} else {
		q.logger.Error("Job processing failed",
			zap.String("job_id", job.ID),
			zap.String("error", result.Failure.Message))
	}

	q.saveJob(persistCtx, job)

	if err := q.storage.Delete(persistCtx, job.StorageKey); err != nil {
		q.logger.Warn("Failed to delete original",
			zap.String("job_id", job.ID),
			zap.String("storage_key", job.StorageKey),
			zap.Error(err))
	}
	return true
}

func (q *QueueService) interrupt(ctx context.Context, job *models.GenerationJob) {
	job.Status = models.StatusPending
	job.UpdatedAt = time.Now()
	q.logger.Warn("Job interrupted, returning to queue", zap.String("job_id", job.ID))
	q.saveJob(ctx, job)
}

func (q *QueueService) saveJob(ctx context.Context, job *models.GenerationJob) {
	if err := q.storage.SaveJob(ctx, job); err != nil {
		q.logger.Error("Failed to save job",
			zap.String("job_id", job.ID),
			zap.String("status", job.Status),
			zap.Error(err))
	}
}
