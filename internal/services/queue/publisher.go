package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/phambaophuc/product-variations/internal/models"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

var ErrInvalidJob = errors.New("invalid generation job")

const jobMessageType = "generation_job"

func (q *QueueService) PublishJob(ctx context.Context, job *models.GenerationJob) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("job %s not published: %w", job.ID, err)
	}

	body, err := encodeJob(job)
	if err != nil {
		return err
	}

	err = q.channel.Publish(
		"",          // exchange
		q.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Type:         jobMessageType,
			MessageId:    job.ID,
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish job: %w", err)
	}

	q.logger.Info("Job published to queue",
		zap.String("job_id", job.ID),
		zap.Int("variations", job.VariationCount))
	return nil
}

func encodeJob(job *models.GenerationJob) ([]byte, error) {
	if err := checkJob(job); err != nil {
		return nil, err
	}
	body, err := json.Marshal(job)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal job: %w", err)
	}
	return body, nil
}

// decodeJob rejects messages a worker could never complete.
func decodeJob(body []byte) (*models.GenerationJob, error) {
	var job models.GenerationJob
	if err := json.Unmarshal(body, &job); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJob, err)
	}
	if err := checkJob(&job); err != nil {
		return nil, err
	}
	return &job, nil
}

func checkJob(job *models.GenerationJob) error {
	if job.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidJob)
	}
	if job.StorageKey == "" {
		return fmt.Errorf("%w: job %s has no stored original", ErrInvalidJob, job.ID)
	}
	return nil
}
