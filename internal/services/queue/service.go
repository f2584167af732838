package queue

import (
	"context"
	"fmt"

	"github.com/phambaophuc/product-variations/internal/models"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

// Generator runs one generation request end to end.
type Generator interface {
	Generate(ctx context.Context, req *models.GenerationRequest) models.GenerationResult
}

// JobStorage is what a worker needs: the mirrored original and the job record.
type JobStorage interface {
	Download(ctx context.Context, path string) ([]byte, error)
	Delete(ctx context.Context, path string) error
	SaveJob(ctx context.Context, job *models.GenerationJob) error
}

type QueueService struct {
	conn      *amqp.Connection
	channel   *amqp.Channel
	logger    *zap.Logger
	queueName string
	generator Generator
	storage   JobStorage
	workers   int32
}

func NewQueueService(
	rabbitmqURL string,
	queueName string,
	generator Generator,
	storage JobStorage,
	logger *zap.Logger,
) (*QueueService, error) {
	conn, err := amqp.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	// One unacked job per consumer keeps workers sequential.
	if err := channel.Qos(1, 0, false); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to set qos: %w", err)
	}

	_, err = channel.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	return &QueueService{
		conn:      conn,
		channel:   channel,
		logger:    logger,
		queueName: queueName,
		generator: generator,
		storage:   storage,
	}, nil
}

// Close closes the queue connection
func (q *QueueService) Close() error {
	if q.channel != nil {
		q.channel.Close()
	}
	if q.conn != nil {
		q.conn.Close()
	}
	return nil
}
