package queue

import (
	"fmt"
	"sync/atomic"

	"github.com/phambaophuc/product-variations/internal/models"
)

// GetQueueStats reports broker-side depth alongside the workers running in this process.
func (q *QueueService) GetQueueStats() (map[string]interface{}, error) {
	queueInfo, err := q.channel.QueueInspect(q.queueName)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect queue: %w", err)
	}

	return map[string]interface{}{
		"name":          queueInfo.Name,
		"messages":      queueInfo.Messages,
		"consumers":     queueInfo.Consumers,
		"local_workers": q.ActiveWorkers(),
	}, nil
}

func (q *QueueService) ActiveWorkers() int {
	return int(atomic.LoadInt32(&q.workers))
}

// HealthCheck checks if RabbitMQ is available
func (q *QueueService) HealthCheck() string {
	if q.conn == nil || q.conn.IsClosed() {
		return models.HealthUnhealthy + ": connection closed"
	}

	if q.channel == nil {
		return models.HealthUnhealthy + ": channel not available"
	}

	return models.HealthHealthy
}
