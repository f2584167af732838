package storage

import (
	"context"

	"github.com/phambaophuc/product-variations/internal/models"
	storage_go "github.com/supabase-community/storage-go"
)

// HealthCheck checks Redis + Supabase
func (s *StorageService) HealthCheck(ctx context.Context) map[string]string {
	status := make(map[string]string)

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		status["redis"] = models.HealthUnhealthy + ": " + err.Error()
	} else {
		status["redis"] = models.HealthHealthy
	}

	if s.sbClient == nil {
		status["supabase"] = models.HealthNotConfigured
		return status
	}

	if _, err := s.sbClient.ListFiles(s.bucket, "", storage_go.FileSearchOptions{}); err != nil {
		status["supabase"] = models.HealthUnhealthy + ": " + err.Error()
	} else {
		status["supabase"] = models.HealthHealthy
	}

	return status
}

func (s *StorageService) OriginalsEnabled() bool {
	return s.sbClient != nil
}
