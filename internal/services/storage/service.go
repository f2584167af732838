package storage

import (
	"errors"
	"time"

	"github.com/phambaophuc/product-variations/internal/config"
	"github.com/redis/go-redis/v9"
	storage_go "github.com/supabase-community/storage-go"
)

var ErrStorageNotConfigured = errors.New("storage not configured")

const (
	JobKeyPrefix    = "variation_job:"
	OriginalsPrefix = "originals"
)

type StorageService struct {
	sbClient    *storage_go.Client
	redisClient *redis.Client
	bucket      string
	jobTTL      time.Duration
}

// NewStorageService wires Redis always and Supabase only when it is fully configured.
func NewStorageService(cfg *config.Config) (*StorageService, error) {
	var sbClient *storage_go.Client
	if cfg.Supabase.Enabled() {
		sbClient = storage_go.NewClient(cfg.Supabase.URL+"/storage/v1", cfg.Supabase.KEY, nil)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	return &StorageService{
		sbClient:    sbClient,
		redisClient: redisClient,
		bucket:      cfg.Supabase.BUCKET,
		jobTTL:      cfg.Storage.JobTTL,
	}, nil
}

func (s *StorageService) Close() error {
	return s.redisClient.Close()
}
