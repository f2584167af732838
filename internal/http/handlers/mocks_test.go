package handlers

import (
	"context"

	"github.com/phambaophuc/product-variations/internal/models"
)

type mockGenerator struct {
	GenerateFunc func(ctx context.Context, req *models.GenerationRequest) models.GenerationResult
	calls        []*models.GenerationRequest
}

func (m *mockGenerator) Generate(ctx context.Context, req *models.GenerationRequest) models.GenerationResult {
	m.calls = append(m.calls, req)
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, req)
	}
	return models.GenerationResult{
		AssetID: "products/abc",
		Variations: []models.VariationResult{
			{Index: 0, URL: "https://res.cloudinary.com/demo/image/upload/v1/products/abc", Transformation: "c_fill"},
		},
	}
}

type mockStore struct {
	UploadFunc func(ctx context.Context, data []byte, filename, contentType string) (string, error)
	SaveFunc   func(ctx context.Context, job *models.GenerationJob) error
	jobs       map[string]*models.GenerationJob
	deleted    []string
	saves      int
	enabled    bool
	health     map[string]string
}

func newMockStore() *mockStore {
	return &mockStore{
		jobs:    map[string]*models.GenerationJob{},
		enabled: true,
		health:  map[string]string{"redis": models.HealthHealthy, "supabase": models.HealthHealthy},
	}
}

func (m *mockStore) UploadOriginal(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, data, filename, contentType)
	}
	return "originals/" + filename, nil
}

func (m *mockStore) SaveJob(ctx context.Context, job *models.GenerationJob) error {
	m.saves++
	if m.SaveFunc != nil {
		if err := m.SaveFunc(ctx, job); err != nil {
			return err
		}
	}
	copied := *job
	m.jobs[job.ID] = &copied
	return nil
}

func (m *mockStore) Delete(ctx context.Context, path string) error {
	m.deleted = append(m.deleted, path)
	return nil
}

func (m *mockStore) GetJob(ctx context.Context, id string) (*models.GenerationJob, error) {
	return m.jobs[id], nil
}

func (m *mockStore) HealthCheck(ctx context.Context) map[string]string {
	return m.health
}

func (m *mockStore) GetJobStats(ctx context.Context) (map[string]interface{}, error) {
	return map[string]interface{}{"db_keys": int64(len(m.jobs))}, nil
}

func (m *mockStore) OriginalsEnabled() bool {
	return m.enabled
}

type mockPublisher struct {
	PublishFunc func(ctx context.Context, job *models.GenerationJob) error
	published   []*models.GenerationJob
	health      string
}

func (m *mockPublisher) PublishJob(ctx context.Context, job *models.GenerationJob) error {
	m.published = append(m.published, job)
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, job)
	}
	return nil
}

func (m *mockPublisher) GetQueueStats() (map[string]interface{}, error) {
	return map[string]interface{}{"messages": len(m.published), "name": "background_variations"}, nil
}

func (m *mockPublisher) HealthCheck() string {
	if m.health == "" {
		return models.HealthHealthy
	}
	return m.health
}

type mockMedia struct {
	status string
}

func (m *mockMedia) HealthCheck(ctx context.Context) string {
	return m.status
}
