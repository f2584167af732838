package queue

import (
	"context"
	"errors"
	"sync"

	"github.com/phambaophuc/product-variations/internal/models"
)

type mockGenerator struct {
	GenerateFunc func(ctx context.Context, req *models.GenerationRequest) models.GenerationResult
	requests     []*models.GenerationRequest
}

func (m *mockGenerator) Generate(ctx context.Context, req *models.GenerationRequest) models.GenerationResult {
	m.requests = append(m.requests, req)
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, req)
	}
	return models.GenerationResult{
		AssetID:    "asset",
		Variations: []models.VariationResult{{Index: 0, URL: "https://res.cloudinary.com/demo/image/upload/asset"}},
	}
}

type mockStorage struct {
	mu          sync.Mutex
	files       map[string][]byte
	saved       []models.GenerationJob
	deleted     []string
	downloadErr error
}

func newMockStorage() *mockStorage {
	return &mockStorage{files: map[string][]byte{}}
}

func (m *mockStorage) Download(ctx context.Context, path string) ([]byte, error) {
	if m.downloadErr != nil {
		return nil, m.downloadErr
	}
	data, ok := m.files[path]
	if !ok {
		return nil, errors.New("object not found")
	}
	return data, nil
}

func (m *mockStorage) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.deleted = append(m.deleted, path)
	return nil
}

func (m *mockStorage) SaveJob(ctx context.Context, job *models.GenerationJob) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = append(m.saved, *job)
	return nil
}

func (m *mockStorage) statuses() []string {
	var out []string
	for _, j := range m.saved {
		out = append(out, j.Status)
	}
	return out
}

type mockAcknowledger struct {
	acked   int
	nacked  int
	requeue bool
}

func (m *mockAcknowledger) Ack(tag uint64, multiple bool) error {
	m.acked++
	return nil
}

func (m *mockAcknowledger) Nack(tag uint64, multiple bool, requeue bool) error {
	m.nacked++
	m.requeue = requeue
	return nil
}

func (m *mockAcknowledger) Reject(tag uint64, requeue bool) error {
	return m.Nack(tag, false, requeue)
}
