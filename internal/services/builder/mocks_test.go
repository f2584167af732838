package builder

import (
	"context"

	"github.com/phambaophuc/product-variations/internal/models"
)

type mockMedia struct {
	UploadFunc func(ctx context.Context, data []byte, filename string) (string, error)
	URLFunc    func(publicID string, spec models.TransformationSpec) (string, error)

	uploadCalls int
	urlCalls    int
	publicIDs   []string
	specs       []models.TransformationSpec
}

func (m *mockMedia) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	m.uploadCalls++
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, data, filename)
	}
	return "products/mock-id", nil
}

func (m *mockMedia) URL(publicID string, spec models.TransformationSpec) (string, error) {
	m.urlCalls++
	m.publicIDs = append(m.publicIDs, publicID)
	m.specs = append(m.specs, spec)
	if m.URLFunc != nil {
		return m.URLFunc(publicID, spec)
	}
	return "https://res.cloudinary.com/demo/image/upload/" + spec.String() + "/" + publicID, nil
}
