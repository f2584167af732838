package builder

import (
	"context"

	"github.com/phambaophuc/product-variations/internal/models"
	"go.uber.org/zap"
)

// MediaService is the remote side: one upload, then one URL per transformation.
type MediaService interface {
	Upload(ctx context.Context, data []byte, filename string) (string, error)
	URL(publicID string, spec models.TransformationSpec) (string, error)
}

type Generator struct {
	media  MediaService
	logger *zap.Logger
}

func NewGenerator(media MediaService, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		media:  media,
		logger: logger,
	}
}

// Generate uploads the image once and requests a URL per variation, sequentially.
// Either every variation is returned or none are.
func (g *Generator) Generate(ctx context.Context, req *models.GenerationRequest) models.GenerationResult {
	if err := Validate(req); err != nil {
		g.logger.Info("Rejected generation request", zap.Error(err))
		return models.GenerationResult{Failure: ValidationFailure(err)}
	}

	publicID, err := g.media.Upload(ctx, req.Image, req.Filename)
	if err != nil {
		return g.remoteFailure(err)
	}

	variations := make([]models.VariationResult, 0, req.VariationCount)
	for i, spec := range BuildSpecs(req) {
		url, err := g.media.URL(publicID, spec)
		if err != nil {
			return g.remoteFailure(err)
		}
		variations = append(variations, models.VariationResult{
			Index:          i,
			URL:            url,
			Transformation: spec.String(),
		})
	}

	g.logger.Info("Generated variations",
		zap.String("public_id", publicID),
		zap.Int("count", len(variations)),
		zap.String("sizing_mode", string(req.SizingMode)))

	return models.GenerationResult{
		AssetID:    publicID,
		Variations: variations,
	}
}

func (g *Generator) remoteFailure(err error) models.GenerationResult {
	g.logger.Error("Generation failed", zap.Error(err))
	return models.GenerationResult{
		Failure: &models.Failure{
			Kind:    models.FailureRemote,
			Message: "An error occurred: " + err.Error(),
		},
	}
}
