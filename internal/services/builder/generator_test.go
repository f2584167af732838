package builder

import (
	"context"
	"errors"
	"testing"

	"github.com/phambaophuc/product-variations/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("one upload and one URL per variation", func(t *testing.T) {
		media := &mockMedia{}
		gen := NewGenerator(media, nil)

		result := gen.Generate(ctx, aspectRequest("sunny beach", "1:1", 4))

		require.True(t, result.OK())
		assert.Equal(t, 1, media.uploadCalls)
		assert.Equal(t, 4, media.urlCalls)
		assert.Equal(t, "products/mock-id", result.AssetID)
		require.Len(t, result.Variations, 4)
		for i, v := range result.Variations {
			assert.Equal(t, i, v.Index)
			assert.Equal(t, "ar_1:1,c_fill,e_gen_background_replace:prompt_sunny_beach,g_auto,h_1500", v.Transformation)
			assert.Contains(t, v.URL, "products/mock-id")
		}
		for _, id := range media.publicIDs {
			assert.Equal(t, "products/mock-id", id)
		}
	})

	t.Run("upload receives image bytes and filename", func(t *testing.T) {
		var gotData []byte
		var gotName string
		media := &mockMedia{UploadFunc: func(ctx context.Context, data []byte, filename string) (string, error) {
			gotData, gotName = data, filename
			return "id", nil
		}}

		result := NewGenerator(media, nil).Generate(ctx, customRequest("studio light", 800, 600, 1))

		require.True(t, result.OK())
		assert.Equal(t, []byte("fake image data"), gotData)
		assert.Equal(t, "product.jpg", gotName)
		assert.Equal(t, []string{"https://res.cloudinary.com/demo/image/upload/c_fill,e_gen_background_replace:prompt_studio_light,g_auto,h_600,w_800/id"}, result.URLs())
	})

	t.Run("validation errors make no remote calls", func(t *testing.T) {
		for _, req := range []*models.GenerationRequest{
			{Prompt: "sunny beach", VariationCount: 1, SizingMode: models.SizingAspectRatio, AspectRatio: "1:1"},
			aspectRequest("", "1:1", 1),
		} {
			media := &mockMedia{}
			result := NewGenerator(media, nil).Generate(ctx, req)

			require.False(t, result.OK())
			assert.Equal(t, models.FailureValidation, result.Failure.Kind)
			assert.Equal(t, ValidationMessage, result.Failure.Message)
			assert.Zero(t, media.uploadCalls)
			assert.Zero(t, media.urlCalls)
			assert.Empty(t, result.Variations)
		}
	})

	t.Run("upload failure yields a generic error", func(t *testing.T) {
		media := &mockMedia{UploadFunc: func(ctx context.Context, data []byte, filename string) (string, error) {
			return "", errors.New("401 invalid api key")
		}}

		result := NewGenerator(media, nil).Generate(ctx, aspectRequest("sunny beach", "1:1", 3))

		require.False(t, result.OK())
		assert.Equal(t, models.FailureRemote, result.Failure.Kind)
		assert.Equal(t, "An error occurred: 401 invalid api key", result.Failure.Message)
		assert.Zero(t, media.urlCalls)
		assert.Empty(t, result.URLs())
	})

	t.Run("failure on any iteration discards all variations", func(t *testing.T) {
		for failAt := 1; failAt <= 3; failAt++ {
			calls := 0
			media := &mockMedia{URLFunc: func(publicID string, spec models.TransformationSpec) (string, error) {
				calls++
				if calls == failAt {
					return "", errors.New("malformed transformation")
				}
				return "https://example.com/" + publicID, nil
			}}

			result := NewGenerator(media, nil).Generate(ctx, aspectRequest("sunny beach", "1:1", 3))

			require.False(t, result.OK(), "fail at %d", failAt)
			assert.Equal(t, "An error occurred: malformed transformation", result.Failure.Message)
			assert.Empty(t, result.Variations)
			assert.Equal(t, failAt, media.urlCalls, "loop stops at first failure")
		}
	})
}
