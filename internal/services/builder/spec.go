package builder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/phambaophuc/product-variations/internal/models"
)

const (
	EffectPrefix      = "gen_background_replace:prompt_"
	CropFill          = "fill"
	GravityAuto       = "auto"
	AspectRatioHeight = 1500

	MinVariations = 1
	MaxVariations = 10
)

// ValidationMessage is shown for a missing image or an empty prompt.
const ValidationMessage = "Please upload an image and enter a prompt."

var (
	ErrMissingImage          = errors.New("image is required")
	ErrEmptyPrompt           = errors.New("prompt cannot be empty")
	ErrInvalidVariationCount = fmt.Errorf("variation count must be between %d and %d", MinVariations, MaxVariations)
	ErrInvalidSizingMode     = errors.New("sizing mode must be aspect_ratio or custom")
	ErrInvalidAspectRatio    = errors.New("unsupported aspect ratio")
	ErrInvalidDimensions     = errors.New("width and height must be positive integers")
)

// Validate checks a request before any remote call is made.
func Validate(req *models.GenerationRequest) error {
	if req == nil || len(req.Image) == 0 {
		return ErrMissingImage
	}
	if req.Prompt == "" {
		return ErrEmptyPrompt
	}
	if req.VariationCount < MinVariations || req.VariationCount > MaxVariations {
		return fmt.Errorf("%w: got %d", ErrInvalidVariationCount, req.VariationCount)
	}

	switch req.SizingMode {
	case models.SizingAspectRatio:
		if _, ok := models.ResolveAspectRatio(req.AspectRatio); !ok {
			return fmt.Errorf("%w: %q", ErrInvalidAspectRatio, req.AspectRatio)
		}
	case models.SizingCustom:
		if req.Width <= 0 || req.Height <= 0 {
			return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, req.Width, req.Height)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSizingMode, req.SizingMode)
	}

	return nil
}

// ValidationFailure converts a Validate error into the message shown to the user.
func ValidationFailure(err error) *models.Failure {
	msg := err.Error()
	if errors.Is(err, ErrMissingImage) || errors.Is(err, ErrEmptyPrompt) {
		msg = ValidationMessage
	}
	return &models.Failure{Kind: models.FailureValidation, Message: msg}
}

// Effect embeds the prompt using the renderer's convention of underscores for spaces.
func Effect(prompt string) string {
	return EffectPrefix + strings.ReplaceAll(prompt, " ", "_")
}

// BuildSpec returns the transformation for variation index. Specs are identical across
// indexes unless VarySeed is set.
func BuildSpec(req *models.GenerationRequest, index int) models.TransformationSpec {
	spec := models.TransformationSpec{
		Effect:  Effect(req.Prompt),
		Crop:    CropFill,
		Gravity: GravityAuto,
	}
	if req.VarySeed {
		spec.Effect = fmt.Sprintf("%s;seed_%d", spec.Effect, index+1)
	}

	if req.SizingMode == models.SizingCustom {
		spec.Width = req.Width
		spec.Height = req.Height
		return spec
	}

	ratio, _ := models.ResolveAspectRatio(req.AspectRatio)
	spec.AspectRatio = ratio
	spec.Height = AspectRatioHeight
	return spec
}

func BuildSpecs(req *models.GenerationRequest) []models.TransformationSpec {
	specs := make([]models.TransformationSpec, 0, req.VariationCount)
	for i := 0; i < req.VariationCount; i++ {
		specs = append(specs, BuildSpec(req, i))
	}
	return specs
}
