package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/phambaophuc/product-variations/internal/models"
	"github.com/phambaophuc/product-variations/pkg/utils"
)

// === REQUEST PARSING ===

// parseGenerationRequest reads the form. A missing file is not an error here; the
// builder reports it alongside an empty prompt.
func (h *VariationHandler) parseGenerationRequest(c *gin.Context) (*models.GenerationRequest, error) {
	count, err := h.parseInt(c.PostForm("variation_count"), "variation_count", 1)
	if err != nil {
		return nil, err
	}

	mode, ok := models.ParseSizingMode(c.PostForm("sizing_mode"))
	if !ok {
		return nil, fmt.Errorf("invalid sizing_mode: %q", c.PostForm("sizing_mode"))
	}

	req := &models.GenerationRequest{
		Prompt:         c.PostForm("prompt"),
		VariationCount: count,
		SizingMode:     mode,
		VarySeed:       parseBool(c.PostForm("vary_seed")),
	}

	switch mode {
	case models.SizingCustom:
		if req.Width, err = h.parseInt(c.PostForm("width"), "width", models.DefaultCustomWidth); err != nil {
			return nil, err
		}
		if req.Height, err = h.parseInt(c.PostForm("height"), "height", models.DefaultCustomHeight); err != nil {
			return nil, err
		}
	default:
		req.AspectRatio = c.DefaultPostForm("aspect_ratio", models.AspectRatioOptions[0].Value)
		if ratio, ok := models.ResolveAspectRatio(req.AspectRatio); ok {
			req.AspectRatio = ratio
		}
	}

	if err := h.readImage(c, req); err != nil {
		return nil, err
	}

	return req, nil
}

func (h *VariationHandler) readImage(c *gin.Context, req *models.GenerationRequest) error {
	file, header, err := c.Request.FormFile(imageParamKey)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil
		}
		return fmt.Errorf("failed to read upload: %v", err)
	}
	defer file.Close()

	if !utils.IsAllowedExtension(header.Filename) {
		return fmt.Errorf("unsupported file type: %s (accepted: jpg, jpeg, png)", header.Filename)
	}

	// A non-positive limit means unlimited, matching the processor.
	var src io.Reader = file
	if maxSize := h.config.Storage.MaxFileSize; maxSize > 0 {
		src = io.LimitReader(file, maxSize+1)
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("failed to read upload: %v", err)
	}

	prepared, contentType, err := h.processor.Prepare(data)
	if err != nil {
		return fmt.Errorf("Invalid image: %v", err)
	}

	req.Image = prepared
	req.Filename = header.Filename
	req.ContentType = contentType
	return nil
}

func (h *VariationHandler) parseInt(value, fieldName string, defaultVal int) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return defaultVal, nil
	}

	num, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: must be a number", fieldName)
	}

	return num, nil
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "on", "yes":
		return true
	default:
		return false
	}
}

// === RESPONSE HANDLING ===

func (h *VariationHandler) respondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, models.APIResponse{
		Success: false,
		Error:   message,
	})
}

func statusForFailure(f *models.Failure) int {
	if f.Kind == models.FailureValidation {
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}
