package processor

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/phambaophuc/product-variations/pkg/utils"
)

var (
	ErrEmptyImage       = errors.New("image data cannot be empty")
	ErrFileTooLarge     = errors.New("file exceeds maximum allowed size")
	ErrUnsupportedImage = errors.New("unsupported image type")
)

type ImageInfo struct {
	Format      string
	ContentType string
	Width       int
	Height      int
}

// ValidateImage accepts JPEG and PNG data within the size limit.
func (p *ImageProcessor) ValidateImage(data []byte) (ImageInfo, error) {
	if len(data) == 0 {
		return ImageInfo{}, ErrEmptyImage
	}

	if p.maxSize > 0 && int64(len(data)) > p.maxSize {
		return ImageInfo{}, fmt.Errorf("%w: %d bytes (max %d)", ErrFileTooLarge, len(data), p.maxSize)
	}

	contentType := utils.DetectContentType(data)
	if !utils.IsValidImageType(contentType) {
		return ImageInfo{}, fmt.Errorf("%w: %s", ErrUnsupportedImage, contentType)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return ImageInfo{}, fmt.Errorf("invalid image format: %w", err)
	}

	return ImageInfo{
		Format:      format,
		ContentType: contentType,
		Width:       cfg.Width,
		Height:      cfg.Height,
	}, nil
}
