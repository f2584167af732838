package processor

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

const DefaultQuality = 90

type ImageProcessor struct {
	maxSize      int64
	maxDimension int
}

// NewImageProcessor returns a processor rejecting files over maxSize bytes.
// A maxDimension of zero leaves image geometry untouched.
func NewImageProcessor(maxSize int64, maxDimension int) *ImageProcessor {
	return &ImageProcessor{
		maxSize:      maxSize,
		maxDimension: maxDimension,
	}
}

// Prepare validates an upload and returns the bytes to send to the media service
// along with the detected content type. Oversized images are downscaled first.
func (p *ImageProcessor) Prepare(data []byte) ([]byte, string, error) {
	info, err := p.ValidateImage(data)
	if err != nil {
		return nil, "", err
	}

	if !p.needsResize(info) {
		return data, info.ContentType, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}

	resized := imaging.Fit(img, p.maxDimension, p.maxDimension, imaging.Lanczos)

	buffer := &bytes.Buffer{}
	if err := p.encodeImage(buffer, resized, info.Format); err != nil {
		return nil, "", fmt.Errorf("failed to encode image: %w", err)
	}

	return buffer.Bytes(), info.ContentType, nil
}

func (p *ImageProcessor) needsResize(info ImageInfo) bool {
	if p.maxDimension <= 0 {
		return false
	}
	return info.Width > p.maxDimension || info.Height > p.maxDimension
}
