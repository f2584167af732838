package processor

import (
	"image"
	"io"

	"github.com/disintegration/imaging"
)

func (p *ImageProcessor) encodeImage(w io.Writer, img image.Image, format string) error {
	switch format {
	case "png":
		return imaging.Encode(w, img, imaging.PNG)
	default:
		return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(DefaultQuality))
	}
}
