package processor

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, testImage(w, h)))
	return buf.Bytes()
}

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, jpeg.Encode(buf, testImage(w, h), &jpeg.Options{Quality: 80}))
	return buf.Bytes()
}

func TestValidateImage(t *testing.T) {
	p := NewImageProcessor(1024*1024, 0)

	t.Run("png", func(t *testing.T) {
		info, err := p.ValidateImage(pngBytes(t, 40, 20))
		require.NoError(t, err)
		assert.Equal(t, "png", info.Format)
		assert.Equal(t, "image/png", info.ContentType)
		assert.Equal(t, 40, info.Width)
		assert.Equal(t, 20, info.Height)
	})

	t.Run("jpeg", func(t *testing.T) {
		info, err := p.ValidateImage(jpegBytes(t, 16, 16))
		require.NoError(t, err)
		assert.Equal(t, "jpeg", info.Format)
		assert.Equal(t, "image/jpeg", info.ContentType)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := p.ValidateImage(nil)
		assert.ErrorIs(t, err, ErrEmptyImage)
	})

	t.Run("not an image", func(t *testing.T) {
		_, err := p.ValidateImage([]byte("just some text, definitely not pixels"))
		assert.ErrorIs(t, err, ErrUnsupportedImage)
	})

	t.Run("gif is rejected", func(t *testing.T) {
		_, err := p.ValidateImage([]byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;"))
		assert.ErrorIs(t, err, ErrUnsupportedImage)
	})

	t.Run("too large", func(t *testing.T) {
		small := NewImageProcessor(10, 0)
		_, err := small.ValidateImage(pngBytes(t, 8, 8))
		assert.ErrorIs(t, err, ErrFileTooLarge)
	})

	t.Run("truncated png", func(t *testing.T) {
		data := pngBytes(t, 8, 8)
		_, err := p.ValidateImage(data[:20])
		assert.Error(t, err)
	})
}

func TestPrepare_PassThrough(t *testing.T) {
	data := pngBytes(t, 50, 30)

	out, contentType, err := NewImageProcessor(0, 0).Prepare(data)

	require.NoError(t, err)
	assert.Equal(t, data, out)
	assert.Equal(t, "image/png", contentType)
}

func TestPrepare_Downscales(t *testing.T) {
	p := NewImageProcessor(0, 32)

	out, contentType, err := p.Prepare(pngBytes(t, 128, 64))
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 32, cfg.Width)
	assert.Equal(t, 16, cfg.Height)
}

func TestPrepare_DownscalesJPEG(t *testing.T) {
	out, contentType, err := NewImageProcessor(0, 10).Prepare(jpegBytes(t, 20, 40))
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", contentType)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 5, cfg.Width)
	assert.Equal(t, 10, cfg.Height)
}
