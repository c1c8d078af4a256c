package storage

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

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 255, A: 255})
	}
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func TestValidateAcceptsPNG(t *testing.T) {
	p := NewImageProcessor(5 * 1024 * 1024)

	contentType, err := p.Validate(encodePNG(t, 10, 10))
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
}

func TestValidateRejectsOversize(t *testing.T) {
	p := NewImageProcessor(16)

	_, err := p.Validate(encodePNG(t, 100, 100))
	assert.ErrorContains(t, err, "limit")
}

func TestValidateRejectsNonImage(t *testing.T) {
	p := NewImageProcessor(5 * 1024 * 1024)

	_, err := p.Validate([]byte("<html><body>not an image</body></html>"))
	assert.ErrorContains(t, err, "not allowed")
}

func TestValidateRejectsTruncatedImage(t *testing.T) {
	p := NewImageProcessor(5 * 1024 * 1024)

	data := encodePNG(t, 10, 10)
	_, err := p.Validate(data[:12])
	assert.Error(t, err)
}

func TestThumbnailFitsWithinBox(t *testing.T) {
	p := NewImageProcessor(5 * 1024 * 1024)

	thumb, err := p.Thumbnail(encodePNG(t, 600, 400))
	require.NoError(t, err)

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(thumb))
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Width)
	assert.Equal(t, 200, cfg.Height)
}

func TestThumbnailDoesNotUpscale(t *testing.T) {
	p := NewImageProcessor(5 * 1024 * 1024)

	thumb, err := p.Thumbnail(encodePNG(t, 100, 50))
	require.NoError(t, err)

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(thumb))
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 50, cfg.Height)
}
