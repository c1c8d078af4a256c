package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"net/http"

	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"
)

// Allowed upload MIME types. Client-side checks mirror this list but the
// server-side sniff is the security boundary.
var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

type ImageProcessor struct {
	MaxSize int64 // bytes
}

func NewImageProcessor(maxSize int64) *ImageProcessor {
	return &ImageProcessor{MaxSize: maxSize}
}

// Validate checks size and sniffed content type, ignoring whatever the
// client declared. Returns the detected MIME type.
func (p *ImageProcessor) Validate(data []byte) (string, error) {
	if int64(len(data)) > p.MaxSize {
		return "", fmt.Errorf("image exceeds %dMB limit", p.MaxSize/(1024*1024))
	}

	contentType := http.DetectContentType(data)
	if !allowedTypes[contentType] {
		return "", fmt.Errorf("content type %s not allowed (jpeg/png/webp/gif only)", contentType)
	}

	// DetectContentType only reads magic bytes; make sure the rest decodes.
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("not a decodable image: %w", err)
	}

	return contentType, nil
}

// Thumbnail fits the image into a 300px box and re-encodes as JPEG.
func (p *ImageProcessor) Thumbnail(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	resized := imaging.Fit(img, 300, 300, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, resized, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("cannot encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
