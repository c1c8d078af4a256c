package service

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"authorsite-backend/internal/domains/upload"
	"authorsite-backend/internal/infrastructure/storage"
)

var extByType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// uploadService validates images, derives thumbnails and writes both to the
// blob store under a fresh key prefix.
type uploadService struct {
	blobs     storage.BlobStore
	processor *storage.ImageProcessor
	prefix    string
}

// NewUploadService - Constructor
func NewUploadService(blobs storage.BlobStore, processor *storage.ImageProcessor, prefix string) upload.Service {
	return &uploadService{
		blobs:     blobs,
		processor: processor,
		prefix:    prefix,
	}
}

func (s *uploadService) Upload(ctx context.Context, filename string, data []byte) (*upload.Result, error) {
	contentType, err := s.processor.Validate(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", upload.ErrInvalidImage, err)
	}

	thumb, err := s.processor.Thumbnail(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", upload.ErrInvalidImage, err)
	}

	// The uploaded filename only contributes its extension hint; keys are
	// always fresh so uploads can never overwrite each other.
	keyBase := fmt.Sprintf("%s/%s", s.prefix, uuid.New().String())
	originalKey := keyBase + "/original" + extensionFor(contentType, filename)
	thumbKey := keyBase + "/thumb.jpg"

	url, err := s.blobs.Upload(ctx, originalKey, data, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	thumbURL, err := s.blobs.Upload(ctx, thumbKey, thumb, "image/jpeg")
	if err != nil {
		// Original is already stored; clean it up so a half-written pair
		// never leaks into the bucket.
		if delErr := s.blobs.Delete(ctx, originalKey); delErr != nil {
			log.Warn().Err(delErr).Str("key", originalKey).Msg("Failed to clean up orphaned upload")
		}
		return nil, fmt.Errorf("failed to store thumbnail: %w", err)
	}

	log.Info().Str("key", originalKey).Int("bytes", len(data)).Msg("Image uploaded")
	return &upload.Result{URL: url, ThumbnailURL: thumbURL}, nil
}

func (s *uploadService) Delete(ctx context.Context, url string) error {
	if !s.blobs.Owns(url) {
		return upload.ErrNotOwned
	}

	key, err := s.blobs.KeyFromURL(url)
	if err != nil {
		return err
	}

	if err := s.blobs.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete blob: %w", err)
	}

	// The thumbnail shares the key prefix; its absence is not an error.
	thumbKey := path.Dir(key) + "/thumb.jpg"
	if thumbKey != key {
		if err := s.blobs.Delete(ctx, thumbKey); err != nil {
			log.Debug().Err(err).Str("key", thumbKey).Msg("No thumbnail to delete")
		}
	}

	log.Info().Str("key", key).Msg("Image deleted")
	return nil
}

func extensionFor(contentType, filename string) string {
	if ext, ok := extByType[contentType]; ok {
		return ext
	}
	if ext := strings.ToLower(path.Ext(filename)); ext != "" {
		return ext
	}
	return ".bin"
}
