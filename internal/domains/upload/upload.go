package upload

import (
	"context"
	"errors"
)

// Result is the payload returned for a stored image.
type Result struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url"`
}

var (
	// ErrInvalidImage wraps size and content-type rejections.
	ErrInvalidImage = errors.New("invalid image")
	// ErrNotOwned means the URL does not point into the blob store.
	ErrNotOwned = errors.New("url is not in blob storage")
)

// Service stores admin-uploaded images and their thumbnails.
type Service interface {
	Upload(ctx context.Context, filename string, data []byte) (*Result, error)
	// Delete removes the blob behind a URL plus its thumbnail sibling.
	Delete(ctx context.Context, url string) error
}
