package service

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authorsite-backend/internal/domains/upload"
	"authorsite-backend/internal/infrastructure/storage"
)

type fakeBlobs struct {
	objects map[string][]byte
	deleted []string
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{objects: make(map[string][]byte)}
}

func (b *fakeBlobs) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	b.objects[key] = data
	return "https://blobs.test/bucket/" + key, nil
}

func (b *fakeBlobs) Delete(ctx context.Context, key string) error {
	b.deleted = append(b.deleted, key)
	delete(b.objects, key)
	return nil
}

func (b *fakeBlobs) Owns(url string) bool {
	return strings.HasPrefix(url, "https://blobs.test/bucket/")
}

func (b *fakeBlobs) KeyFromURL(url string) (string, error) {
	return strings.TrimPrefix(url, "https://blobs.test/bucket/"), nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, image.NewRGBA(image.Rect(0, 0, 400, 400))))
	return buf.Bytes()
}

func TestUploadStoresOriginalAndThumbnail(t *testing.T) {
	blobs := newFakeBlobs()
	svc := NewUploadService(blobs, storage.NewImageProcessor(5*1024*1024), "uploads")

	result, err := svc.Upload(context.Background(), "photo.png", pngBytes(t))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.URL, "https://blobs.test/bucket/uploads/"))
	assert.True(t, strings.HasSuffix(result.URL, "/original.png"))
	assert.True(t, strings.HasSuffix(result.ThumbnailURL, "/thumb.jpg"))
	assert.Len(t, blobs.objects, 2)
}

func TestUploadRejectsNonImage(t *testing.T) {
	svc := NewUploadService(newFakeBlobs(), storage.NewImageProcessor(5*1024*1024), "uploads")

	_, err := svc.Upload(context.Background(), "doc.txt", []byte("plain text, definitely not pixels"))
	assert.ErrorIs(t, err, upload.ErrInvalidImage)
}

func TestUploadRejectsOversize(t *testing.T) {
	svc := NewUploadService(newFakeBlobs(), storage.NewImageProcessor(64), "uploads")

	_, err := svc.Upload(context.Background(), "big.png", pngBytes(t))
	assert.ErrorIs(t, err, upload.ErrInvalidImage)
}

func TestDeleteRemovesBlobAndThumbnail(t *testing.T) {
	blobs := newFakeBlobs()
	svc := NewUploadService(blobs, storage.NewImageProcessor(5*1024*1024), "uploads")

	result, err := svc.Upload(context.Background(), "photo.png", pngBytes(t))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), result.URL))
	assert.Empty(t, blobs.objects)
	assert.Len(t, blobs.deleted, 2)
}

func TestDeleteRejectsForeignURL(t *testing.T) {
	svc := NewUploadService(newFakeBlobs(), storage.NewImageProcessor(5*1024*1024), "uploads")

	err := svc.Delete(context.Background(), "https://elsewhere.example.com/pic.jpg")
	assert.ErrorIs(t, err, upload.ErrNotOwned)
}
