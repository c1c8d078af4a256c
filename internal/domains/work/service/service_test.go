package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authorsite-backend/internal/domains/work"
)

type fakeRepo struct {
	byID map[uuid.UUID]*work.Work
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: make(map[uuid.UUID]*work.Work)}
}

func (r *fakeRepo) Create(ctx context.Context, w *work.Work) error {
	for _, existing := range r.byID {
		if existing.Slug == w.Slug {
			return work.ErrSlugAlreadyExists
		}
	}
	cp := *w
	r.byID[w.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*work.Work, error) {
	w, ok := r.byID[id]
	if !ok {
		return nil, work.ErrWorkNotFound
	}
	cp := *w
	return &cp, nil
}

func (r *fakeRepo) GetBySlug(ctx context.Context, slug string) (*work.Work, error) {
	for _, w := range r.byID {
		if w.Slug == slug {
			cp := *w
			return &cp, nil
		}
	}
	return nil, work.ErrWorkNotFound
}

func (r *fakeRepo) List(ctx context.Context, filter work.Filter) ([]work.Work, error) {
	out := make([]work.Work, 0)
	for _, w := range r.byID {
		if filter.Status != "" && w.Status.String() != filter.Status {
			continue
		}
		out = append(out, *w)
	}
	return out, nil
}

func (r *fakeRepo) ListFeatured(ctx context.Context, limit int) ([]work.Work, error) {
	out := make([]work.Work, 0)
	for _, w := range r.byID {
		if w.Featured && w.Status == work.StatusPublished {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListSlugs(ctx context.Context) ([]string, error) {
	out := make([]string, 0)
	for _, w := range r.byID {
		if w.Status == work.StatusPublished {
			out = append(out, w.Slug)
		}
	}
	return out, nil
}

func (r *fakeRepo) Update(ctx context.Context, w *work.Work) error {
	if _, ok := r.byID[w.ID]; !ok {
		return work.ErrWorkNotFound
	}
	cp := *w
	r.byID[w.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return work.ErrWorkNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeRepo) CountPublished(ctx context.Context) (int, error) {
	n := 0
	for _, w := range r.byID {
		if w.Status == work.StatusPublished {
			n++
		}
	}
	return n, nil
}

type fakeCache struct {
	store   map[string][]byte
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string][]byte)}
}

func (c *fakeCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.store[key] = data
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.store, k)
	}
	return nil
}

func (c *fakeCache) DeletePattern(ctx context.Context, pattern string) error {
	c.deleted = append(c.deleted, pattern)
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range c.store {
		if strings.HasPrefix(k, prefix) {
			delete(c.store, k)
		}
	}
	return nil
}

func (c *fakeCache) Ping(ctx context.Context) error { return nil }

type fakeBlobs struct {
	deleted []string
}

func (b *fakeBlobs) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	return "https://blobs.test/bucket/" + key, nil
}

func (b *fakeBlobs) Delete(ctx context.Context, key string) error {
	b.deleted = append(b.deleted, key)
	return nil
}

func (b *fakeBlobs) Owns(url string) bool {
	return strings.HasPrefix(url, "https://blobs.test/bucket/")
}

func (b *fakeBlobs) KeyFromURL(url string) (string, error) {
	return strings.TrimPrefix(url, "https://blobs.test/bucket/"), nil
}

func TestCreateThenListUsesCache(t *testing.T) {
	repo := newFakeRepo()
	cache := newFakeCache()
	svc := NewWorkService(repo, cache, &fakeBlobs{})
	ctx := context.Background()

	_, err := svc.Create(ctx, &work.CreateWorkRequest{
		Title:   "Test Poem",
		Content: "Line one\nLine two",
		Status:  "published",
	})
	require.NoError(t, err)

	first, err := svc.List(ctx, work.Filter{})
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Second read should come from the cache
	_, ok := cache.store[cacheKeyDefaultList]
	assert.True(t, ok)

	second, err := svc.List(ctx, work.Filter{})
	require.NoError(t, err)
	assert.Equal(t, first[0].Slug, second[0].Slug)
}

func TestMutationsInvalidateCache(t *testing.T) {
	repo := newFakeRepo()
	cache := newFakeCache()
	svc := NewWorkService(repo, cache, &fakeBlobs{})
	ctx := context.Background()

	w, err := svc.Create(ctx, &work.CreateWorkRequest{Title: "a", Content: "b", Status: "published"})
	require.NoError(t, err)

	_, err = svc.List(ctx, work.Filter{})
	require.NoError(t, err)
	require.Contains(t, cache.store, cacheKeyDefaultList)

	status := "draft"
	_, err = svc.Update(ctx, w.ID, &work.UpdateWorkRequest{Status: &status})
	require.NoError(t, err)

	assert.NotContains(t, cache.store, cacheKeyDefaultList)
	assert.Contains(t, cache.deleted, "works:*")
	assert.Contains(t, cache.deleted, "home:*")
}

func TestCreateDuplicateSlugFails(t *testing.T) {
	repo := newFakeRepo()
	svc := NewWorkService(repo, newFakeCache(), &fakeBlobs{})
	ctx := context.Background()

	_, err := svc.Create(ctx, &work.CreateWorkRequest{Title: "Same Title", Content: "a"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &work.CreateWorkRequest{Title: "Same Title", Content: "b"})
	assert.ErrorIs(t, err, work.ErrSlugAlreadyExists)
}

func TestDeleteCleansUpOwnedImage(t *testing.T) {
	repo := newFakeRepo()
	blobs := &fakeBlobs{}
	svc := NewWorkService(repo, newFakeCache(), blobs)
	ctx := context.Background()

	img := "https://blobs.test/bucket/uploads/abc/original.jpg"
	w, err := svc.Create(ctx, &work.CreateWorkRequest{
		Title:         "With Image",
		Content:       "c",
		FeaturedImage: &img,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, w.ID))
	assert.Equal(t, []string{"uploads/abc/original.jpg"}, blobs.deleted)
}

func TestDeleteSkipsForeignImage(t *testing.T) {
	repo := newFakeRepo()
	blobs := &fakeBlobs{}
	svc := NewWorkService(repo, newFakeCache(), blobs)
	ctx := context.Background()

	img := "https://elsewhere.example.com/pic.jpg"
	w, err := svc.Create(ctx, &work.CreateWorkRequest{
		Title:         "Foreign Image",
		Content:       "c",
		FeaturedImage: &img,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, w.ID))
	assert.Empty(t, blobs.deleted)
}

func TestUpdateMissingWork(t *testing.T) {
	svc := NewWorkService(newFakeRepo(), newFakeCache(), &fakeBlobs{})

	title := "x"
	_, err := svc.Update(context.Background(), uuid.New(), &work.UpdateWorkRequest{Title: &title})
	assert.ErrorIs(t, err, work.ErrWorkNotFound)
}
