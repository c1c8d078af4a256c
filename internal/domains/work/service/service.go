package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"authorsite-backend/internal/domains/work"
	"authorsite-backend/internal/infrastructure/storage"
	"authorsite-backend/pkg/cache"
)

const (
	cacheKeyDefaultList = "works:list:default"
	cacheTTL            = 5 * time.Minute
)

// workService - Business logic with cache-aside reads
type workService struct {
	repo  work.Repository
	cache cache.Cache
	blobs storage.BlobStore
}

// NewWorkService - Constructor
func NewWorkService(repo work.Repository, cacheClient cache.Cache, blobs storage.BlobStore) work.Service {
	return &workService{
		repo:  repo,
		cache: cacheClient,
		blobs: blobs,
	}
}

func (s *workService) Create(ctx context.Context, req *work.CreateWorkRequest) (*work.Work, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	w := req.ToWork()
	if err := s.repo.Create(ctx, w); err != nil {
		return nil, err
	}

	s.invalidate(ctx)

	log.Info().Str("work_id", w.ID.String()).Str("slug", w.Slug).Msg("Work created")
	return w, nil
}

func (s *workService) Update(ctx context.Context, id uuid.UUID, req *work.UpdateWorkRequest) (*work.Work, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	w, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(w)
	if err := s.repo.Update(ctx, w); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return w, nil
}

func (s *workService) Delete(ctx context.Context, id uuid.UUID) error {
	w, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// Best-effort image cleanup; a stale blob must not fail the delete.
	if w.FeaturedImage != nil && s.blobs != nil && s.blobs.Owns(*w.FeaturedImage) {
		if key, kerr := s.blobs.KeyFromURL(*w.FeaturedImage); kerr == nil {
			if err := s.blobs.Delete(ctx, key); err != nil {
				log.Warn().Err(err).Str("url", *w.FeaturedImage).Msg("Failed to delete featured image blob")
			}
		}
	}

	s.invalidate(ctx)

	log.Info().Str("work_id", id.String()).Msg("Work deleted")
	return nil
}

func (s *workService) List(ctx context.Context, filter work.Filter) ([]work.Work, error) {
	filter = filter.Normalize()

	// Only the plain published listing is cached; filtered variants go
	// straight to the database.
	if filter.IsDefault() {
		var cached []work.Work
		if found, err := s.cache.Get(ctx, cacheKeyDefaultList, &cached); err == nil && found {
			return cached, nil
		}

		works, err := s.repo.List(ctx, filter)
		if err != nil {
			return nil, err
		}

		if err := s.cache.Set(ctx, cacheKeyDefaultList, works, cacheTTL); err != nil {
			log.Warn().Err(err).Msg("Failed to cache work list")
		}
		return works, nil
	}

	return s.repo.List(ctx, filter)
}

func (s *workService) GetBySlug(ctx context.Context, slug string) (*work.Work, error) {
	cacheKey := fmt.Sprintf("works:slug:%s", slug)

	var cached work.Work
	if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	w, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, w, cacheTTL); err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("Failed to cache work")
	}

	return w, nil
}

func (s *workService) ListFeatured(ctx context.Context, limit int) ([]work.Work, error) {
	if limit <= 0 {
		limit = 3
	}

	cacheKey := fmt.Sprintf("works:featured:%d", limit)

	var cached []work.Work
	if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return cached, nil
	}

	works, err := s.repo.ListFeatured(ctx, limit)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, works, cacheTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to cache featured works")
	}

	return works, nil
}

func (s *workService) ListSlugs(ctx context.Context) ([]string, error) {
	return s.repo.ListSlugs(ctx)
}

// invalidate drops every cached work view plus the home aggregates after a
// write. Failures are logged and swallowed; the TTL bounds the staleness.
func (s *workService) invalidate(ctx context.Context) {
	for _, pattern := range []string{"works:*", "home:*"} {
		if err := s.cache.DeletePattern(ctx, pattern); err != nil {
			log.Warn().Err(err).Str("pattern", pattern).Msg("Cache invalidation failed")
		}
	}
}
