package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"authorsite-backend/internal/domains/award"
	"authorsite-backend/internal/infrastructure/storage"
	"authorsite-backend/pkg/cache"
)

const (
	cacheKeyList = "awards:list"
	cacheTTL     = 5 * time.Minute
)

// awardService - Business logic with cache-aside reads
type awardService struct {
	repo  award.Repository
	cache cache.Cache
	blobs storage.BlobStore
}

// NewAwardService - Constructor
func NewAwardService(repo award.Repository, cacheClient cache.Cache, blobs storage.BlobStore) award.Service {
	return &awardService{
		repo:  repo,
		cache: cacheClient,
		blobs: blobs,
	}
}

func (s *awardService) Create(ctx context.Context, req *award.CreateAwardRequest) (*award.Award, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a := req.ToAward()
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	s.invalidate(ctx)

	log.Info().Str("award_id", a.ID.String()).Msg("Award created")
	return a, nil
}

func (s *awardService) Update(ctx context.Context, id uuid.UUID, req *award.UpdateAwardRequest) (*award.Award, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(a)
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return a, nil
}

func (s *awardService) Delete(ctx context.Context, id uuid.UUID) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if a.Image != nil && s.blobs != nil && s.blobs.Owns(*a.Image) {
		if key, kerr := s.blobs.KeyFromURL(*a.Image); kerr == nil {
			if err := s.blobs.Delete(ctx, key); err != nil {
				log.Warn().Err(err).Str("url", *a.Image).Msg("Failed to delete award image blob")
			}
		}
	}

	s.invalidate(ctx)

	log.Info().Str("award_id", id.String()).Msg("Award deleted")
	return nil
}

func (s *awardService) List(ctx context.Context) ([]award.Award, error) {
	var cached []award.Award
	if found, err := s.cache.Get(ctx, cacheKeyList, &cached); err == nil && found {
		return cached, nil
	}

	awards, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKeyList, awards, cacheTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to cache award list")
	}

	return awards, nil
}

func (s *awardService) invalidate(ctx context.Context) {
	for _, pattern := range []string{"awards:*", "home:*"} {
		if err := s.cache.DeletePattern(ctx, pattern); err != nil {
			log.Warn().Err(err).Str("pattern", pattern).Msg("Cache invalidation failed")
		}
	}
}
