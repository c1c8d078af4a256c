package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"authorsite-backend/internal/domains/award"
	"authorsite-backend/internal/domains/book"
	"authorsite-backend/internal/domains/home"
	"authorsite-backend/internal/domains/work"
	"authorsite-backend/pkg/cache"
)

const (
	cacheKeyStats = "home:stats"
	cacheTTL      = 5 * time.Minute
)

// homeService aggregates counts across the content repositories.
type homeService struct {
	works  work.Repository
	books  book.Repository
	awards award.Repository
	cache  cache.Cache
}

// NewHomeService - Constructor
func NewHomeService(works work.Repository, books book.Repository, awards award.Repository, cacheClient cache.Cache) home.Service {
	return &homeService{
		works:  works,
		books:  books,
		awards: awards,
		cache:  cacheClient,
	}
}

func (s *homeService) Stats(ctx context.Context) (*home.Stats, error) {
	var cached home.Stats
	if found, err := s.cache.Get(ctx, cacheKeyStats, &cached); err == nil && found {
		return &cached, nil
	}

	works, err := s.works.CountPublished(ctx)
	if err != nil {
		return nil, err
	}

	books, err := s.books.Count(ctx)
	if err != nil {
		return nil, err
	}

	awards, err := s.awards.Count(ctx)
	if err != nil {
		return nil, err
	}

	stats := &home.Stats{
		PublishedWorks: works,
		Books:          books,
		Awards:         awards,
	}

	if err := s.cache.Set(ctx, cacheKeyStats, stats, cacheTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to cache stats")
	}

	return stats, nil
}
