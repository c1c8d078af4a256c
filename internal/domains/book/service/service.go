package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"authorsite-backend/internal/domains/book"
	"authorsite-backend/internal/infrastructure/storage"
	"authorsite-backend/pkg/cache"
)

const (
	cacheKeyList = "books:list"
	cacheTTL     = 5 * time.Minute
)

// bookService - Business logic with cache-aside reads
type bookService struct {
	repo  book.Repository
	cache cache.Cache
	blobs storage.BlobStore
}

// NewBookService - Constructor
func NewBookService(repo book.Repository, cacheClient cache.Cache, blobs storage.BlobStore) book.Service {
	return &bookService{
		repo:  repo,
		cache: cacheClient,
		blobs: blobs,
	}
}

func (s *bookService) Create(ctx context.Context, req *book.CreateBookRequest) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	b := req.ToBook()
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.invalidate(ctx)

	log.Info().Str("book_id", b.ID.String()).Str("slug", b.Slug).Msg("Book created")
	return b, nil
}

func (s *bookService) Update(ctx context.Context, id uuid.UUID, req *book.UpdateBookRequest) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(b)
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return b, nil
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// Best-effort cover cleanup; the placeholder path never matches the
	// blob host so it is skipped naturally.
	if b.HasUploadedCover() && s.blobs != nil && s.blobs.Owns(b.CoverImage) {
		if key, kerr := s.blobs.KeyFromURL(b.CoverImage); kerr == nil {
			if err := s.blobs.Delete(ctx, key); err != nil {
				log.Warn().Err(err).Str("url", b.CoverImage).Msg("Failed to delete cover image blob")
			}
		}
	}

	s.invalidate(ctx)

	log.Info().Str("book_id", id.String()).Msg("Book deleted")
	return nil
}

func (s *bookService) List(ctx context.Context) ([]book.Book, error) {
	var cached []book.Book
	if found, err := s.cache.Get(ctx, cacheKeyList, &cached); err == nil && found {
		return cached, nil
	}

	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKeyList, books, cacheTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to cache book list")
	}

	return books, nil
}

func (s *bookService) ListFeatured(ctx context.Context, limit int) ([]book.Book, error) {
	if limit <= 0 {
		limit = 3
	}

	cacheKey := fmt.Sprintf("books:featured:%d", limit)

	var cached []book.Book
	if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return cached, nil
	}

	books, err := s.repo.ListFeatured(ctx, limit)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, books, cacheTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to cache featured books")
	}

	return books, nil
}

func (s *bookService) invalidate(ctx context.Context) {
	for _, pattern := range []string{"books:*", "home:*"} {
		if err := s.cache.DeletePattern(ctx, pattern); err != nil {
			log.Warn().Err(err).Str("pattern", pattern).Msg("Cache invalidation failed")
		}
	}
}
