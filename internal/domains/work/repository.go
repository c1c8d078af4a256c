package work

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the work data access contract.
type Repository interface {
	Create(ctx context.Context, w *Work) error
	GetByID(ctx context.Context, id uuid.UUID) (*Work, error)
	GetBySlug(ctx context.Context, slug string) (*Work, error)
	// List returns works matching a normalized filter, newest first.
	List(ctx context.Context, filter Filter) ([]Work, error)
	// ListFeatured returns published featured works, newest first.
	ListFeatured(ctx context.Context, limit int) ([]Work, error)
	// ListSlugs returns the slugs of all published works (sitemap feed).
	ListSlugs(ctx context.Context) ([]string, error)
	Update(ctx context.Context, w *Work) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountPublished(ctx context.Context) (int, error)
}
