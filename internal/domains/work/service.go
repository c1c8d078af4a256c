package work

import (
	"context"

	"github.com/google/uuid"
)

// Service is the work business logic contract.
type Service interface {
	Create(ctx context.Context, req *CreateWorkRequest) (*Work, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateWorkRequest) (*Work, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter Filter) ([]Work, error)
	GetBySlug(ctx context.Context, slug string) (*Work, error)
	ListFeatured(ctx context.Context, limit int) ([]Work, error)
	ListSlugs(ctx context.Context) ([]string, error)
}
