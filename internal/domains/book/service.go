package book

import (
	"context"

	"github.com/google/uuid"
)

// Service is the book business logic contract.
type Service interface {
	Create(ctx context.Context, req *CreateBookRequest) (*Book, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateBookRequest) (*Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]Book, error)
	ListFeatured(ctx context.Context, limit int) ([]Book, error)
}
