package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the book data access contract.
type Repository interface {
	Create(ctx context.Context, b *Book) error
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)
	// List returns all books, newest publication year first.
	List(ctx context.Context) ([]Book, error)
	ListFeatured(ctx context.Context, limit int) ([]Book, error)
	Update(ctx context.Context, b *Book) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}
