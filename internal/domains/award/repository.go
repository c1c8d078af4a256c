package award

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the award data access contract.
type Repository interface {
	Create(ctx context.Context, a *Award) error
	GetByID(ctx context.Context, id uuid.UUID) (*Award, error)
	// List returns all awards, most recent year first.
	List(ctx context.Context) ([]Award, error)
	Update(ctx context.Context, a *Award) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}
