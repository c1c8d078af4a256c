package award

import (
	"context"

	"github.com/google/uuid"
)

// Service is the award business logic contract.
type Service interface {
	Create(ctx context.Context, req *CreateAwardRequest) (*Award, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateAwardRequest) (*Award, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]Award, error)
}
