package award

import (
	"time"

	"github.com/google/uuid"
)

// Award is a recognition record. Awards carry no slug; the public surface
// only ever lists them.
type Award struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	IssuingBody string    `json:"issuing_body" db:"issuing_body"`
	Year        int       `json:"year" db:"year"`
	Description string    `json:"description" db:"description"`
	Image       *string   `json:"image,omitempty" db:"image"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
