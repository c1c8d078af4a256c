package book

import (
	"time"

	"github.com/google/uuid"

	"authorsite-backend/internal/domains/work"
)

// PlaceholderCover is served when no cover image was uploaded.
const PlaceholderCover = "/images/book-placeholder.jpg"

// Book is a published title with an external purchase link.
type Book struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Slug        string    `json:"slug" db:"slug"`
	Description string    `json:"description" db:"description"`

	CoverImage   string `json:"cover_image" db:"cover_image"`
	PurchaseLink string `json:"purchase_link" db:"purchase_link"`

	Genre           string        `json:"genre" db:"genre"`
	PublicationYear int           `json:"publication_year" db:"publication_year"`
	Language        work.Language `json:"language" db:"language"`
	Featured        bool          `json:"featured" db:"featured"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// HasUploadedCover reports whether the cover is a real upload rather than
// the placeholder path.
func (b *Book) HasUploadedCover() bool {
	return b.CoverImage != "" && b.CoverImage != PlaceholderCover
}
