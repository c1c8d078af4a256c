package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"authorsite-backend/internal/domains/work"
	"authorsite-backend/internal/shared/utils"
)

// CreateBookRequest is the payload for POST /api/books.
type CreateBookRequest struct {
	Title           string `json:"title"`
	Slug            string `json:"slug"`
	Description     string `json:"description"`
	CoverImage      string `json:"cover_image"`
	PurchaseLink    string `json:"purchase_link"`
	Genre           string `json:"genre"`
	PublicationYear int    `json:"publication_year"`
	Language        string `json:"language"`
	Featured        bool   `json:"featured"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.RuneLength(1, 200).Error("title cannot exceed 200 characters"),
		),
		validation.Field(&r.Description,
			validation.Required.Error("description is required"),
		),
		validation.Field(&r.PurchaseLink,
			validation.Required.Error("purchase link is required"),
			is.URL.Error("purchase link must be a valid URL"),
		),
		validation.Field(&r.Genre,
			validation.Required.Error("genre is required"),
		),
		validation.Field(&r.PublicationYear,
			validation.Required.Error("publication year is required"),
			validation.Min(1000).Error("publication year must be a four-digit year"),
			validation.Max(9999).Error("publication year must be a four-digit year"),
		),
		validation.Field(&r.Language,
			validation.In("", work.LanguageHindi.String(), work.LanguageEnglish.String(), work.LanguageBilingual.String()).
				Error("language must be one of hindi, english, bilingual"),
		),
	)
}

// ToBook applies defaults and slug derivation.
func (r CreateBookRequest) ToBook() *Book {
	b := &Book{
		ID:              uuid.New(),
		Title:           r.Title,
		Description:     r.Description,
		CoverImage:      r.CoverImage,
		PurchaseLink:    r.PurchaseLink,
		Genre:           r.Genre,
		PublicationYear: r.PublicationYear,
		Language:        work.Language(r.Language),
		Featured:        r.Featured,
	}

	if b.CoverImage == "" {
		b.CoverImage = PlaceholderCover
	}
	if b.Language == "" {
		b.Language = work.LanguageEnglish
	}

	if r.Slug != "" {
		b.Slug = utils.SlugWithFallback(r.Slug, "book")
	} else {
		b.Slug = utils.SlugWithFallback(r.Title, "book")
	}

	return b
}

// UpdateBookRequest is the payload for PUT /api/books/:id. Absent fields are
// left untouched.
type UpdateBookRequest struct {
	Title           *string `json:"title"`
	Slug            *string `json:"slug"`
	Description     *string `json:"description"`
	CoverImage      *string `json:"cover_image"`
	PurchaseLink    *string `json:"purchase_link"`
	Genre           *string `json:"genre"`
	PublicationYear *int    `json:"publication_year"`
	Language        *string `json:"language"`
	Featured        *bool   `json:"featured"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be empty"),
			validation.RuneLength(1, 200).Error("title cannot exceed 200 characters"),
		),
		validation.Field(&r.Description,
			validation.NilOrNotEmpty.Error("description cannot be empty"),
		),
		validation.Field(&r.PurchaseLink,
			validation.NilOrNotEmpty.Error("purchase link cannot be empty"),
			is.URL.Error("purchase link must be a valid URL"),
		),
		validation.Field(&r.Genre,
			validation.NilOrNotEmpty.Error("genre cannot be empty"),
		),
		validation.Field(&r.PublicationYear,
			validation.Min(1000).Error("publication year must be a four-digit year"),
			validation.Max(9999).Error("publication year must be a four-digit year"),
		),
		validation.Field(&r.Language,
			validation.In(work.LanguageHindi.String(), work.LanguageEnglish.String(), work.LanguageBilingual.String()).
				Error("language must be one of hindi, english, bilingual"),
		),
	)
}

// Apply merges the request into an existing book.
func (r UpdateBookRequest) Apply(b *Book) {
	if r.Title != nil {
		b.Title = *r.Title
	}
	if r.Slug != nil {
		b.Slug = utils.SlugWithFallback(*r.Slug, "book")
	}
	if r.Description != nil {
		b.Description = *r.Description
	}
	if r.CoverImage != nil {
		b.CoverImage = *r.CoverImage
		if b.CoverImage == "" {
			b.CoverImage = PlaceholderCover
		}
	}
	if r.PurchaseLink != nil {
		b.PurchaseLink = *r.PurchaseLink
	}
	if r.Genre != nil {
		b.Genre = *r.Genre
	}
	if r.PublicationYear != nil {
		b.PublicationYear = *r.PublicationYear
	}
	if r.Language != nil {
		b.Language = work.Language(*r.Language)
	}
	if r.Featured != nil {
		b.Featured = *r.Featured
	}
}
