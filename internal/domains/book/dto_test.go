package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateBookRequestValidate(t *testing.T) {
	valid := CreateBookRequest{
		Title:           "स्वीकार किया",
		Description:     "desc",
		PurchaseLink:    "https://www.amazon.in/dp/B0G2RQN8T1",
		Genre:           "Poetry",
		PublicationYear: 2025,
	}
	assert.NoError(t, valid.Validate())

	tests := map[string]func(r CreateBookRequest) CreateBookRequest{
		"missing title":       func(r CreateBookRequest) CreateBookRequest { r.Title = ""; return r },
		"missing description": func(r CreateBookRequest) CreateBookRequest { r.Description = ""; return r },
		"missing link":        func(r CreateBookRequest) CreateBookRequest { r.PurchaseLink = ""; return r },
		"link not a url":      func(r CreateBookRequest) CreateBookRequest { r.PurchaseLink = "not a url"; return r },
		"missing genre":       func(r CreateBookRequest) CreateBookRequest { r.Genre = ""; return r },
		"missing year":        func(r CreateBookRequest) CreateBookRequest { r.PublicationYear = 0; return r },
		"three-digit year":    func(r CreateBookRequest) CreateBookRequest { r.PublicationYear = 999; return r },
		"bad language":        func(r CreateBookRequest) CreateBookRequest { r.Language = "german"; return r },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, mutate(valid).Validate())
		})
	}
}

func TestCreateBookRequestToBook(t *testing.T) {
	req := CreateBookRequest{
		Title:           "स्वीकार किया",
		Description:     "desc",
		PurchaseLink:    "https://example.com/book",
		Genre:           "Poetry",
		PublicationYear: 2025,
	}

	b := req.ToBook()

	assert.Equal(t, "स्वीकार-किया", b.Slug)
	assert.Equal(t, PlaceholderCover, b.CoverImage)
	assert.Equal(t, "english", b.Language.String())
	assert.False(t, b.Featured)
	assert.False(t, b.HasUploadedCover())
}

func TestUpdateBookRequestApply(t *testing.T) {
	b := &Book{
		Title:      "old",
		Slug:       "old",
		CoverImage: "https://blobs.example.com/cover.jpg",
		Featured:   false,
	}

	featured := true
	emptyCover := ""
	req := UpdateBookRequest{
		Featured:   &featured,
		CoverImage: &emptyCover,
	}

	req.Apply(b)

	assert.True(t, b.Featured)
	// Clearing the cover restores the placeholder
	assert.Equal(t, PlaceholderCover, b.CoverImage)
	assert.Equal(t, "old", b.Title)
}
