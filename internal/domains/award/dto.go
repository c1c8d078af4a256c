package award

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateAwardRequest is the payload for POST /api/awards.
type CreateAwardRequest struct {
	Title       string  `json:"title"`
	IssuingBody string  `json:"issuing_body"`
	Year        int     `json:"year"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
}

func (r CreateAwardRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.RuneLength(1, 200).Error("title cannot exceed 200 characters"),
		),
		validation.Field(&r.IssuingBody,
			validation.Required.Error("issuing body is required"),
		),
		validation.Field(&r.Year,
			validation.Required.Error("year is required"),
			validation.Min(1000).Error("year must be a four-digit year"),
			validation.Max(9999).Error("year must be a four-digit year"),
		),
		validation.Field(&r.Description,
			validation.Required.Error("description is required"),
		),
	)
}

func (r CreateAwardRequest) ToAward() *Award {
	return &Award{
		ID:          uuid.New(),
		Title:       r.Title,
		IssuingBody: r.IssuingBody,
		Year:        r.Year,
		Description: r.Description,
		Image:       r.Image,
	}
}

// UpdateAwardRequest is the payload for PUT /api/awards/:id. Absent fields
// are left untouched.
type UpdateAwardRequest struct {
	Title       *string `json:"title"`
	IssuingBody *string `json:"issuing_body"`
	Year        *int    `json:"year"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

func (r UpdateAwardRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be empty"),
			validation.RuneLength(1, 200).Error("title cannot exceed 200 characters"),
		),
		validation.Field(&r.IssuingBody,
			validation.NilOrNotEmpty.Error("issuing body cannot be empty"),
		),
		validation.Field(&r.Year,
			validation.Min(1000).Error("year must be a four-digit year"),
			validation.Max(9999).Error("year must be a four-digit year"),
		),
		validation.Field(&r.Description,
			validation.NilOrNotEmpty.Error("description cannot be empty"),
		),
	)
}

// Apply merges the request into an existing award.
func (r UpdateAwardRequest) Apply(a *Award) {
	if r.Title != nil {
		a.Title = *r.Title
	}
	if r.IssuingBody != nil {
		a.IssuingBody = *r.IssuingBody
	}
	if r.Year != nil {
		a.Year = *r.Year
	}
	if r.Description != nil {
		a.Description = *r.Description
	}
	if r.Image != nil {
		a.Image = r.Image
	}
}
