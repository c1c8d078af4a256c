package work

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"authorsite-backend/internal/shared/utils"
)

// CreateWorkRequest is the payload for POST /api/works.
type CreateWorkRequest struct {
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Content       string   `json:"content"`
	Excerpt       string   `json:"excerpt"`
	Category      string   `json:"category"`
	Tags          []string `json:"tags"`
	Language      string   `json:"language"`
	Status        string   `json:"status"`
	Featured      bool     `json:"featured"`
	FeaturedImage *string  `json:"featured_image"`
}

func (r CreateWorkRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.RuneLength(1, 200).Error("title cannot exceed 200 characters"),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
		),
		validation.Field(&r.Excerpt,
			validation.RuneLength(0, 300).Error("excerpt cannot exceed 300 characters"),
		),
		validation.Field(&r.Category,
			validation.In("", CategoryPoem.String(), CategoryStory.String(), CategoryEssay.String(), CategoryOther.String()).
				Error("category must be one of poem, story, essay, other"),
		),
		validation.Field(&r.Language,
			validation.In("", LanguageHindi.String(), LanguageEnglish.String(), LanguageBilingual.String()).
				Error("language must be one of hindi, english, bilingual"),
		),
		validation.Field(&r.Status,
			validation.In("", StatusDraft.String(), StatusPublished.String()).
				Error("status must be draft or published"),
		),
	)
}

// ToWork applies defaults and the slug/excerpt/featured derivations, turning
// a request into a persistable Work. A caller-supplied slug is re-run
// through the server-side slug rule; it is never trusted as-is.
func (r CreateWorkRequest) ToWork() *Work {
	w := &Work{
		ID:            uuid.New(),
		Title:         r.Title,
		Content:       r.Content,
		Excerpt:       r.Excerpt,
		Category:      Category(r.Category),
		Language:      Language(r.Language),
		Status:        Status(r.Status),
		Featured:      r.Featured,
		FeaturedImage: r.FeaturedImage,
	}

	if w.Category == "" {
		w.Category = CategoryPoem
	}
	if w.Language == "" {
		w.Language = LanguageEnglish
	}
	if w.Status == "" {
		w.Status = StatusDraft
	}

	if r.Slug != "" {
		w.Slug = utils.SlugWithFallback(r.Slug, "work")
	} else {
		w.Slug = utils.SlugWithFallback(r.Title, "work")
	}

	if w.Excerpt == "" && w.Content != "" {
		w.Excerpt = DeriveExcerpt(w.Content)
	}

	tags, tagged := NormalizeTags(r.Tags)
	w.Tags = tags
	if tagged {
		w.Featured = true
	}

	return w
}

// UpdateWorkRequest is the payload for PUT /api/works/:id.
// Pointer fields distinguish "not sent" from zero values; absent fields are
// left untouched (last writer wins, no concurrency token).
type UpdateWorkRequest struct {
	Title         *string   `json:"title"`
	Slug          *string   `json:"slug"`
	Content       *string   `json:"content"`
	Excerpt       *string   `json:"excerpt"`
	Category      *string   `json:"category"`
	Tags          *[]string `json:"tags"`
	Language      *string   `json:"language"`
	Status        *string   `json:"status"`
	Featured      *bool     `json:"featured"`
	FeaturedImage *string   `json:"featured_image"`
}

func (r UpdateWorkRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be empty"),
			validation.RuneLength(1, 200).Error("title cannot exceed 200 characters"),
		),
		validation.Field(&r.Content,
			validation.NilOrNotEmpty.Error("content cannot be empty"),
		),
		validation.Field(&r.Excerpt,
			validation.RuneLength(0, 300).Error("excerpt cannot exceed 300 characters"),
		),
		validation.Field(&r.Category,
			validation.In(CategoryPoem.String(), CategoryStory.String(), CategoryEssay.String(), CategoryOther.String()).
				Error("category must be one of poem, story, essay, other"),
		),
		validation.Field(&r.Language,
			validation.In(LanguageHindi.String(), LanguageEnglish.String(), LanguageBilingual.String()).
				Error("language must be one of hindi, english, bilingual"),
		),
		validation.Field(&r.Status,
			validation.In(StatusDraft.String(), StatusPublished.String()).
				Error("status must be draft or published"),
		),
	)
}

// Apply merges the request into an existing work.
func (r UpdateWorkRequest) Apply(w *Work) {
	if r.Title != nil {
		w.Title = *r.Title
	}
	if r.Slug != nil {
		w.Slug = utils.SlugWithFallback(*r.Slug, "work")
	}
	if r.Content != nil {
		w.Content = *r.Content
	}
	if r.Excerpt != nil {
		w.Excerpt = *r.Excerpt
	}
	if r.Category != nil {
		w.Category = Category(*r.Category)
	}
	if r.Language != nil {
		w.Language = Language(*r.Language)
	}
	if r.Status != nil {
		w.Status = Status(*r.Status)
	}
	if r.Featured != nil {
		w.Featured = *r.Featured
	}
	if r.FeaturedImage != nil {
		w.FeaturedImage = r.FeaturedImage
	}
	if r.Tags != nil {
		tags, tagged := NormalizeTags(*r.Tags)
		w.Tags = tags
		if tagged {
			w.Featured = true
		}
	}
}

// Filter narrows a work listing. Zero values mean "no filter"; Status
// defaults to published for the public surface and the literal "all" clears
// a filter the same way the query params do.
type Filter struct {
	Status   string `form:"status"`
	Category string `form:"category"`
	Language string `form:"language"`
	Tag      string `form:"tag"`
	Search   string `form:"search"`
}

// Normalize resolves defaults: missing status means published-only.
func (f Filter) Normalize() Filter {
	if f.Status == "" {
		f.Status = StatusPublished.String()
	}
	if f.Status == "all" {
		f.Status = ""
	}
	if f.Category == "all" {
		f.Category = ""
	}
	if f.Language == "all" {
		f.Language = ""
	}
	return f
}

// IsDefault reports whether this is the plain public listing, the only
// variant worth caching.
func (f Filter) IsDefault() bool {
	return f == Filter{Status: StatusPublished.String()}
}
