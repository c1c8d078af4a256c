package work

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Category represents valid work categories
type Category string

const (
	CategoryPoem  Category = "poem"
	CategoryStory Category = "story"
	CategoryEssay Category = "essay"
	CategoryOther Category = "other"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryPoem, CategoryStory, CategoryEssay, CategoryOther:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// Language represents valid content languages
type Language string

const (
	LanguageHindi     Language = "hindi"
	LanguageEnglish   Language = "english"
	LanguageBilingual Language = "bilingual"
)

func (l Language) IsValid() bool {
	switch l {
	case LanguageHindi, LanguageEnglish, LanguageBilingual:
		return true
	}
	return false
}

func (l Language) String() string {
	return string(l)
}

// Status represents the publication state
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// Work is a piece of writing: a poem, story or essay.
type Work struct {
	ID      uuid.UUID `json:"id" db:"id"`
	Title   string    `json:"title" db:"title"`
	Slug    string    `json:"slug" db:"slug"`
	Content string    `json:"content" db:"content"`
	Excerpt string    `json:"excerpt" db:"excerpt"`

	Category Category       `json:"category" db:"category"`
	Tags     pq.StringArray `json:"tags" db:"tags"`
	Language Language       `json:"language" db:"language"`
	Status   Status         `json:"status" db:"status"`

	// Featured is an explicit flag; the legacy "featured" tag convention is
	// folded into it on write and never stored in Tags.
	Featured      bool    `json:"featured" db:"featured"`
	FeaturedImage *string `json:"featured_image,omitempty" db:"featured_image"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// excerptLimit is how many characters of content seed an auto-derived excerpt.
const excerptLimit = 150

// DeriveExcerpt builds an excerpt from content: newlines become spaces, the
// first 150 characters are kept, and an ellipsis is appended. Counted in
// runes so multi-byte scripts are never cut mid-character.
func DeriveExcerpt(content string) string {
	flat := strings.ReplaceAll(content, "\n", " ")

	runes := []rune(flat)
	if len(runes) > excerptLimit {
		runes = runes[:excerptLimit]
	}

	return strings.TrimSpace(string(runes)) + "..."
}

// featuredTag is the legacy magic value inside the free-form tag list.
const featuredTag = "featured"

// NormalizeTags strips the legacy "featured" tag from a tag list, reporting
// whether it was present, and drops empty entries. Insertion order of the
// remaining tags is preserved.
func NormalizeTags(tags []string) ([]string, bool) {
	cleaned := make([]string, 0, len(tags))
	featured := false
	seen := make(map[string]bool, len(tags))

	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		if t == featuredTag {
			featured = true
			continue
		}
		seen[t] = true
		cleaned = append(cleaned, t)
	}

	return cleaned, featured
}
