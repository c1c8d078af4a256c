package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tts := map[string]struct {
		Title    string
		Expected string
	}{
		"simple":              {"Test Poem", "test-poem"},
		"uppercase":           {"HELLO World", "hello-world"},
		"punctuation":         {"Hello, World!", "hello-world"},
		"apostrophe":          {"Winter's Tale", "winters-tale"},
		"whitespace run":      {"a   b\t c", "a-b-c"},
		"existing hyphens":    {"already-a--slug", "already-a-slug"},
		"leading trailing":    {"  - Hello -  ", "hello"},
		"devanagari":          {"मेरी कविता", "मेरी-कविता"},
		"mixed scripts":       {"Kavita कविता 2024", "kavita-कविता-2024"},
		"only punctuation":    {"!!! ... ???", ""},
		"only symbols":        {"@#$%^&*", ""},
		"empty":               {"", ""},
		"numbers kept":        {"Top 10 Poems", "top-10-poems"},
		"unicode punctuation": {"कविता — एक", "कविता-एक"},
	}

	for name, tt := range tts {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.Expected, GenerateSlug(tt.Title))
		})
	}
}

func TestSlugWithFallback(t *testing.T) {
	t.Run("uses derived slug when possible", func(t *testing.T) {
		assert.Equal(t, "test-poem", SlugWithFallback("Test Poem", "work"))
	})

	t.Run("falls back for punctuation-only titles", func(t *testing.T) {
		slug := SlugWithFallback("!!!", "work")
		assert.NotEmpty(t, slug)
		assert.True(t, strings.HasPrefix(slug, "work-"), "got %q", slug)
	})

	t.Run("fallbacks are collision resistant", func(t *testing.T) {
		a := SlugWithFallback("???", "book")
		assert.True(t, strings.HasPrefix(a, "book-"))
		// Timestamp suffix keeps the slug non-empty and unique enough for
		// the unique index to do the rest.
		assert.Greater(t, len(a), len("book-"))
	})
}
