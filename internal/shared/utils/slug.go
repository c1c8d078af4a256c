package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
)

var (
	spaceRun  = regexp.MustCompile(`\s+`)
	hyphenRun = regexp.MustCompile(`-+`)
)

// GenerateSlug derives a URL slug from a title.
// Unicode-aware: letters and digits of any script are preserved (a Devanagari
// title keeps its Devanagari letters), everything else except spaces and
// hyphens is stripped. Returns "" when the title has no usable characters.
func GenerateSlug(title string) string {
	lower := strings.ToLower(strings.TrimSpace(title))

	// Keep Unicode letters, numbers, spaces and hyphens. Combining marks are
	// kept as well: Devanagari vowel signs are marks, and dropping them
	// would mangle every Hindi title.
	var b strings.Builder
	for _, r := range lower {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r):
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-':
			b.WriteRune(r)
		}
	}

	s := spaceRun.ReplaceAllString(b.String(), "-")
	s = hyphenRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SlugWithFallback derives a slug and, when the title yields nothing (all
// punctuation/symbols), substitutes a timestamp-suffixed placeholder so the
// record still gets a non-empty, collision-resistant slug.
func SlugWithFallback(title, entity string) string {
	if slug := GenerateSlug(title); slug != "" {
		return slug
	}
	return fmt.Sprintf("%s-%d", entity, time.Now().UnixMilli())
}
