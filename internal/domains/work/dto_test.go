package work

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWorkRequestValidate(t *testing.T) {
	valid := CreateWorkRequest{
		Title:   "Test Poem",
		Content: "Line one\nLine two",
	}
	assert.NoError(t, valid.Validate())

	tests := map[string]CreateWorkRequest{
		"missing title":    {Content: "body"},
		"missing content":  {Title: "t"},
		"bad category":     {Title: "t", Content: "c", Category: "novel"},
		"bad language":     {Title: "t", Content: "c", Language: "french"},
		"bad status":       {Title: "t", Content: "c", Status: "archived"},
		"excerpt too long": {Title: "t", Content: "c", Excerpt: string(make([]rune, 301))},
	}

	for name, req := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, req.Validate())
		})
	}
}

func TestCreateWorkRequestToWorkDefaults(t *testing.T) {
	req := CreateWorkRequest{
		Title:   "Test Poem",
		Content: "Line one\nLine two",
	}

	w := req.ToWork()

	assert.NotEqual(t, "", w.ID.String())
	assert.Equal(t, "test-poem", w.Slug)
	assert.Equal(t, "Line one Line two...", w.Excerpt)
	assert.Equal(t, CategoryPoem, w.Category)
	assert.Equal(t, LanguageEnglish, w.Language)
	assert.Equal(t, StatusDraft, w.Status)
	assert.False(t, w.Featured)
}

func TestCreateWorkRequestToWorkExplicitValues(t *testing.T) {
	req := CreateWorkRequest{
		Title:    "मेरी कविता",
		Content:  "पंक्ति",
		Excerpt:  "custom excerpt",
		Category: "story",
		Language: "hindi",
		Status:   "published",
		Featured: true,
	}

	w := req.ToWork()

	assert.Equal(t, "मेरी-कविता", w.Slug)
	assert.Equal(t, "custom excerpt", w.Excerpt)
	assert.Equal(t, CategoryStory, w.Category)
	assert.Equal(t, LanguageHindi, w.Language)
	assert.Equal(t, StatusPublished, w.Status)
	assert.True(t, w.Featured)
}

func TestCreateWorkRequestFoldsFeaturedTag(t *testing.T) {
	req := CreateWorkRequest{
		Title:   "t",
		Content: "c",
		Tags:    []string{"spiritual", "featured"},
	}

	w := req.ToWork()

	assert.True(t, w.Featured)
	assert.Equal(t, []string{"spiritual"}, []string(w.Tags))
}

func TestCreateWorkRequestCallerSlugNormalized(t *testing.T) {
	req := CreateWorkRequest{
		Title:   "Anything",
		Content: "c",
		Slug:    "My Custom SLUG!",
	}

	assert.Equal(t, "my-custom-slug", req.ToWork().Slug)
}

func TestUpdateWorkRequestApply(t *testing.T) {
	w := &Work{
		Title:    "old",
		Slug:     "old",
		Content:  "old content",
		Category: CategoryPoem,
		Language: LanguageEnglish,
		Status:   StatusDraft,
	}

	title := "new title"
	status := "published"
	req := UpdateWorkRequest{
		Title:  &title,
		Status: &status,
	}
	require.NoError(t, req.Validate())

	req.Apply(w)

	assert.Equal(t, "new title", w.Title)
	assert.Equal(t, StatusPublished, w.Status)
	// Untouched fields survive
	assert.Equal(t, "old", w.Slug)
	assert.Equal(t, "old content", w.Content)
	assert.Equal(t, CategoryPoem, w.Category)
}

func TestUpdateWorkRequestApplyFeaturedTag(t *testing.T) {
	w := &Work{Featured: false}
	tags := []string{"featured", "new"}

	(UpdateWorkRequest{Tags: &tags}).Apply(w)

	assert.True(t, w.Featured)
	assert.Equal(t, []string{"new"}, []string(w.Tags))
}

func TestFilterNormalize(t *testing.T) {
	tests := map[string]struct {
		in   Filter
		want Filter
	}{
		"empty defaults to published": {
			in:   Filter{},
			want: Filter{Status: "published"},
		},
		"all clears status": {
			in:   Filter{Status: "all"},
			want: Filter{},
		},
		"all clears category and language": {
			in:   Filter{Status: "draft", Category: "all", Language: "all"},
			want: Filter{Status: "draft"},
		},
		"explicit filters kept": {
			in:   Filter{Status: "draft", Category: "poem", Tag: "x", Search: "y"},
			want: Filter{Status: "draft", Category: "poem", Tag: "x", Search: "y"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Normalize())
		})
	}
}

func TestFilterIsDefault(t *testing.T) {
	assert.True(t, Filter{}.Normalize().IsDefault())
	assert.False(t, Filter{Category: "poem"}.Normalize().IsDefault())
	assert.False(t, Filter{Status: "all"}.Normalize().IsDefault())
}
