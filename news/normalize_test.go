package news

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawWith(title, source string) rawArticle {
	return rawArticle{
		Title:       title,
		Description: "some description",
		Content:     "some content",
		URL:         "https://example.com/" + strings.ReplaceAll(title, " ", "-"),
		PublishedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Source:      rawSource{Name: source, URL: "https://example.com"},
	}
}

func TestNormalizeDropsIncompleteRecords(t *testing.T) {
	raw := []rawArticle{
		rawWith("Kept story", "Example News"),
		rawWith("", "Example News"),
		rawWith("[Removed]", "Example News"),
		rawWith("No source story", ""),
	}

	articles := normalize(raw)

	require.Len(t, articles, 1)
	assert.Equal(t, "Kept story", articles[0].Title)
	for _, a := range articles {
		assert.NotEmpty(t, a.Title)
		assert.NotEqual(t, removedTitle, a.Title)
	}
}

func TestTransformFallsBackToDescription(t *testing.T) {
	raw := rawWith("Story", "Example News")
	raw.Content = ""
	raw.Description = "only the description"

	article := transform(raw)

	assert.Equal(t, "only the description", article.Content)
	assert.Equal(t, "only the description", article.Excerpt)
}

func TestTransformTruncatesLongContentForExcerpt(t *testing.T) {
	raw := rawWith("Story", "Example News")
	raw.Description = ""
	raw.Content = strings.Repeat("x", 300)

	article := transform(raw)

	assert.Equal(t, strings.Repeat("x", 200)+"...", article.Excerpt)
}

func TestTransformSynthesizesAuthorFromSource(t *testing.T) {
	article := transform(rawWith("Story", "The Daily Example"))

	assert.Equal(t, "The Daily Example", article.Author.Name)
	assert.Equal(t, "author-thedailyexample", article.Author.ID)
	assert.Contains(t, article.Author.Avatar, "ui-avatars.com")
	assert.Equal(t, "The Daily Example", article.Source)
}

func TestTransformDuplicatesPublishedAt(t *testing.T) {
	article := transform(rawWith("Story", "Example News"))
	assert.Equal(t, article.CreatedAt, article.UpdatedAt)
}

func TestArticleIDIsStablePerURL(t *testing.T) {
	a := transform(rawWith("Same story", "Example News"))
	b := transform(rawWith("Same story", "Example News"))
	c := transform(rawWith("Other story", "Example News"))

	assert.Equal(t, a.ID, b.ID, "same URL resolves to the same identity")
	assert.NotEqual(t, a.ID, c.ID)
	assert.True(t, strings.HasPrefix(a.ID, "news-"))
}

func TestExtractTagsKeywordMatching(t *testing.T) {
	tags := extractTags(
		"AI startup raises funding in Mumbai",
		"The technology company plans a cricket sponsorship",
		"Example News",
	)

	assert.Contains(t, tags, "News")
	assert.Contains(t, tags, "Example News")
	assert.Contains(t, tags, "Technology")
	assert.Contains(t, tags, "India")
	assert.Contains(t, tags, "Sports")
	assert.Contains(t, tags, "Entertainment", "cricket implies entertainment coverage too")
}

func TestExtractTagsDeduplicates(t *testing.T) {
	tags := extractTags("News", "News", "News")

	seen := map[string]int{}
	for _, tag := range tags {
		seen[tag]++
	}
	for tag, n := range seen {
		assert.Equal(t, 1, n, "tag %q appears once", tag)
	}
}

func TestExtractTagsWithoutKeywords(t *testing.T) {
	tags := extractTags("Quiet day everywhere", "", "Example News")
	assert.Equal(t, []string{"News", "Example News"}, tags)
}

func TestReadTimeMatchesStoreFormula(t *testing.T) {
	raw := rawWith("Story", "Example News")
	raw.Content = strings.TrimSpace(strings.Repeat("word ", 250))

	article := transform(raw)
	assert.Equal(t, 2, article.ReadTime)
}
