package news

import (
	"fmt"
	"hash/fnv"
	"net/url"
	"strings"

	"blognews-service/model"

	"github.com/samber/lo"
)

const removedTitle = "[Removed]"

var avatarColors = []string{"indigo", "purple", "pink", "blue", "green", "yellow", "red"}

// tagRules maps derived tags to the keywords that imply them. Matching is
// a case-insensitive substring check over title plus description.
var tagRules = []struct {
	tag      string
	keywords []string
}{
	{"India", []string{"india", "indian", "delhi", "mumbai", "bangalore", "chennai", "kolkata", "hyderabad"}},
	{"Technology", []string{"tech", "technology", "ai", "artificial intelligence", "startup"}},
	{"Business", []string{"business", "economy", "finance", "market", "rupee", "sensex", "nifty"}},
	{"Science", []string{"science", "research", "study", "isro"}},
	{"Health", []string{"health", "medical", "medicine", "covid", "vaccine"}},
	{"Sports", []string{"sport", "football", "basketball", "soccer", "cricket", "hockey", "ipl"}},
	{"Entertainment", []string{"entertainment", "movie", "music", "celebrity", "film", "bollywood", "cricket", "ipl"}},
	{"Politics", []string{"politics", "government", "election", "minister", "modi", "parliament", "bjp", "congress"}},
}

// normalize drops incomplete provider records and maps the survivors into
// Articles. Records with no title, the provider's "[Removed]" sentinel, or
// no source name are dropped.
func normalize(raw []rawArticle) []model.Article {
	kept := lo.Filter(raw, func(a rawArticle, _ int) bool {
		return a.Title != "" && a.Title != removedTitle && a.Source.Name != ""
	})
	return lo.Map(kept, func(a rawArticle, _ int) model.Article {
		return transform(a)
	})
}

func transform(a rawArticle) model.Article {
	sourceName := a.Source.Name
	content := a.Content
	if content == "" {
		content = a.Description
	}
	excerpt := a.Description
	if excerpt == "" {
		if len(content) > 200 {
			excerpt = content[:200] + "..."
		} else {
			excerpt = content
		}
	}

	return model.Article{
		ID:    articleID(a.URL),
		Title: a.Title,
		Author: model.Author{
			ID:     "author-" + strings.ToLower(strings.ReplaceAll(sourceName, " ", "")),
			Name:   sourceName,
			Avatar: avatarURL(sourceName),
		},
		Content:   content,
		Excerpt:   excerpt,
		CreatedAt: a.PublishedAt,
		UpdatedAt: a.PublishedAt,
		Tags:      extractTags(a.Title, a.Description, sourceName),
		ReadTime:  model.EstimateReadTime(content),
		Image:     a.Image,
		URL:       a.URL,
		Source:    sourceName,
	}
}

// articleID derives a stable identifier from the article's canonical URL,
// so the same article fetched twice resolves to the same identity.
func articleID(rawURL string) string {
	h := fnv.New64a()
	h.Write([]byte(rawURL))
	return fmt.Sprintf("news-%016x", h.Sum64())
}

func avatarURL(authorName string) string {
	if authorName == "" {
		authorName = "Anonymous"
	}
	h := fnv.New32a()
	h.Write([]byte(authorName))
	color := avatarColors[h.Sum32()%uint32(len(avatarColors))]
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=%s&color=white&size=150",
		url.QueryEscape(authorName), color)
}

// extractTags derives a best-effort tag set from keyword matching. The
// generic "News" tag and the source name are always present; duplicates
// collapse with set semantics.
func extractTags(title, description, sourceName string) []string {
	tags := []string{"News"}
	if sourceName != "" {
		tags = append(tags, sourceName)
	}

	haystack := strings.ToLower(title + " " + description)
	for _, rule := range tagRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(haystack, keyword) {
				tags = append(tags, rule.tag)
				break
			}
		}
	}

	return lo.Uniq(tags)
}
