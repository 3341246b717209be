package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"blognews-service/model"
)

const defaultBaseURL = "https://gnews.io/api/v4"

// ErrUnknownCategory is returned for categories outside the fixed set.
var ErrUnknownCategory = errors.New("unknown category")

// Categories accepted by the headlines endpoint.
var Categories = []string{
	"general",
	"business",
	"entertainment",
	"health",
	"science",
	"sports",
	"technology",
}

// APIError is returned for any failed aggregator call: a non-2xx response
// from the provider or a transport-level failure.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("news api: HTTP %d: %s", e.StatusCode, e.Message)
	}
	return "news api: " + e.Message
}

// Client is a read-only client for the GNews v4 headlines API. It exposes
// no mutation; every call fetches fresh and normalizes in one pass.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub
// server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

type rawSource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type rawArticle struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	URL         string    `json:"url"`
	Image       string    `json:"image"`
	PublishedAt time.Time `json:"publishedAt"`
	Source      rawSource `json:"source"`
}

type apiResponse struct {
	TotalArticles int          `json:"totalArticles"`
	Articles      []rawArticle `json:"articles"`
}

// TopHeadlines fetches up to max top headlines for the given country.
func (c *Client) TopHeadlines(ctx context.Context, country string, max int) ([]model.Article, error) {
	params := url.Values{}
	params.Set("country", country)
	params.Set("max", fmt.Sprint(max))
	return c.fetch(ctx, "/top-headlines", params)
}

// ByCategory fetches top headlines constrained to one of the fixed
// category set. An unknown category fails before any request is made.
func (c *Client) ByCategory(ctx context.Context, category, country string, max int) ([]model.Article, error) {
	if !validCategory(category) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	params := url.Values{}
	params.Set("country", country)
	params.Set("category", category)
	params.Set("max", fmt.Sprint(max))
	return c.fetch(ctx, "/top-headlines", params)
}

// Search fetches articles matching a free-text query in the given country.
func (c *Client) Search(ctx context.Context, query, country string, max int) ([]model.Article, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("country", country)
	params.Set("max", fmt.Sprint(max))
	return c.fetch(ctx, "/search", params)
}

func (c *Client) fetch(ctx context.Context, path string, params url.Values) ([]model.Article, error) {
	params.Set("apikey", c.apiKey)
	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &APIError{Message: err.Error()}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("[ERROR] News request failed: %v", err)
		return nil, &APIError{Message: "network error: " + err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Printf("[ERROR] News API returned status %d: %s", resp.StatusCode, body)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("[ERROR] Failed to decode news response: %v", err)
		return nil, &APIError{Message: "malformed response: " + err.Error()}
	}

	articles := normalize(payload.Articles)
	log.Printf("[INFO] Fetched %d articles (%d raw) from %s", len(articles), len(payload.Articles), path)
	return articles, nil
}

func validCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
