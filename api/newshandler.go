package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"blognews-service/metrics"
	"blognews-service/model"
	"blognews-service/news"
	"blognews-service/worker"

	"github.com/gin-gonic/gin"
)

// NewsFetcher is the slice of the news client the handlers need.
type NewsFetcher interface {
	TopHeadlines(ctx context.Context, country string, max int) ([]model.Article, error)
	ByCategory(ctx context.Context, category, country string, max int) ([]model.Article, error)
	Search(ctx context.Context, query, country string, max int) ([]model.Article, error)
}

type NewsHandler struct {
	fetcher        NewsFetcher
	worker         *worker.Worker
	defaultCountry string
	pageSize       int
}

func NewNewsHandler(fetcher NewsFetcher, w *worker.Worker, defaultCountry string, pageSize int) *NewsHandler {
	return &NewsHandler{
		fetcher:        fetcher,
		worker:         w,
		defaultCountry: defaultCountry,
		pageSize:       pageSize,
	}
}

// Headlines serves the worker's cached result set. The cache is the
// fallback the reader keeps when a later fetch fails.
func (h *NewsHandler) Headlines(c *gin.Context) {
	articles, lastUpdated := h.worker.Headlines()
	c.JSON(http.StatusOK, gin.H{
		"articles":    articles,
		"lastUpdated": lastUpdated,
	})
}

func (h *NewsHandler) ByCategory(c *gin.Context) {
	category := c.Param("category")
	country := c.DefaultQuery("country", h.defaultCountry)

	articles, err := h.fetcher.ByCategory(c.Request.Context(), category, country, h.maxFrom(c))
	if err != nil {
		h.newsError(c, "category", err)
		return
	}

	metrics.NewsArticlesFetched.WithLabelValues("category", "ok").Add(float64(len(articles)))
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

func (h *NewsHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}
	country := c.DefaultQuery("country", h.defaultCountry)

	articles, err := h.fetcher.Search(c.Request.Context(), query, country, h.maxFrom(c))
	if err != nil {
		h.newsError(c, "search", err)
		return
	}

	metrics.NewsArticlesFetched.WithLabelValues("search", "ok").Add(float64(len(articles)))
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// Live fetches headlines directly from the provider, bypassing the cache.
func (h *NewsHandler) Live(c *gin.Context) {
	country := c.DefaultQuery("country", h.defaultCountry)

	articles, err := h.fetcher.TopHeadlines(c.Request.Context(), country, h.maxFrom(c))
	if err != nil {
		h.newsError(c, "headlines", err)
		return
	}

	metrics.NewsArticlesFetched.WithLabelValues("headlines", "ok").Add(float64(len(articles)))
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

func (h *NewsHandler) Refresh(c *gin.Context) {
	country := c.DefaultQuery("country", h.defaultCountry)
	if err := h.worker.RequestRefresh(country, "manual"); err != nil {
		log.Printf("[ERROR] Failed to request refresh: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "refresh requested", "country": country})
}

func (h *NewsHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": news.Categories})
}

func (h *NewsHandler) maxFrom(c *gin.Context) int {
	if raw := c.Query("max"); raw != "" {
		if max, err := strconv.Atoi(raw); err == nil && max > 0 {
			return max
		}
	}
	return h.pageSize
}

func (h *NewsHandler) newsError(c *gin.Context, endpoint string, err error) {
	metrics.NewsArticlesFetched.WithLabelValues(endpoint, "error").Inc()
	if errors.Is(err, news.ErrUnknownCategory) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log.Printf("[ERROR] News fetch failed (%s): %v", endpoint, err)
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}
