package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code", "service"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "service"},
	)

	// Business metrics for the content store
	PostsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "blog_posts_created_total",
			Help: "Total number of blog posts created",
		},
	)

	CommentsAdded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "blog_comments_added_total",
			Help: "Total number of comments added to posts",
		},
	)

	LikesRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_likes_recorded_total",
			Help: "Total number of likes recorded",
		},
		[]string{"kind"},
	)

	// News aggregation metrics
	NewsArticlesFetched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_articles_fetched_total",
			Help: "Total number of news articles fetched",
		},
		[]string{"endpoint", "status"},
	)

	NewsRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_refreshes_total",
			Help: "Total number of headline cache refreshes",
		},
		[]string{"trigger", "status"},
	)
)
