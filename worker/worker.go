package worker

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"blognews-service/metrics"
	"blognews-service/model"

	"github.com/nats-io/nats.go"
)

const (
	SubjectRefreshRequest = "news.refresh.request"
	SubjectRefreshResult  = "news.refresh.result"
)

type RefreshRequest struct {
	Country string `json:"country"`
	Trigger string `json:"trigger"`
}

type RefreshResult struct {
	Country      string    `json:"country"`
	ArticleCount int       `json:"articleCount"`
	Success      bool      `json:"success"`
	Error        string    `json:"error,omitempty"`
	RefreshedAt  time.Time `json:"refreshedAt"`
	Trigger      string    `json:"trigger"`
}

type HeadlinesFetcher interface {
	TopHeadlines(ctx context.Context, country string, max int) ([]model.Article, error)
}

// Worker keeps a warm in-memory cache of the latest normalized headlines.
// It refreshes on a fixed interval and on demand via the NATS refresh
// subject; a failed refresh keeps the previous result set.
type Worker struct {
	fetcher  HeadlinesFetcher
	nc       *nats.Conn
	country  string
	pageSize int
	interval time.Duration

	mu           sync.RWMutex
	articles     []model.Article
	lastUpdated  time.Time
	installedSeq uint64

	seqMu   sync.Mutex
	nextSeq uint64
}

// NewWorker creates a worker. nc may be nil, in which case refresh
// requests are handled in-process and no results are published.
func NewWorker(fetcher HeadlinesFetcher, nc *nats.Conn, country string, pageSize int, interval time.Duration) *Worker {
	return &Worker{
		fetcher:  fetcher,
		nc:       nc,
		country:  country,
		pageSize: pageSize,
		interval: interval,
	}
}

// Start blocks until ctx is cancelled, refreshing immediately and then on
// every tick. Refresh requests arriving over NATS are served in between.
func (w *Worker) Start(ctx context.Context) error {
	if w.nc != nil {
		sub, err := w.nc.Subscribe(SubjectRefreshRequest, func(msg *nats.Msg) {
			var req RefreshRequest
			if err := json.Unmarshal(msg.Data, &req); err != nil {
				log.Printf("[ERROR] Failed to unmarshal refresh request: %v", err)
				return
			}
			country := req.Country
			if country == "" {
				country = w.country
			}
			go w.Refresh(ctx, country, req.Trigger)
		})
		if err != nil {
			return err
		}
		defer sub.Unsubscribe()
		log.Printf("[INFO] Subscribed to %s", SubjectRefreshRequest)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.Refresh(ctx, w.country, "startup")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.Refresh(ctx, w.country, "interval")
		}
	}
}

// Refresh fetches fresh headlines and installs them in the cache. Each
// refresh carries a sequence number taken at issue time; a result is only
// installed while no result from a later refresh has landed, so an
// out-of-order resolution of overlapping fetches cannot clobber newer data.
func (w *Worker) Refresh(ctx context.Context, country, trigger string) {
	seq := w.claimSeq()

	articles, err := w.fetcher.TopHeadlines(ctx, country, w.pageSize)
	if err != nil {
		log.Printf("[ERROR] Headline refresh failed (trigger=%s): %v", trigger, err)
		metrics.NewsRefreshes.WithLabelValues(trigger, "error").Inc()
		w.publishResult(RefreshResult{
			Country:     country,
			Success:     false,
			Error:       err.Error(),
			RefreshedAt: time.Now().UTC(),
			Trigger:     trigger,
		})
		return
	}

	w.mu.Lock()
	if seq > w.installedSeq {
		w.installedSeq = seq
		w.articles = articles
		w.lastUpdated = time.Now().UTC()
	} else {
		log.Printf("[WARN] Discarding stale refresh result (trigger=%s)", trigger)
	}
	w.mu.Unlock()

	metrics.NewsRefreshes.WithLabelValues(trigger, "ok").Inc()
	log.Printf("[INFO] Headline cache refreshed with %d articles (trigger=%s)", len(articles), trigger)

	w.publishResult(RefreshResult{
		Country:      country,
		ArticleCount: len(articles),
		Success:      true,
		RefreshedAt:  time.Now().UTC(),
		Trigger:      trigger,
	})
}

// RequestRefresh asks for an asynchronous refresh. With NATS connected
// the request goes over the bus; otherwise it is served in-process.
func (w *Worker) RequestRefresh(country, trigger string) error {
	if country == "" {
		country = w.country
	}
	if w.nc == nil {
		go w.Refresh(context.Background(), country, trigger)
		return nil
	}
	data, err := json.Marshal(RefreshRequest{Country: country, Trigger: trigger})
	if err != nil {
		return err
	}
	return w.nc.Publish(SubjectRefreshRequest, data)
}

// Headlines returns the cached result set and when it was installed.
func (w *Worker) Headlines() ([]model.Article, time.Time) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]model.Article, len(w.articles))
	copy(out, w.articles)
	return out, w.lastUpdated
}

func (w *Worker) claimSeq() uint64 {
	w.seqMu.Lock()
	defer w.seqMu.Unlock()
	w.nextSeq++
	return w.nextSeq
}

func (w *Worker) publishResult(result RefreshResult) {
	if w.nc == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		log.Printf("[ERROR] Failed to marshal refresh result: %v", err)
		return
	}
	if err := w.nc.Publish(SubjectRefreshResult, data); err != nil {
		log.Printf("[ERROR] Failed to publish refresh result: %v", err)
	}
}
