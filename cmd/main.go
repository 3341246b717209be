package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"blognews-service/api"
	"blognews-service/auth"
	"blognews-service/config"
	"blognews-service/news"
	"blognews-service/store"
	"blognews-service/worker"

	"github.com/nats-io/nats.go"
)

func main() {
	log.Println("Starting blognews service...")

	cfg := config.Get()

	// NATS carries refresh requests between the API and the headlines
	// worker. The service still runs without it; refreshes then stay
	// in-process.
	var nc *nats.Conn
	conn, err := nats.Connect(cfg.NATSUrl)
	if err != nil {
		log.Printf("[WARN] NATS unavailable (%v), refresh requests will be handled in-process", err)
	} else {
		nc = conn
		defer nc.Close()
		log.Println("Connected to NATS")
	}

	blogStore := store.NewBlogStore()
	newsClient := news.NewClientWithBaseURL(cfg.GNewsAPIKey, cfg.GNewsBaseURL)
	w := worker.NewWorker(newsClient, nc, cfg.DefaultCountry, cfg.PageSize, cfg.RefreshInterval)

	verifier := auth.NewMockVerifier(cfg.LoginLatency)
	sessions := auth.NewSessionManager()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal, stopping...")
		cancel()
	}()

	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			log.Printf("[ERROR] Headlines worker stopped: %v", err)
		}
	}()

	router := api.Setup(
		api.NewPostHandler(blogStore),
		api.NewNewsHandler(newsClient, w, cfg.DefaultCountry, cfg.PageSize),
		api.NewAuthHandler(verifier, sessions, w),
		sessions,
	)

	log.Printf("Blognews API is running at %s", cfg.ListenAddr)
	if err := router.Run(cfg.ListenAddr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
