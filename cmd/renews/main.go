package main

import (
	"log"

	"renews/internal/api"
	"renews/internal/config"
	"renews/internal/geo"
	"renews/internal/logger"
	"renews/internal/news"
	"renews/internal/ratelimit"
	"renews/internal/retry"
	"renews/internal/rss"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger.Init(cfg.Debug)

	feeds, err := rss.LoadFeeds(cfg.FeedsConfigPath)
	if err != nil {
		log.Fatalf("load feeds config: %v", err)
	}
	logger.Info("feeds loaded", "count", len(feeds), "path", cfg.FeedsConfigPath)

	fetcher := rss.NewFetcher(cfg.UserAgent, cfg.FetchTimeout, retry.Config{
		MaxAttempts: cfg.RetryAttempts,
		Delay:       cfg.RetryDelay,
	})

	limiter := ratelimit.NewFetchLimiter(cfg.FetchConcurrency)
	aggregator := news.NewAggregator(feeds, fetcher, geo.Default(), limiter)

	server := api.NewServer(aggregator, cfg.MaxArticles)
	router := server.NewRouter()

	logger.Info("starting server", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
