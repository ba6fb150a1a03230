package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/commutecast/backend/config"
	"github.com/commutecast/backend/internal/cityindex"
	delayrepo "github.com/commutecast/backend/internal/delay/repository"
	eventsclient "github.com/commutecast/backend/internal/providers/events"
	eventsscraper "github.com/commutecast/backend/internal/scraper/events"
	"github.com/commutecast/backend/internal/secret"
	"github.com/commutecast/backend/internal/metrics"
	"github.com/commutecast/backend/internal/store/dynamo"
	"github.com/commutecast/backend/shared/logger"
)

// main runs a single nightly event-scrape pass. Like the weather
// scraper's entrypoint, it is meant to be invoked once per 23:00 UTC
// schedule trigger, not to loop internally.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	logger.Init(cfg.LogLevel)
	defer logger.Sync()
	metrics.Init()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	db, err := dynamo.New(ctx, cfg.AWS.Region)
	if err != nil {
		logger.Fatal("failed to initialize dynamodb client", zap.Error(err))
	}

	apiKeyResolver, err := secret.NewResolver(ctx, cfg.AWS.Region, cfg.AWS.EventAPIKeyParam)
	if err != nil {
		logger.Fatal("failed to initialize secret resolver", zap.Error(err))
	}
	apiKey, err := apiKeyResolver.Resolve(ctx)
	if err != nil {
		logger.Fatal("failed to resolve event provider api key", zap.Error(err))
	}

	cities := cityindex.NewRepository(db, cfg.AWS.CityIndexTable)
	delays := delayrepo.NewRepository(db, cfg.AWS.DelayTable)
	client := eventsclient.NewClient(cfg.Provider.EventBaseURL, apiKey, cfg.Provider.HTTPTimeout)
	scraper := eventsscraper.New(cities, client, delays)

	start := time.Now()
	if err := scraper.Run(ctx); err != nil {
		metrics.ScrapeErrors.WithLabelValues("events").Inc()
		logger.Fatal("event scrape run failed", zap.Error(err))
	}
	metrics.ScrapeDuration.WithLabelValues("events").Observe(time.Since(start).Seconds())

	logger.Info("event scrape completed", zap.Duration("elapsed", time.Since(start)))
}
