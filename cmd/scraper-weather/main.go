package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/commutecast/backend/config"
	"github.com/commutecast/backend/internal/cityindex"
	delayrepo "github.com/commutecast/backend/internal/delay/repository"
	"github.com/commutecast/backend/internal/metrics"
	weatherclient "github.com/commutecast/backend/internal/providers/weather"
	weatherscraper "github.com/commutecast/backend/internal/scraper/weather"
	"github.com/commutecast/backend/internal/store/dynamo"
	"github.com/commutecast/backend/shared/logger"
)

// main runs a single nightly weather-scrape pass, intended to be invoked
// by an external 23:00 UTC schedule trigger (cron, EventBridge rule) once
// per invocation rather than looping internally.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	logger.Init(cfg.LogLevel)
	defer logger.Sync()
	metrics.Init()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := dynamo.New(ctx, cfg.AWS.Region)
	if err != nil {
		logger.Fatal("failed to initialize dynamodb client", zap.Error(err))
	}

	cities := cityindex.NewRepository(db, cfg.AWS.CityIndexTable)
	delays := delayrepo.NewRepository(db, cfg.AWS.DelayTable)
	client := weatherclient.NewClient(cfg.Provider.WeatherBaseURL, cfg.Provider.HTTPTimeout)
	scraper := weatherscraper.New(cities, client, delays)

	start := time.Now()
	if err := scraper.Run(ctx); err != nil {
		metrics.ScrapeErrors.WithLabelValues("weather").Inc()
		logger.Fatal("weather scrape run failed", zap.Error(err))
	}
	metrics.ScrapeDuration.WithLabelValues("weather").Observe(time.Since(start).Seconds())

	logger.Info("weather scrape completed", zap.Duration("elapsed", time.Since(start)))
}
