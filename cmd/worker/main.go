package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/commutecast/backend/config"
	delaycache "github.com/commutecast/backend/internal/delay/cache"
	delayloader "github.com/commutecast/backend/internal/delay/loader"
	delayrepo "github.com/commutecast/backend/internal/delay/repository"
	"github.com/commutecast/backend/internal/health"
	"github.com/commutecast/backend/internal/metrics"
	"github.com/commutecast/backend/internal/queue"
	routerepo "github.com/commutecast/backend/internal/route/repository"
	"github.com/commutecast/backend/internal/store/dynamo"
	"github.com/commutecast/backend/internal/worker/consumer"
	"github.com/commutecast/backend/internal/worker/forecast"
	"github.com/commutecast/backend/shared/logger"
)

const defaultConcurrency = 10

// main runs the long-lived forecast worker process: a bounded pool of
// queue consumers, each processing one chunk message at a time, until a
// termination signal arrives.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	logger.Init(cfg.LogLevel)
	defer logger.Sync()
	metrics.Init()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := dynamo.New(ctx, cfg.AWS.Region)
	if err != nil {
		logger.Fatal("failed to initialize dynamodb client", zap.Error(err))
	}
	q, err := queue.New(ctx, cfg.AWS.Region, cfg.AWS.QueueURL)
	if err != nil {
		logger.Fatal("failed to initialize queue client", zap.Error(err))
	}

	routeRepo := routerepo.NewRepository(db, cfg.AWS.RouteTable, cfg.AWS.CityIndexTable)
	delayRepo := delayrepo.NewRepository(db, cfg.AWS.DelayTable)
	delayCache := delaycache.New(cfg.Redis.Addr, cfg.Redis.Password)
	defer delayCache.Close()
	loader := delayloader.New(delayRepo, delayCache)

	c := consumer.New(q, func() *forecast.Processor {
		return forecast.New(routeRepo, loader)
	}, defaultConcurrency)

	healthChecker := health.NewChecker(db, cfg.AWS.RouteTable, delayCache.Client(), "dev")

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", healthChecker.Handler)
	metricsServer := &http.Server{Addr: ":9090", Handler: mux}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server error", zap.Error(err))
		}
	}()

	runErr := make(chan error, 1)
	go func() { runErr <- c.Run(ctx) }()

	logger.Info("forecast worker started", zap.Int("concurrency", defaultConcurrency))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("shutdown signal received", zap.String("signal", sig.String()))
		cancel()
		<-runErr
	case err := <-runErr:
		if err != nil && err != context.Canceled {
			logger.Error("consumer loop exited", zap.Error(err))
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown error", zap.Error(err))
	}

	logger.Info("forecast worker stopped")
}
