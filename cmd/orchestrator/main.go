package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/commutecast/backend/config"
	"github.com/commutecast/backend/internal/lock"
	"github.com/commutecast/backend/internal/metrics"
	"github.com/commutecast/backend/internal/orchestrator"
	"github.com/commutecast/backend/internal/queue"
	"github.com/commutecast/backend/internal/store/dynamo"
	"github.com/commutecast/backend/shared/logger"
)

// main runs one orchestrator pass: acquire the nightly lock, scan
// schedules, chunk, and publish. Meant to be invoked once per 00:00 UTC
// schedule trigger; the lock itself is what makes a second, near-concurrent
// invocation a safe no-op.
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

	q, err := queue.New(ctx, cfg.AWS.Region, cfg.AWS.QueueURL)
	if err != nil {
		logger.Fatal("failed to initialize queue client", zap.Error(err))
	}

	lockClient, err := lock.New(ctx, cfg.AWS.Region, cfg.AWS.LockParamName, cfg.AWS.LockStaleAfter)
	if err != nil {
		logger.Fatal("failed to initialize lock client", zap.Error(err))
	}

	o := orchestrator.New(db, cfg.AWS.RouteTable, q, lockClient)

	start := time.Now()
	if err := o.Run(ctx); err != nil {
		logger.Fatal("orchestrator run failed", zap.Error(err))
	}
	logger.Info("orchestrator run completed", zap.Duration("elapsed", time.Since(start)))
}
