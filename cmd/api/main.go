// @title Commute Forecast API
// @version 1.0
// @description Route lifecycle API for the commute forecasting backend.
// @BasePath /
// @schemes http
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/commutecast/backend/config"
	_ "github.com/commutecast/backend/docs"
	"github.com/commutecast/backend/internal/health"
	"github.com/commutecast/backend/internal/metrics"
	routehandler "github.com/commutecast/backend/internal/route/handler"
	routerepo "github.com/commutecast/backend/internal/route/repository"
	routeusecase "github.com/commutecast/backend/internal/route/usecase"
	"github.com/commutecast/backend/internal/store/dynamo"
	"github.com/commutecast/backend/shared/errors"
	sharedjwt "github.com/commutecast/backend/shared/jwt"
	"github.com/commutecast/backend/shared/logger"
	"github.com/commutecast/backend/shared/middleware"
	"github.com/commutecast/backend/shared/validation"
)

const useCaseTimeout = 8 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	logger.Init(cfg.LogLevel)
	defer logger.Sync()
	metrics.Init()
	sharedjwt.Init(cfg.JWT.Secret)

	ctx := context.Background()
	db, err := dynamo.New(ctx, cfg.AWS.Region)
	if err != nil {
		logger.Fatal("failed to initialize dynamodb client", zap.Error(err))
	}

	routeRepo := routerepo.NewRepository(db, cfg.AWS.RouteTable, cfg.AWS.CityIndexTable)

	routeUseCase := routeusecase.NewRouteUseCase(routeRepo, useCaseTimeout)
	profileUseCase := routeusecase.NewProfileUseCase(routeRepo, useCaseTimeout)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()
	e.HTTPErrorHandler = errors.CustomErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.Recovery())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.CORS(cfg.CORS.AllowedOrigins, cfg.Env))

	limiter := middleware.NewRateLimiter(20, 40)
	defer limiter.Close()
	e.Use(limiter.Middleware())

	healthChecker := health.NewChecker(db, cfg.AWS.RouteTable, nil, "dev")
	e.GET("/health", echo.WrapHandler(http.HandlerFunc(healthChecker.Handler)))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	routehandler.NewRouteHandler(e, routeUseCase)
	routehandler.NewProfileHandler(e, profileUseCase)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()
	logger.Info("commutecast API started", zap.String("port", cfg.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
}
