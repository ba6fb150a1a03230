package middleware

import (
	"strings"

	"github.com/commutecast/backend/shared/logger"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// CORS returns environment-aware CORS middleware: permissive in
// development, requiring an explicit allow-list in production. Grounded
// on shared/middleware/cors.go.
func CORS(allowedOrigins string, env string) echo.MiddlewareFunc {
	var origins []string
	if allowedOrigins != "" {
		for _, o := range strings.Split(allowedOrigins, ",") {
			origins = append(origins, strings.TrimSpace(o))
		}
	}

	isDevelopment := env == "" || env == "development" || env == "dev"
	if isDevelopment {
		if len(origins) == 0 {
			origins = []string{"*"}
			logger.Warn("CORS not configured, defaulting to wildcard in development")
		}
	} else if len(origins) == 0 {
		logger.Fatal("CORS_ALLOWED_ORIGINS must be configured in production")
	}

	logger.Info("CORS configured", zap.Strings("allowed_origins", origins))

	return echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.PATCH, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, echo.HeaderXRequestID},
		ExposeHeaders:    []string{echo.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           86400,
	})
}
