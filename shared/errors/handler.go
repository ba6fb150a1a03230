package errors

import (
	"net/http"

	"github.com/commutecast/backend/shared/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CustomErrorHandler centralises error-to-response translation, installed
// as Echo's HTTPErrorHandler. Mirrors shared/errors/handler.go's
// AppError/echo.HTTPError/unknown-error triage.
func CustomErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	errCode := ErrCodeInternalServer
	message := "internal server error"

	switch e := err.(type) {
	case *AppError:
		code = e.HTTPStatus
		errCode = e.Code
		message = e.Message
		if code >= 500 {
			logger.Error("application error",
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
				zap.String("error_code", errCode),
				zap.Error(e.Err))
		} else {
			logger.Warn("client error",
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
				zap.String("error_code", errCode),
				zap.String("message", message))
		}
	case *echo.HTTPError:
		code = e.Code
		if msg, ok := e.Message.(string); ok {
			message = msg
		}
		errCode = mapHTTPStatusToCode(code)
		logger.Warn("http error",
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			zap.Int("status_code", code))
	default:
		logger.Error("unknown error",
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			zap.Error(err))
	}

	_ = c.JSON(code, map[string]interface{}{
		"error": map[string]interface{}{
			"code":    errCode,
			"message": message,
		},
	})
}

func mapHTTPStatusToCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeBadRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	default:
		return ErrCodeInternalServer
	}
}
