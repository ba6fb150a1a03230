package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/commutecast/backend/shared/middleware"
)

// 루트 목록 조회
// @Router /v1/routes/fetch [get]
// @Summary List a user's commute routes
// @Description Returns the caller's profile and every route with its
// @Description latest forecast status.
// @Param Authorization header string true "Bearer {access_token}"
// @Produce json
// @Success 200 {object} response.ResFetchRoutes
// @Failure 401 {object} error
// @Failure 404 {object} error
// @Failure 500 {object} error
// @Tags route
func (h *RouteHandler) FetchRoutes(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid user ID in token")
	}

	res, err := h.UseCase.FetchRoutes(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, res)
}
