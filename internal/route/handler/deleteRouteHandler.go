package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/commutecast/backend/internal/route/model/request"
	"github.com/commutecast/backend/shared/middleware"
)

// 루트 삭제
// @Router /v1/routes/delete [delete]
// @Summary Delete a commute route
// @Description Deletes the route and its schedule, deactivates its city
// @Description from scraping if no other active routes remain there.
// @Param Authorization header string true "Bearer {access_token}"
// @Param json body request.ReqDeleteRoute true "route to delete"
// @Produce json
// @Success 200 {object} response.ResDeleteRoute
// @Failure 400 {object} error
// @Failure 401 {object} error
// @Failure 404 {object} error
// @Failure 500 {object} error
// @Tags route
func (h *RouteHandler) DeleteRoute(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid user ID in token")
	}

	req := &request.ReqDeleteRoute{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.UseCase.DeleteRoute(c.Request().Context(), userID, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, res)
}
