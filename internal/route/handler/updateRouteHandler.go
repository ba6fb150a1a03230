package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/commutecast/backend/internal/route/model/request"
	"github.com/commutecast/backend/shared/middleware"
)

// 루트 수정
// @Router /v1/routes/update [put]
// @Summary Update a commute route or its schedule
// @Description Updates only the fields provided. Updating any field that
// @Description affects travel time invalidates the cached forecast.
// @Param Authorization header string true "Bearer {access_token}"
// @Param json body request.ReqUpdateRoute true "fields to update"
// @Produce json
// @Success 200 {object} response.ResUpdateRoute
// @Failure 400 {object} error
// @Failure 401 {object} error
// @Failure 404 {object} error
// @Failure 500 {object} error
// @Tags route
func (h *RouteHandler) UpdateRoute(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid user ID in token")
	}

	req := &request.ReqUpdateRoute{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.UseCase.UpdateRoute(c.Request().Context(), userID, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, res)
}
