package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	_interface "github.com/commutecast/backend/internal/route/model/interface"
	"github.com/commutecast/backend/internal/route/model/request"
	"github.com/commutecast/backend/shared/middleware"
)

type RouteHandler struct {
	UseCase _interface.IRouteUseCase
}

// 루트 생성
// @Router /v1/routes/create [post]
// @Summary Create a commute route
// @Description Registers a route, its schedule, and activates its city
// @Description for scraping if this is the first active route there.
// @Param Authorization header string true "Bearer {access_token}"
// @Param json body request.ReqCreateRoute true "route to create"
// @Produce json
// @Success 200 {object} response.ResCreateRoute
// @Failure 400 {object} error
// @Failure 401 {object} error
// @Failure 500 {object} error
// @Tags route
func (h *RouteHandler) CreateRoute(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid user ID in token")
	}

	req := &request.ReqCreateRoute{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.UseCase.CreateRoute(c.Request().Context(), userID, req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, res)
}
