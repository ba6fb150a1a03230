// Package handler wires the route feature's Echo routes, grounded on
// features/weather/handler/handler.go's NewWeatherHandler convention.
package handler

import (
	"github.com/labstack/echo/v4"

	_interface "github.com/commutecast/backend/internal/route/model/interface"
	"github.com/commutecast/backend/shared/middleware"
)

func NewRouteHandler(c *echo.Echo, useCase _interface.IRouteUseCase) _interface.IRouteHandler {
	handler := &RouteHandler{UseCase: useCase}

	group := c.Group("/v1/routes", middleware.Auth())
	group.POST("/create", handler.CreateRoute)
	group.PUT("/update", handler.UpdateRoute)
	group.DELETE("/delete", handler.DeleteRoute)
	group.GET("/fetch", handler.FetchRoutes)

	return handler
}

func NewProfileHandler(c *echo.Echo, useCase _interface.IProfileUseCase) _interface.IProfileHandler {
	handler := &ProfileHandler{UseCase: useCase}
	c.POST("/v1/internal/users/confirm", handler.ConfirmUser)
	return handler
}
