package _interface

import "github.com/labstack/echo/v4"

type IRouteHandler interface {
	CreateRoute(c echo.Context) error
	UpdateRoute(c echo.Context) error
	DeleteRoute(c echo.Context) error
	FetchRoutes(c echo.Context) error
}
