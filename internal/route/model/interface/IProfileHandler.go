package _interface

import "github.com/labstack/echo/v4"

// IProfileHandler serves the identity-provider post-confirmation hook,
// the only entry point that creates a PROFILE record.
type IProfileHandler interface {
	ConfirmUser(c echo.Context) error
}
