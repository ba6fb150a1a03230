package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	_interface "github.com/commutecast/backend/internal/route/model/interface"
)

type ProfileHandler struct {
	UseCase _interface.IProfileUseCase
}

type reqConfirmUser struct {
	UserID string `json:"userId" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
}

// ConfirmUser is the identity-provider post-confirmation hook. It is
// called by the identity provider itself, never by the mobile client, so
// it sits outside the bearer-token Auth() group.
// @Router /v1/internal/users/confirm [post]
// @Summary Identity-provider post-confirmation hook
// @Description Creates the PROFILE record once per userId.
// @Param json body reqConfirmUser true "confirmed user"
// @Produce json
// @Success 200
// @Failure 400 {object} error
// @Failure 500 {object} error
// @Tags internal
func (h *ProfileHandler) ConfirmUser(c echo.Context) error {
	req := &reqConfirmUser{}
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.UseCase.ConfirmUser(c.Request().Context(), req.UserID, req.Email); err != nil {
		return err
	}

	return c.NoContent(http.StatusOK)
}
