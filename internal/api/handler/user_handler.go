package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/todo-system/internal/core/ports"
)

type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type roleChangeRequest struct {
	Role string `json:"role" validate:"required"`
}

// Get handles GET /users/:userID.
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("userID"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ChangeRole handles PATCH /admin/users/:userID/role. The new role is only
// reflected in tokens issued after the target's next signin.
func (h *UserHandler) ChangeRole(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req roleChangeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.ChangeRole(c.Request().Context(), p, c.Param("userID"), req.Role)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}
