package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/todo-system/internal/core/domain"
	"github.com/taskhub/todo-system/internal/core/ports"
)

type ManagerHandler struct {
	service ports.ManagerService
}

func NewManagerHandler(service ports.ManagerService) *ManagerHandler {
	return &ManagerHandler{service: service}
}

type managerSaveRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// Assign handles POST /todos/:todoID/managers.
//
// @Summary      Assign a manager to a todo
// @Tags         managers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        todoID  path      string              true  "Todo id"
// @Param        body    body      managerSaveRequest  true  "Candidate manager"
// @Success      201     {object}  domain.Manager
// @Failure      400     {object}  map[string]string
// @Router       /todos/{todoID}/managers [post]
func (h *ManagerHandler) Assign(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req managerSaveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	manager, err := h.service.Assign(c.Request().Context(), p, c.Param("todoID"), req.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, manager)
}

// List handles GET /todos/:todoID/managers.
func (h *ManagerHandler) List(c echo.Context) error {
	managers, err := h.service.List(c.Request().Context(), c.Param("todoID"))
	if err != nil {
		return err
	}
	if managers == nil {
		managers = []domain.Manager{}
	}
	return c.JSON(http.StatusOK, managers)
}

// Delete handles DELETE /todos/:todoID/managers/:managerID.
func (h *ManagerHandler) Delete(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), p, c.Param("todoID"), c.Param("managerID")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
