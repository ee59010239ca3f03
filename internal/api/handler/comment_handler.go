package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/todo-system/internal/core/domain"
	"github.com/taskhub/todo-system/internal/core/ports"
)

type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

type commentSaveRequest struct {
	Contents string `json:"contents" validate:"required"`
}

// Save handles POST /todos/:todoID/comments.
//
// @Summary      Comment on a todo
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        todoID  path      string              true  "Todo id"
// @Param        body    body      commentSaveRequest  true  "Comment"
// @Success      201     {object}  domain.Comment
// @Failure      400     {object}  map[string]string
// @Router       /todos/{todoID}/comments [post]
func (h *CommentHandler) Save(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req commentSaveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.service.Save(c.Request().Context(), p, c.Param("todoID"), req.Contents)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, comment)
}

// List handles GET /todos/:todoID/comments.
func (h *CommentHandler) List(c echo.Context) error {
	comments, err := h.service.ListByTodo(c.Request().Context(), c.Param("todoID"))
	if err != nil {
		return err
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	return c.JSON(http.StatusOK, comments)
}

// AdminDelete handles DELETE /admin/comments/:commentID.
func (h *CommentHandler) AdminDelete(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.AdminDelete(c.Request().Context(), p, c.Param("commentID")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
