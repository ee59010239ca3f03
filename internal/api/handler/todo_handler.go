package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/todo-system/internal/core/domain"
	"github.com/taskhub/todo-system/internal/core/ports"
)

type TodoHandler struct {
	service ports.TodoService
}

func NewTodoHandler(service ports.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

type todoSaveRequest struct {
	Title    string `json:"title" validate:"required"`
	Contents string `json:"contents"`
}

type todoPageResponse struct {
	Todos []domain.Todo `json:"todos"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Size  int           `json:"size"`
}

// Create handles POST /todos.
//
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      todoSaveRequest  true  "Todo details"
// @Success      201   {object}  domain.Todo
// @Failure      400   {object}  map[string]string
// @Router       /todos [post]
func (h *TodoHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req todoSaveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	todo, err := h.service.Create(c.Request().Context(), p, ports.TodoSaveInput{
		Title:    req.Title,
		Contents: req.Contents,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, todo)
}

// Get handles GET /todos/:todoID.
func (h *TodoHandler) Get(c echo.Context) error {
	todo, err := h.service.Get(c.Request().Context(), c.Param("todoID"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todo)
}

// List handles GET /todos?page=&size=.
func (h *TodoHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))

	todos, total, err := h.service.List(c.Request().Context(), page, size)
	if err != nil {
		return err
	}
	if todos == nil {
		todos = []domain.Todo{}
	}
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}

	return c.JSON(http.StatusOK, todoPageResponse{Todos: todos, Total: total, Page: page, Size: size})
}
