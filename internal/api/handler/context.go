package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/todo-system/internal/api/middleware"
	"github.com/taskhub/todo-system/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware and
// fast-fails before any service call when it is absent (which means the
// middleware never ran for this route).
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	p, ok := middleware.Principal(c)
	if !ok {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return p, nil
}
