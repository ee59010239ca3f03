package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/todo-system/internal/core/domain"
	"github.com/taskhub/todo-system/internal/core/ports"
)

const principalKey = "principal"

// Auth extracts the bearer credential, validates it through the token
// service, and stores the resulting Principal in the request context. It
// never touches the store: the principal is exactly what the token carries.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			p, err := tokens.Validate(parts[1])
			if err != nil {
				// domain token errors map to 401 centrally
				return err
			}

			c.Set(principalKey, p)
			return next(c)
		}
	}
}

// Principal returns the authenticated principal stored by Auth, and whether
// one is present.
func Principal(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalKey).(domain.Principal)
	return p, ok
}
