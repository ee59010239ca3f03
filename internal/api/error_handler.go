package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskhub/todo-system/internal/api/metrics"
	"github.com/taskhub/todo-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// authzDenialReasons maps denial errors to the stable label used by the
// authz denial counter.
var authzDenialReasons = map[error]string{
	domain.ErrOwnerMissing:     "owner_missing",
	domain.ErrNotOwner:         "not_owner",
	domain.ErrSelfAssignment:   "self_assignment",
	domain.ErrManagerNotOnTodo: "manager_not_on_todo",
	domain.ErrNotManager:       "not_manager",
	domain.ErrInsufficientRole: "insufficient_role",
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Authentication failures → 401.
	switch {
	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrTokenMalformed),
		errors.Is(err, domain.ErrTokenSignature),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrBadCredentials):
		return http.StatusUnauthorized, err.Error()
	}

	// Authorization denials → 400, counted by reason.
	for reason, label := range authzDenialReasons {
		if errors.Is(err, reason) {
			metrics.AuthzDenialsTotal.WithLabelValues(label).Inc()
			return http.StatusBadRequest, err.Error()
		}
	}

	// Request failures → 400. Missing referents are deliberately client
	// errors, not 404: existing callers depend on this mapping.
	switch {
	case errors.Is(err, domain.ErrEmailExists),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrTodoNotFound),
		errors.Is(err, domain.ErrManagerNotFound),
		errors.Is(err, domain.ErrCommentNotFound):
		return http.StatusBadRequest, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
