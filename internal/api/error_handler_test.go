package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskhub/todo-system/internal/core/domain"
)

func runErrorHandler(t *testing.T, err error) (int, errorResponse, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/todos/t1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var logBuf strings.Builder
	handler := NewHTTPErrorHandler(zerolog.New(&logBuf))
	handler(err, c)

	var body errorResponse
	if decodeErr := json.Unmarshal(rec.Body.Bytes(), &body); decodeErr != nil {
		t.Fatalf("response is not the error envelope: %v (%s)", decodeErr, rec.Body.String())
	}
	return rec.Code, body, logBuf.String()
}

func TestErrorHandler_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"unauthenticated", domain.ErrUnauthenticated, http.StatusUnauthorized},
		{"token malformed", domain.ErrTokenMalformed, http.StatusUnauthorized},
		{"token signature", domain.ErrTokenSignature, http.StatusUnauthorized},
		{"token expired", domain.ErrTokenExpired, http.StatusUnauthorized},
		{"bad credentials", domain.ErrBadCredentials, http.StatusUnauthorized},
		{"owner missing", domain.ErrOwnerMissing, http.StatusBadRequest},
		{"not owner", domain.ErrNotOwner, http.StatusBadRequest},
		{"self assignment", domain.ErrSelfAssignment, http.StatusBadRequest},
		{"manager not on todo", domain.ErrManagerNotOnTodo, http.StatusBadRequest},
		{"not manager", domain.ErrNotManager, http.StatusBadRequest},
		{"insufficient role", domain.ErrInsufficientRole, http.StatusBadRequest},
		{"email exists", domain.ErrEmailExists, http.StatusBadRequest},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest},
		{"user not found", domain.ErrUserNotFound, http.StatusBadRequest},
		{"todo not found", domain.ErrTodoNotFound, http.StatusBadRequest},
		{"manager not found", domain.ErrManagerNotFound, http.StatusBadRequest},
		{"comment not found", domain.ErrCommentNotFound, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body, _ := runErrorHandler(t, tc.err)
			if code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
			if body.Error != tc.err.Error() {
				t.Fatalf("expected message %q, got %q", tc.err.Error(), body.Error)
			}
		})
	}
}

func TestErrorHandler_WrappedErrors(t *testing.T) {
	wrapped := errors.Join(errors.New("lookup failed"), domain.ErrTodoNotFound)
	code, _, _ := runErrorHandler(t, wrapped)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 for wrapped domain error, got %d", code)
	}
}

func TestErrorHandler_EchoErrorsPassThrough(t *testing.T) {
	code, body, _ := runErrorHandler(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header"))
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if body.Error != "missing authorization header" {
		t.Fatalf("unexpected message: %q", body.Error)
	}
}

func TestErrorHandler_UnexpectedErrorsAreMasked(t *testing.T) {
	code, body, logged := runErrorHandler(t, errors.New("mongo: socket was unexpectedly closed"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body.Error != "internal server error" {
		t.Fatalf("internal details leaked to client: %q", body.Error)
	}
	if !strings.Contains(logged, "socket was unexpectedly closed") {
		t.Fatalf("real cause not logged: %s", logged)
	}
}

func TestErrorHandler_CommittedResponseLeftAlone(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := c.NoContent(http.StatusOK); err != nil {
		t.Fatalf("commit response: %v", err)
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(domain.ErrTodoNotFound, c)

	if rec.Code != http.StatusOK {
		t.Fatalf("committed response was overwritten: %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("body written after commit: %s", rec.Body.String())
	}
}
