package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/todo-system/internal/api/metrics"
	"github.com/taskhub/todo-system/internal/core/domain"
	"github.com/taskhub/todo-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required"`
}

type signinRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Signup registers a new account and returns a session token.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "New account details"
// @Success      201   {object}  tokenResponse
// @Failure      400   {object}  map[string]string
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.authService.Signup(c.Request().Context(), req.Email, req.Password, req.Role)
	if err != nil {
		metrics.SignupsTotal.WithLabelValues(signupOutcome(err)).Inc()
		return err
	}

	metrics.SignupsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, tokenResponse{Token: token})
}

// Signin authenticates an existing account and returns a session token.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signinRequest  true  "Credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/signin [post]
func (h *AuthHandler) Signin(c echo.Context) error {
	var req signinRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.authService.Signin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.SigninsTotal.WithLabelValues(signinOutcome(err)).Inc()
		return err
	}

	metrics.SigninsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

func signupOutcome(err error) string {
	if errors.Is(err, domain.ErrEmailExists) {
		return "duplicate_email"
	}
	return "error"
}

func signinOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return "unknown_user"
	case errors.Is(err, domain.ErrBadCredentials):
		return "bad_password"
	default:
		return "error"
	}
}
