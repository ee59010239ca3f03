package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/taskhub/todo-system/internal/core/domain"
)

func newAuthService(users *stubUserRepo) (*AuthService, *TokenService) {
	tokens := NewTokenService("secret", time.Hour)
	return NewAuthService(users, NewBcryptHasher(), tokens), tokens
}

func TestAuthService_Signup_Success(t *testing.T) {
	users := newStubUserRepo()
	svc, tokens := newAuthService(users)

	token, err := svc.Signup(context.Background(), "alice@example.com", "pass123", domain.RoleUser)
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	p, err := tokens.Validate(token)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if p.Email != "alice@example.com" || p.Role != domain.RoleUser {
		t.Fatalf("unexpected principal: %+v", p)
	}

	stored, err := users.FindByEmail(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if stored.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if !NewBcryptHasher().Verify("pass123", stored.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	users := newStubUserRepo()
	svc, _ := newAuthService(users)

	if _, err := svc.Signup(context.Background(), "a@x.com", "pass", domain.RoleUser); err != nil {
		t.Fatalf("first signup: %v", err)
	}

	token, err := svc.Signup(context.Background(), "a@x.com", "pass2", domain.RoleUser)
	if !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
	if token != "" {
		t.Fatalf("duplicate signup must not issue a token")
	}
}

func TestAuthService_Signup_InvalidRole(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo())

	if _, err := svc.Signup(context.Background(), "b@x.com", "pass", "SUPERUSER"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Signin_UnknownEmail(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo())

	if _, err := svc.Signin(context.Background(), "nobody@x.com", "pass"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Signin_WrongPassword(t *testing.T) {
	users := newStubUserRepo()
	svc, _ := newAuthService(users)

	if _, err := svc.Signup(context.Background(), "carol@x.com", "right", domain.RoleUser); err != nil {
		t.Fatalf("signup: %v", err)
	}

	// A wrong password is a distinct failure from an unknown email.
	_, err := svc.Signin(context.Background(), "carol@x.com", "wrong")
	if !errors.Is(err, domain.ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
	if errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("wrong password must not report ErrUserNotFound")
	}
}

func TestAuthService_Signin_Success(t *testing.T) {
	users := newStubUserRepo()
	svc, tokens := newAuthService(users)

	if _, err := svc.Signup(context.Background(), "dave@x.com", "s3cret", domain.RoleAdmin); err != nil {
		t.Fatalf("signup: %v", err)
	}

	token, err := svc.Signin(context.Background(), "dave@x.com", "s3cret")
	if err != nil {
		t.Fatalf("signin: %v", err)
	}

	p, err := tokens.Validate(token)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if p.Email != "dave@x.com" || p.Role != domain.RoleAdmin {
		t.Fatalf("unexpected principal: %+v", p)
	}
}

func TestAuthService_RoleChangeEffectiveOnNextSignin(t *testing.T) {
	users := newStubUserRepo()
	svc, tokens := newAuthService(users)

	oldToken, err := svc.Signup(context.Background(), "eve@x.com", "pass", domain.RoleUser)
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	stored, _ := users.FindByEmail(context.Background(), "eve@x.com")
	if err := users.UpdateRole(context.Background(), stored.ID, domain.RoleAdmin); err != nil {
		t.Fatalf("update role: %v", err)
	}

	// The outstanding token keeps its issued role.
	p, err := tokens.Validate(oldToken)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if p.Role != domain.RoleUser {
		t.Fatalf("outstanding token role changed: %+v", p)
	}

	// A fresh signin picks up the new role.
	newToken, err := svc.Signin(context.Background(), "eve@x.com", "pass")
	if err != nil {
		t.Fatalf("signin: %v", err)
	}
	p, err = tokens.Validate(newToken)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if p.Role != domain.RoleAdmin {
		t.Fatalf("fresh token missing new role: %+v", p)
	}
}
