package service

import (
	"context"
	"errors"
	"testing"

	"github.com/taskhub/todo-system/internal/core/domain"
)

func adminPrincipal(id string) domain.Principal {
	return domain.Principal{UserID: id, Email: id + "@example.com", Role: domain.RoleAdmin}
}

func TestUserService_Get(t *testing.T) {
	users := newStubUserRepo()
	users.add(&domain.User{ID: "u1", Email: "u1@example.com", Role: domain.RoleUser})
	svc := NewUserService(users)

	u, err := svc.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u.Email != "u1@example.com" {
		t.Fatalf("unexpected user: %+v", u)
	}

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_ChangeRole_InsufficientRole(t *testing.T) {
	users := newStubUserRepo()
	users.add(&domain.User{ID: "u1", Email: "u1@example.com", Role: domain.RoleUser})
	svc := NewUserService(users)

	_, err := svc.ChangeRole(context.Background(), principal("u2"), "u1", domain.RoleAdmin)
	if !errors.Is(err, domain.ErrInsufficientRole) {
		t.Fatalf("expected ErrInsufficientRole, got %v", err)
	}
}

func TestUserService_ChangeRole_InvalidRole(t *testing.T) {
	users := newStubUserRepo()
	users.add(&domain.User{ID: "u1", Email: "u1@example.com", Role: domain.RoleUser})
	svc := NewUserService(users)

	_, err := svc.ChangeRole(context.Background(), adminPrincipal("a1"), "u1", "OWNER")
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_ChangeRole_UserNotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo())

	_, err := svc.ChangeRole(context.Background(), adminPrincipal("a1"), "missing", domain.RoleAdmin)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_ChangeRole_Success(t *testing.T) {
	users := newStubUserRepo()
	users.add(&domain.User{ID: "u1", Email: "u1@example.com", Role: domain.RoleUser})
	svc := NewUserService(users)

	updated, err := svc.ChangeRole(context.Background(), adminPrincipal("a1"), "u1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("change role: %v", err)
	}
	if updated.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role: %q", updated.Role)
	}

	stored, _ := users.FindByID(context.Background(), "u1")
	if stored.Role != domain.RoleAdmin {
		t.Fatalf("role not persisted")
	}
}
