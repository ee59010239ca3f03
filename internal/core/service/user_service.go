package service

import (
	"context"

	"github.com/taskhub/todo-system/internal/core/authz"
	"github.com/taskhub/todo-system/internal/core/domain"
	"github.com/taskhub/todo-system/internal/core/ports"
)

// UserService implements user lookup and the admin role-change operation.
type UserService struct {
	users ports.UserRepository
}

func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// ChangeRole sets the target user's role. Outstanding tokens keep the role
// they were issued with; the change is only visible after the target signs
// in again.
func (s *UserService) ChangeRole(ctx context.Context, p domain.Principal, userID, role string) (*domain.User, error) {
	if d := authz.CanChangeRole(p); !d.Allowed {
		return nil, d.Reason
	}

	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateRole(ctx, user.ID, role); err != nil {
		return nil, err
	}

	user.Role = role
	return user, nil
}
