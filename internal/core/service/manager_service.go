package service

import (
	"context"
	"time"

	"github.com/taskhub/todo-system/internal/core/authz"
	"github.com/taskhub/todo-system/internal/core/domain"
	"github.com/taskhub/todo-system/internal/core/ports"
)

// ManagerService implements manager assignment and removal on todos. Lookup
// order matters: ownership is decided before the candidate or manager record
// is resolved, so a non-owner never learns whether the target exists.
type ManagerService struct {
	managers ports.ManagerRepository
	todos    ports.TodoRepository
	users    ports.UserRepository
}

func NewManagerService(managers ports.ManagerRepository, todos ports.TodoRepository, users ports.UserRepository) *ManagerService {
	return &ManagerService{managers: managers, todos: todos, users: users}
}

// Assign registers userID as a manager on the todo.
func (s *ManagerService) Assign(ctx context.Context, p domain.Principal, todoID, userID string) (*domain.Manager, error) {
	todo, err := s.todos.FindByID(ctx, todoID)
	if err != nil {
		return nil, err
	}

	if d := authz.CanModifyTodo(p, todo.OwnerID); !d.Allowed {
		return nil, d.Reason
	}

	candidate, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if d := authz.CanAssignManager(p, todo.OwnerID, candidate.ID); !d.Allowed {
		return nil, d.Reason
	}

	return s.managers.Create(ctx, &domain.Manager{
		TodoID:    todo.ID,
		UserID:    candidate.ID,
		CreatedAt: time.Now().UTC(),
	})
}

// List returns the managers registered on the todo.
func (s *ManagerService) List(ctx context.Context, todoID string) ([]domain.Manager, error) {
	if _, err := s.todos.FindByID(ctx, todoID); err != nil {
		return nil, err
	}
	return s.managers.ListByTodo(ctx, todoID)
}

// Delete removes a manager record from the todo. The acting account is
// re-resolved first: tokens outlive account deletion.
func (s *ManagerService) Delete(ctx context.Context, p domain.Principal, todoID, managerID string) error {
	if _, err := s.users.FindByID(ctx, p.UserID); err != nil {
		return err
	}

	todo, err := s.todos.FindByID(ctx, todoID)
	if err != nil {
		return err
	}

	if d := authz.CanModifyTodo(p, todo.OwnerID); !d.Allowed {
		return d.Reason
	}

	manager, err := s.managers.FindByID(ctx, managerID)
	if err != nil {
		return err
	}

	if d := authz.CanDeleteManager(p, todo.OwnerID, todo.ID, manager.TodoID); !d.Allowed {
		return d.Reason
	}

	return s.managers.Delete(ctx, manager.ID)
}
