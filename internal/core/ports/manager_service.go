package ports

import (
	"context"

	"github.com/taskhub/todo-system/internal/core/domain"
)

type ManagerService interface {
	// Assign registers userID as a manager on the todo. Only the todo's
	// owner may assign, and never themselves.
	Assign(ctx context.Context, p domain.Principal, todoID, userID string) (*domain.Manager, error)
	List(ctx context.Context, todoID string) ([]domain.Manager, error)
	// Delete removes a manager record from the todo. Only the todo's
	// owner may delete, and only managers registered on that todo.
	Delete(ctx context.Context, p domain.Principal, todoID, managerID string) error
}
