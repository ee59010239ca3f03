package ports

import (
	"context"

	"github.com/taskhub/todo-system/internal/core/domain"
)

// ManagerRepository defines the interface for manager-assignment persistence.
type ManagerRepository interface {
	Create(ctx context.Context, manager *domain.Manager) (*domain.Manager, error)
	FindByID(ctx context.Context, id string) (*domain.Manager, error)
	ListByTodo(ctx context.Context, todoID string) ([]domain.Manager, error)
	ExistsByTodoAndUser(ctx context.Context, todoID, userID string) (bool, error)
	Delete(ctx context.Context, id string) error
}
