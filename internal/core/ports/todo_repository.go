package ports

import (
	"context"

	"github.com/taskhub/todo-system/internal/core/domain"
)

// TodoRepository defines the interface for todo persistence.
type TodoRepository interface {
	Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)
	FindByID(ctx context.Context, id string) (*domain.Todo, error)
	// List returns a page of todos ordered by modification time, newest
	// first, along with the total number of todos.
	List(ctx context.Context, page, size int) ([]domain.Todo, int64, error)
}
