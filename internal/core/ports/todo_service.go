package ports

import (
	"context"

	"github.com/taskhub/todo-system/internal/core/domain"
)

// TodoSaveInput carries the caller-supplied fields of a new todo.
type TodoSaveInput struct {
	Title    string
	Contents string
}

type TodoService interface {
	// Create persists a todo owned by the principal, stamping it with
	// today's weather and auto-registering the owner as a manager.
	Create(ctx context.Context, p domain.Principal, in TodoSaveInput) (*domain.Todo, error)
	Get(ctx context.Context, id string) (*domain.Todo, error)
	List(ctx context.Context, page, size int) ([]domain.Todo, int64, error)
}
