package ports

import (
	"context"

	"github.com/taskhub/todo-system/internal/core/domain"
)

// CommentRepository defines the interface for comment persistence.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	ListByTodo(ctx context.Context, todoID string) ([]domain.Comment, error)
	Delete(ctx context.Context, id string) error
}
