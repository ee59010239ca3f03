package ports

import (
	"context"

	"github.com/taskhub/todo-system/internal/core/domain"
)

type CommentService interface {
	// Save records a comment on the todo. The author must be registered
	// as a manager on it.
	Save(ctx context.Context, p domain.Principal, todoID, contents string) (*domain.Comment, error)
	ListByTodo(ctx context.Context, todoID string) ([]domain.Comment, error)
	// AdminDelete removes any comment. Admin role required.
	AdminDelete(ctx context.Context, p domain.Principal, commentID string) error
}
