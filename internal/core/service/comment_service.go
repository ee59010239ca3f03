package service

import (
	"context"
	"time"

	"github.com/taskhub/todo-system/internal/core/authz"
	"github.com/taskhub/todo-system/internal/core/domain"
	"github.com/taskhub/todo-system/internal/core/ports"
)

// CommentService implements comment creation, listing and admin deletion.
type CommentService struct {
	comments ports.CommentRepository
	todos    ports.TodoRepository
	managers ports.ManagerRepository
}

func NewCommentService(comments ports.CommentRepository, todos ports.TodoRepository, managers ports.ManagerRepository) *CommentService {
	return &CommentService{comments: comments, todos: todos, managers: managers}
}

// Save records a comment on the todo. Only registered managers may comment;
// the owner qualifies through the record created with the todo.
func (s *CommentService) Save(ctx context.Context, p domain.Principal, todoID, contents string) (*domain.Comment, error) {
	todo, err := s.todos.FindByID(ctx, todoID)
	if err != nil {
		return nil, err
	}

	isManager, err := s.managers.ExistsByTodoAndUser(ctx, todo.ID, p.UserID)
	if err != nil {
		return nil, err
	}
	if d := authz.CanCommentOnTodo(p, isManager); !d.Allowed {
		return nil, d.Reason
	}

	return s.comments.Create(ctx, &domain.Comment{
		TodoID:    todo.ID,
		AuthorID:  p.UserID,
		Contents:  contents,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *CommentService) ListByTodo(ctx context.Context, todoID string) ([]domain.Comment, error) {
	return s.comments.ListByTodo(ctx, todoID)
}

// AdminDelete removes any comment. The role gate runs before the comment
// lookup so non-admins never learn whether the comment exists.
func (s *CommentService) AdminDelete(ctx context.Context, p domain.Principal, commentID string) error {
	if d := authz.CanDeleteComment(p); !d.Allowed {
		return d.Reason
	}

	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return err
	}

	return s.comments.Delete(ctx, comment.ID)
}
