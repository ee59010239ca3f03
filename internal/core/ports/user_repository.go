package ports

import (
	"context"

	"github.com/taskhub/todo-system/internal/core/domain"
)

// UserRepository defines the interface for user persistence. Create must
// translate a unique-index violation on email into domain.ErrEmailExists;
// the index is the authoritative duplicate-signup defense, the service-level
// pre-check is only a fast path.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateRole(ctx context.Context, id, role string) error
}
