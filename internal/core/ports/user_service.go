package ports

import (
	"context"

	"github.com/taskhub/todo-system/internal/core/domain"
)

type UserService interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	// ChangeRole sets the user's role. Admin role required. The change
	// takes effect on the target's next signin; outstanding tokens keep
	// their issued role.
	ChangeRole(ctx context.Context, p domain.Principal, userID, role string) (*domain.User, error)
}
