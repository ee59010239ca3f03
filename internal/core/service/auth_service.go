package service

import (
	"context"
	"time"

	"github.com/taskhub/todo-system/internal/core/domain"
	"github.com/taskhub/todo-system/internal/core/ports"
)

// AuthService implements signup and signin.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Signup registers a new account and returns a signed session token.
// The existence check runs before hashing to avoid the bcrypt cost on the
// common duplicate case; the repository's unique index closes the race.
func (s *AuthService) Signup(ctx context.Context, email, password, role string) (string, error) {
	if !domain.ValidRole(role) {
		return "", domain.ErrInvalidRole
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", domain.ErrEmailExists
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return "", err
	}

	return s.tokens.Issue(created.ID, created.Email, created.Role)
}

// Signin authenticates an existing account and returns a signed session
// token. An unknown email and a wrong password are distinct failures.
func (s *AuthService) Signin(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", domain.ErrBadCredentials
	}

	return s.tokens.Issue(user.ID, user.Email, user.Role)
}
