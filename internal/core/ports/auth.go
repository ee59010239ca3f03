package ports

import (
	"context"

	"github.com/taskhub/todo-system/internal/core/domain"
)

// PasswordHasher is a one-way, salted credential hasher.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches hash. Malformed hashes
	// report false, they never panic or error out.
	Verify(plaintext, hash string) bool
}

// TokenService issues and validates self-contained signed session tokens.
// It is the only component holding the signing secret.
type TokenService interface {
	Issue(userID, email, role string) (string, error)
	// Validate returns the Principal embedded in token, or one of
	// domain.ErrTokenMalformed, domain.ErrTokenSignature,
	// domain.ErrTokenExpired.
	Validate(token string) (domain.Principal, error)
}

// AuthService orchestrates signup and signin.
type AuthService interface {
	Signup(ctx context.Context, email, password, role string) (string, error)
	Signin(ctx context.Context, email, password string) (string, error)
}
