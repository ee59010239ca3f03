package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskhub/todo-system/internal/core/domain"
)

// tokenClaims is the claim set embedded in every session token.
type tokenClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256-signed session tokens. It is the
// only holder of the signing secret; the secret is loaded once at startup
// and never mutated, so concurrent use needs no locking.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token carrying the user's identity and role, valid from now
// until now + ttl. There is no refresh flow; expired tokens require a fresh
// signin.
func (s *TokenService) Issue(userID, email, role string) (string, error) {
	now := s.now()
	claims := tokenClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate parses and verifies token, returning the Principal it carries.
// Failures are collapsed into three kinds: expired, bad signature (which
// includes a wrong signing algorithm), and malformed.
func (s *TokenService) Validate(token string) (domain.Principal, error) {
	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return domain.Principal{}, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return domain.Principal{}, domain.ErrTokenSignature
		default:
			return domain.Principal{}, domain.ErrTokenMalformed
		}
	}
	if !parsed.Valid {
		return domain.Principal{}, domain.ErrTokenSignature
	}

	return domain.Principal{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}, nil
}
