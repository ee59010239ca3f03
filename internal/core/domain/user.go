package domain

import "time"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// ValidRole reports whether s is a recognised user role.
func ValidRole(s string) bool {
	return s == RoleUser || s == RoleAdmin
}

// User models a persisted account.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Principal is the authenticated identity for the duration of one request,
// rebuilt from token claims on every call. It is a snapshot taken at token
// issuance time: a role change only becomes visible once the user signs in
// again and receives a fresh token.
type Principal struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
