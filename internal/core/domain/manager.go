package domain

import "time"

// Manager links a user as a delegated assignee on a todo, distinct from the
// todo's owner. The owner is auto-registered as a manager at creation time.
type Manager struct {
	ID        string    `json:"id"`
	TodoID    string    `json:"todo_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
