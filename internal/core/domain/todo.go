package domain

import "time"

// Todo is the core aggregate: a scheduled task created by a user. The
// weather snapshot is captured once at creation time and never refreshed.
type Todo struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Contents   string    `json:"contents"`
	Weather    string    `json:"weather"`
	OwnerID    string    `json:"owner_id"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}
