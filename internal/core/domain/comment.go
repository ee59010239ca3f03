package domain

import "time"

// Comment is a remark left on a todo by one of its managers.
type Comment struct {
	ID        string    `json:"id"`
	TodoID    string    `json:"todo_id"`
	AuthorID  string    `json:"author_id"`
	Contents  string    `json:"contents"`
	CreatedAt time.Time `json:"created_at"`
}
