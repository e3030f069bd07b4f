// internal/domain/message.go
package domain

import "time"

// Message represents a message posted by a user. Deleting the owning user
// cascades to its messages at the store level.
type Message struct {
	ID        int64      `db:"id" json:"id"`
	UserID    int64      `db:"user_id" json:"userId"`
	Content   string     `db:"content" json:"content"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `db:"updated_at" json:"updatedAt"`
}

// CreateMessageParams holds the fields accepted when creating a message.
type CreateMessageParams struct {
	UserID  int64
	Content string
}

// MessageFilter narrows a message listing. Content is a case-insensitive
// substring match; UserID, when non-nil, is an exact match.
type MessageFilter struct {
	Content string
	UserID  *int64
}
