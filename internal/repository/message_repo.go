// internal/repository/message_repo.go
package repository

import (
	"context"

	"msgboard/internal/domain"
)

// MessageRepository defines the interface for message data operations.
type MessageRepository interface {
	// List returns messages matching every supplied filter, or all messages
	// when the filter is empty.
	List(ctx context.Context, q DBExecutor, filter domain.MessageFilter) ([]domain.Message, error)
	// Insert creates a message and returns the persisted row.
	Insert(ctx context.Context, q DBExecutor, params domain.CreateMessageParams) (*domain.Message, error)
	// UpdateContent replaces the content of the message with the given id
	// and advances updated_at. Returns util.ErrNotFound when no row matches.
	UpdateContent(ctx context.Context, q DBExecutor, id int64, content *string) (*domain.Message, error)
	// Delete removes the message with the given id, returning the deleted
	// row. Returns util.ErrNotFound when no row matches.
	Delete(ctx context.Context, q DBExecutor, id int64) (*domain.Message, error)
}
