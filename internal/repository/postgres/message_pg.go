// internal/repository/postgres/message_pg.go
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"msgboard/internal/domain"
	"msgboard/internal/repository"
)

const messageColumns = "id, user_id, content, created_at, updated_at"

// MessageRepository implements repository.MessageRepository for PostgreSQL.
type MessageRepository struct{}

// NewMessageRepository creates a new MessageRepository.
func NewMessageRepository(db *sqlx.DB) repository.MessageRepository {
	return &MessageRepository{}
}

// List returns the messages matching the conjunction of the supplied
// filters. Content is a case-insensitive substring match; userId is exact.
// LOWER/LIKE is used instead of ILIKE so the statement also runs on the
// sqlite store the tests use.
func (r *MessageRepository) List(ctx context.Context, q repository.DBExecutor, filter domain.MessageFilter) ([]domain.Message, error) {
	b := &stmtBuilder{}
	if filter.Content != "" {
		b.add("LOWER(content) LIKE LOWER($%d)", "%"+filter.Content+"%")
	}
	if filter.UserID != nil {
		b.add("user_id = $%d", *filter.UserID)
	}

	query := "SELECT " + messageColumns + " FROM messages" + b.whereClause()
	messages := []domain.Message{}
	if err := q.SelectContext(ctx, &messages, query, b.args...); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// Insert creates a message and returns the persisted row. A userId that
// does not reference an existing user surfaces as util.ErrInvalidReference.
func (r *MessageRepository) Insert(ctx context.Context, q repository.DBExecutor, params domain.CreateMessageParams) (*domain.Message, error) {
	query := `INSERT INTO messages (user_id, content)
              VALUES ($1, $2)
              RETURNING ` + messageColumns
	var message domain.Message
	if err := q.GetContext(ctx, &message, query, params.UserID, params.Content); err != nil {
		if mapped := mapError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return &message, nil
}

// UpdateContent replaces the message content when supplied and always
// advances updated_at. Message updates are restricted to the content field
// at validation time; the same builder handles the statement.
func (r *MessageRepository) UpdateContent(ctx context.Context, q repository.DBExecutor, id int64, content *string) (*domain.Message, error) {
	b := &stmtBuilder{}
	if content != nil {
		b.add("content = $%d", *content)
	}
	b.add("updated_at = $%d", time.Now().UTC())

	query := fmt.Sprintf("UPDATE messages%s WHERE id = $%d RETURNING %s",
		b.setClause(), b.bind(id), messageColumns)

	var message domain.Message
	if err := q.GetContext(ctx, &message, query, b.args...); err != nil {
		if mapped := mapError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to update message %d: %w", id, err)
	}
	return &message, nil
}

// Delete removes the message with the given id and returns the deleted row.
func (r *MessageRepository) Delete(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Message, error) {
	query := "DELETE FROM messages WHERE id = $1 RETURNING " + messageColumns
	var message domain.Message
	if err := q.GetContext(ctx, &message, query, id); err != nil {
		if mapped := mapError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to delete message %d: %w", id, err)
	}
	return &message, nil
}
