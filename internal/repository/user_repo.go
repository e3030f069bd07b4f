// internal/repository/user_repo.go
package repository

import (
	"context"

	"msgboard/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// List returns users matching every supplied filter, or all users when
	// the filter is empty.
	List(ctx context.Context, q DBExecutor, filter domain.UserFilter) ([]domain.User, error)
	// GetByID returns the user with the given id as a zero-or-one element
	// slice, preserving the array-shaped read contract of the API.
	GetByID(ctx context.Context, q DBExecutor, id int64) ([]domain.User, error)
	// Insert creates a user and returns the persisted row.
	// Returns util.ErrDuplicateEntry when the userName is taken.
	Insert(ctx context.Context, q DBExecutor, params domain.CreateUserParams) (*domain.User, error)
	// Update applies the supplied fields to the user with the given id and
	// advances updated_at. Returns util.ErrNotFound when no row matches.
	Update(ctx context.Context, q DBExecutor, id int64, params domain.UpdateUserParams) (*domain.User, error)
	// Delete removes the user with the given id, returning the deleted row.
	// Returns util.ErrNotFound when no row matches.
	Delete(ctx context.Context, q DBExecutor, id int64) (*domain.User, error)
}
