// internal/repository/postgres/user_pg.go
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"msgboard/internal/domain"
	"msgboard/internal/repository"
)

const userColumns = "id, user_name, password, first_name, family_name, address, created_at, updated_at"

// UserRepository implements repository.UserRepository for PostgreSQL.
type UserRepository struct{}

// NewUserRepository creates a new UserRepository. The db parameter is not
// stored; methods receive a DBExecutor directly.
func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &UserRepository{}
}

// List returns the users matching the conjunction of the supplied filters.
// An empty filter returns every row. All predicates are exact matches.
func (r *UserRepository) List(ctx context.Context, q repository.DBExecutor, filter domain.UserFilter) ([]domain.User, error) {
	b := &stmtBuilder{}
	if filter.UserName != "" {
		b.add("user_name = $%d", filter.UserName)
	}
	if filter.FirstName != "" {
		b.add("first_name = $%d", filter.FirstName)
	}
	if filter.FamilyName != "" {
		b.add("family_name = $%d", filter.FamilyName)
	}
	if filter.Address != "" {
		b.add("address = $%d", filter.Address)
	}

	query := "SELECT " + userColumns + " FROM users" + b.whereClause()
	users := []domain.User{}
	if err := q.SelectContext(ctx, &users, query, b.args...); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetByID returns the user with the given id as a zero-or-one element slice.
func (r *UserRepository) GetByID(ctx context.Context, q repository.DBExecutor, id int64) ([]domain.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE id = $1"
	users := []domain.User{}
	if err := q.SelectContext(ctx, &users, query, id); err != nil {
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return users, nil
}

// Insert creates a user and returns the persisted row. created_at defaults
// at the store; updated_at stays NULL until the first update.
func (r *UserRepository) Insert(ctx context.Context, q repository.DBExecutor, params domain.CreateUserParams) (*domain.User, error) {
	query := `INSERT INTO users (user_name, password, first_name, family_name, address)
              VALUES ($1, $2, $3, $4, $5)
              RETURNING ` + userColumns
	var user domain.User
	err := q.GetContext(ctx, &user, query,
		params.UserName, params.Password, params.FirstName, params.FamilyName, params.Address)
	if err != nil {
		if mapped := mapError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// Update assigns exactly the non-nil fields of params and always advances
// updated_at. Fields absent from params are left untouched.
func (r *UserRepository) Update(ctx context.Context, q repository.DBExecutor, id int64, params domain.UpdateUserParams) (*domain.User, error) {
	b := &stmtBuilder{}
	if params.UserName != nil {
		b.add("user_name = $%d", *params.UserName)
	}
	if params.Password != nil {
		b.add("password = $%d", *params.Password)
	}
	if params.FirstName != nil {
		b.add("first_name = $%d", *params.FirstName)
	}
	if params.FamilyName != nil {
		b.add("family_name = $%d", *params.FamilyName)
	}
	if params.Address != nil {
		b.add("address = $%d", *params.Address)
	}
	b.add("updated_at = $%d", time.Now().UTC())

	query := fmt.Sprintf("UPDATE users%s WHERE id = $%d RETURNING %s",
		b.setClause(), b.bind(id), userColumns)

	var user domain.User
	if err := q.GetContext(ctx, &user, query, b.args...); err != nil {
		if mapped := mapError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to update user %d: %w", id, err)
	}
	return &user, nil
}

// Delete removes the user with the given id and returns the deleted row.
// Messages owned by the user are removed by the store's cascade rule.
func (r *UserRepository) Delete(ctx context.Context, q repository.DBExecutor, id int64) (*domain.User, error) {
	query := "DELETE FROM users WHERE id = $1 RETURNING " + userColumns
	var user domain.User
	if err := q.GetContext(ctx, &user, query, id); err != nil {
		if mapped := mapError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return &user, nil
}
