// internal/repository/postgres/repo_test.go
package postgres

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"msgboard/internal/domain"
)

// newTestDB opens an in-memory sqlite database mirroring the migrations/
// schema. The repository SQL is written to run on both Postgres and sqlite
// so these tests exercise the real statements without a server.
// MaxOpenConns(1) keeps every query on the single in-memory database.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite3", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	database.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = database.Close() })

	_, err = database.Exec(`
		CREATE TABLE users (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			user_name   TEXT NOT NULL UNIQUE,
			password    TEXT NOT NULL,
			first_name  TEXT,
			family_name TEXT,
			address     TEXT,
			created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at  TIMESTAMP
		);

		CREATE TABLE messages (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id    INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			content    TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP
		);`)
	require.NoError(t, err)

	return database
}

// seedUser inserts a user and returns the persisted row.
func seedUser(t *testing.T, db *sqlx.DB, params domain.CreateUserParams) *domain.User {
	t.Helper()

	repo := &UserRepository{}
	user, err := repo.Insert(context.Background(), db, params)
	require.NoError(t, err)
	return user
}

// seedMessage inserts a message and returns the persisted row.
func seedMessage(t *testing.T, db *sqlx.DB, userID int64, content string) *domain.Message {
	t.Helper()

	repo := &MessageRepository{}
	message, err := repo.Insert(context.Background(), db, domain.CreateMessageParams{
		UserID:  userID,
		Content: content,
	})
	require.NoError(t, err)
	return message
}
