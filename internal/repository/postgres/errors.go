// internal/repository/postgres/errors.go
package postgres

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"

	"msgboard/internal/util"
)

// Postgres error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// mapError translates driver-level failures into the application's sentinel
// errors so callers can use errors.Is without knowing the driver. The
// sqlite checks rely on message text because the tests run against
// mattn/go-sqlite3, whose errors carry no stable code type here. Unmapped
// errors are returned unchanged.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return util.ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqUniqueViolation:
			return util.ErrDuplicateEntry
		case pqForeignKeyViolation:
			return util.ErrInvalidReference
		}
		return err
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return util.ErrDuplicateEntry
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return util.ErrInvalidReference
	}
	return err
}
