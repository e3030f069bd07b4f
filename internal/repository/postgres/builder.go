// internal/repository/postgres/builder.go
package postgres

import (
	"fmt"
	"strings"
)

// stmtBuilder accumulates (expression, argument) pairs and renders them as
// the conditional part of a parameterized statement. Placeholders are
// numbered in append order, so the args slice lines up with the emitted
// SQL. Values never appear in the SQL text.
type stmtBuilder struct {
	exprs []string
	args  []any
}

// add appends an expression and its argument. expr must contain exactly one
// %d verb, which receives the placeholder number.
func (b *stmtBuilder) add(expr string, arg any) {
	b.args = append(b.args, arg)
	b.exprs = append(b.exprs, fmt.Sprintf(expr, len(b.args)))
}

// bind appends a trailing argument without an expression and returns its
// placeholder number. Used for the WHERE id = $n of UPDATE statements.
func (b *stmtBuilder) bind(arg any) int {
	b.args = append(b.args, arg)
	return len(b.args)
}

// whereClause renders " WHERE a AND b" for the accumulated predicates, or
// an empty string when none were added, leaving the statement unfiltered.
func (b *stmtBuilder) whereClause() string {
	if len(b.exprs) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.exprs, " AND ")
}

// setClause renders " SET a, b" for the accumulated assignments.
func (b *stmtBuilder) setClause() string {
	return " SET " + strings.Join(b.exprs, ", ")
}
