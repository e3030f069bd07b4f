// internal/repository/postgres/builder_test.go
package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStmtBuilderWhere(t *testing.T) {
	t.Run("no predicates leaves the statement unfiltered", func(t *testing.T) {
		b := &stmtBuilder{}
		assert.Equal(t, "", b.whereClause())
		assert.Empty(t, b.args)
	})

	t.Run("predicates are conjoined in append order", func(t *testing.T) {
		b := &stmtBuilder{}
		b.add("user_name = $%d", "alice")
		b.add("family_name = $%d", "smith")

		assert.Equal(t, " WHERE user_name = $1 AND family_name = $2", b.whereClause())
		assert.Equal(t, []any{"alice", "smith"}, b.args)
	})
}

func TestStmtBuilderSet(t *testing.T) {
	b := &stmtBuilder{}
	b.add("first_name = $%d", "Alice")
	b.add("updated_at = $%d", "now")

	assert.Equal(t, " SET first_name = $1, updated_at = $2", b.setClause())
	assert.Equal(t, []any{"Alice", "now"}, b.args)
}

func TestStmtBuilderBind(t *testing.T) {
	b := &stmtBuilder{}
	b.add("content = $%d", "hi")
	n := b.bind(int64(7))

	assert.Equal(t, 2, n)
	assert.Equal(t, []any{"hi", int64(7)}, b.args)
}
