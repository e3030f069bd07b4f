// internal/domain/user.go
package domain

import "time"

// User represents a registered user. The optional profile fields and
// UpdatedAt are pointers because they are NULL until supplied; JSON tags
// follow the public API contract (camelCase).
type User struct {
	ID         int64      `db:"id" json:"id"`
	UserName   string     `db:"user_name" json:"userName"`
	Password   string     `db:"password" json:"password"`
	FirstName  *string    `db:"first_name" json:"firstName"`
	FamilyName *string    `db:"family_name" json:"familyName"`
	Address    *string    `db:"address" json:"address"`
	CreatedAt  time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt  *time.Time `db:"updated_at" json:"updatedAt"`
}

// CreateUserParams holds the fields accepted when creating a user.
// UserName and Password are required; the rest may be nil.
type CreateUserParams struct {
	UserName   string
	Password   string
	FirstName  *string
	FamilyName *string
	Address    *string
}

// UpdateUserParams holds a partial update. A nil pointer means the field
// was not supplied and must be left untouched.
type UpdateUserParams struct {
	UserName   *string
	Password   *string
	FirstName  *string
	FamilyName *string
	Address    *string
}

// UserFilter narrows a user listing. Empty strings mean "no filter on this
// column"; all predicates are exact matches joined with AND.
type UserFilter struct {
	UserName   string
	FirstName  string
	FamilyName string
	Address    string
}
