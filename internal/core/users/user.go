package users

import (
	"time"

	"Verdant/internal/core/plants"
	"Verdant/internal/core/posts"
	"Verdant/internal/core/versions"
)

// Role is a user's access level
type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

// Valid reports whether the role is one of the known values
func (r Role) Valid() bool {
	return r == RoleClient || r == RoleAdmin
}

// User is a registered account. PasswordHash never crosses the API boundary.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserDetail is a user joined with everything they own, for the admin surface
type UserDetail struct {
	User
	Plants   []plants.Plant     `json:"plants"`
	Versions []versions.Version `json:"versions"`
	Posts    []posts.Post       `json:"posts"`
}

// RegisterRequest is the input for creating a new account
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest carries partial admin updates to a user.
// Nil fields mean "don't change this field"; Password is re-hashed before storage.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
}

// UpdateUserInput is what the repository persists after the service has
// validated the role and hashed the credential
type UpdateUserInput struct {
	Name         *string
	Email        *string
	PasswordHash *string
	Role         *Role
}
