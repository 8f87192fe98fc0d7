package users

import "context"

// Repository defines the interface for user data persistence
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// List returns all users, each joined with their plants, versions and posts
	List(ctx context.Context) ([]UserDetail, error)
	// GetDetail returns one user joined with their plants, versions and posts
	GetDetail(ctx context.Context, id int64) (*UserDetail, error)
	Update(ctx context.Context, id int64, input UpdateUserInput) (*User, error)
	// Delete removes a user together with their plants, versions and posts
	Delete(ctx context.Context, id int64) error
}

// CredentialHasher hashes and verifies passwords.
// Satisfied by the auth package's bcrypt hasher.
type CredentialHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// Service defines the interface for user business logic
type Service interface {
	// Register creates a new client account
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	// VerifyCredentials checks an email/password pair and returns the user.
	// Token issuance is the auth provider's job, not this service's.
	VerifyCredentials(ctx context.Context, email, password string) (*User, error)

	// Admin surface; route-level gating is a deployment concern
	List(ctx context.Context) ([]UserDetail, error)
	Get(ctx context.Context, id int64) (*UserDetail, error)
	Update(ctx context.Context, id int64, req UpdateUserRequest) (*User, error)
	Delete(ctx context.Context, id int64) error
}
