package users

import (
	"errors"
	"fmt"
)

// Sentinel errors for common user operations
var (
	// ErrUserNotFound is returned when a user lookup finds no matching record
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when registering or updating to an email that
	// belongs to another user
	ErrEmailTaken = errors.New("email already taken")

	// ErrInvalidCredentials is returned on login with a wrong email or password
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// InvalidRoleError is returned when a role value is not one of the known roles
type InvalidRoleError struct {
	Role string
}

func (e *InvalidRoleError) Error() string {
	return fmt.Sprintf("invalid role %q: must be client or admin", e.Role)
}

// ValidationError represents a rejected input field
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
