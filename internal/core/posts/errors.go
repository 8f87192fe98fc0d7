package posts

import (
	"errors"
	"fmt"
)

// Sentinel errors for common post operations
var (
	// ErrPostNotFound is returned when a post lookup finds no matching record
	ErrPostNotFound = errors.New("post not found")

	// ErrNotPostAuthor is returned when a caller tries to update a post they
	// did not create
	ErrNotPostAuthor = errors.New("caller is not the post author")

	// ErrAuthRequired is returned when an operation needs an authenticated caller
	ErrAuthRequired = errors.New("authentication required")

	// ErrLikedRequired is returned when a partial update omits the liked flag
	ErrLikedRequired = errors.New("liked status is required")
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
