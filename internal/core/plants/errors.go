package plants

import "errors"

// Sentinel errors for plant operations
var (
	// ErrPlantNotFound is returned when a plant lookup finds no matching record
	ErrPlantNotFound = errors.New("plant not found")

	// ErrNoImageAvailable is returned when neither the plant nor any of its
	// versions carries an image
	ErrNoImageAvailable = errors.New("no image available for the plant or its versions")

	// ErrAuthRequired is returned when an operation needs an authenticated caller
	ErrAuthRequired = errors.New("authentication required")
)

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
