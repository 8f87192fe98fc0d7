package versions

import "errors"

// Sentinel errors for version operations
var (
	// ErrVersionNotFound is returned when a version lookup finds no matching record
	ErrVersionNotFound = errors.New("version not found")

	// ErrPlantNotFound is returned when the referenced plant does not exist
	ErrPlantNotFound = errors.New("plant not found")

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
