package versions

import "context"

// Repository defines the interface for version persistence
type Repository interface {
	Create(ctx context.Context, version *Version) (*Version, error)
	GetByID(ctx context.Context, id int64) (*Version, error)
	// ListByPlant returns a plant's versions ordered most-recent-first
	ListByPlant(ctx context.Context, plantID int64) ([]Version, error)
	Delete(ctx context.Context, id int64) error
}

// HealthPredictor classifies a plant image into a health status label.
// Implemented by the external disease-model client; may be nil in minimal setups.
type HealthPredictor interface {
	PredictLabel(ctx context.Context, image []byte) (string, error)
}

// Service defines the interface for version business logic
type Service interface {
	Create(ctx context.Context, callerID int64, req CreateVersionRequest) (*Version, error)
	ListByPlant(ctx context.Context, plantID int64) ([]Version, error)
	Delete(ctx context.Context, id int64) error
}
