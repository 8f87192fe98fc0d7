package plants

import "context"

// Repository defines the interface for plant persistence
type Repository interface {
	Create(ctx context.Context, plant *Plant) (*Plant, error)
	GetByID(ctx context.Context, id int64) (*Plant, error)
	// List returns all plants owned by a user, each with its versions
	// ordered most-recent-first
	List(ctx context.Context, ownerID int64) ([]Plant, error)
	Update(ctx context.Context, id int64, req UpdatePlantRequest) (*Plant, error)
	Delete(ctx context.Context, id int64) error

	// LatestVersionImage returns the image of the plant's most recently
	// created version. It returns (nil, nil) when the plant has no versions
	// or the latest version has no image.
	LatestVersionImage(ctx context.Context, plantID int64) ([]byte, error)
}

// HealthPredictor classifies a plant image into a health status label
type HealthPredictor interface {
	PredictLabel(ctx context.Context, image []byte) (string, error)
}

// Service defines the interface for plant business logic
type Service interface {
	Create(ctx context.Context, callerID int64, req CreatePlantRequest) (*Plant, error)
	Get(ctx context.Context, id int64) (*Plant, error)
	List(ctx context.Context, ownerID int64) ([]Plant, error)
	Update(ctx context.Context, id int64, req UpdatePlantRequest) (*Plant, error)
	Delete(ctx context.Context, id int64) error

	// ResolveImage determines the authoritative image for a plant: its own
	// image when present, else the image of its most recently created version.
	// Fails with ErrPlantNotFound or ErrNoImageAvailable.
	ResolveImage(ctx context.Context, plantID int64) ([]byte, error)
}
