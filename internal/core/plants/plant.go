package plants

import (
	"time"

	"Verdant/internal/core/versions"
)

// Plant is a tracked specimen with a current health assessment and optional image.
// Its effective current image is Image when present, else the image of its
// most recently created version.
type Plant struct {
	ID           int64              `json:"id"`
	Name         string             `json:"name"`
	HealthStatus string             `json:"healthStatus"`
	Description  string             `json:"description"`
	Image        []byte             `json:"plantImage,omitempty"`
	OwnerID      int64              `json:"userId"`
	CreatedAt    time.Time          `json:"createdAt"`
	Versions     []versions.Version `json:"versions,omitempty"`
}

// CreatePlantRequest is the input for registering a new plant
type CreatePlantRequest struct {
	Name         string `json:"name"`
	HealthStatus string `json:"healthStatus"`
	Description  string `json:"description"`
	Image        []byte `json:"plantImage,omitempty"`
}

// UpdatePlantRequest carries partial plant updates.
// Nil fields mean "don't change this field"; a pointer to an empty slice
// clears the stored image.
type UpdatePlantRequest struct {
	Name         *string `json:"name,omitempty"`
	HealthStatus *string `json:"healthStatus,omitempty"`
	Description  *string `json:"description,omitempty"`
	Image        *[]byte `json:"plantImage,omitempty"`
}
