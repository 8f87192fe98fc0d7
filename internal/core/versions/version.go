package versions

import (
	"time"
)

// Version is a timestamped re-assessment of a plant's health.
// Rows are immutable once created; the only mutation is deletion.
type Version struct {
	ID                  int64     `json:"id"`
	PlantID             int64     `json:"plantId"`
	UserID              int64     `json:"userId"`
	UpdatedHealthStatus string    `json:"updatedHealthStatus"`
	UpdatedImage        []byte    `json:"updatedImage,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}

// CreateVersionRequest is the input for recording a new version of a plant
type CreateVersionRequest struct {
	PlantID             int64  `json:"plantId"`
	UpdatedHealthStatus string `json:"updatedHealthStatus"`
	UpdatedImage        []byte `json:"updatedImage,omitempty"`
}
