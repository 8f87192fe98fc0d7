package versions

import (
	"context"
	"fmt"
	"log"
)

type versionService struct {
	repo      Repository
	predictor HealthPredictor
}

// NewVersionService creates a new version service.
// predictor can be nil if the disease model is not configured; callers must
// then supply the health status themselves.
func NewVersionService(repo Repository, predictor HealthPredictor) Service {
	return &versionService{
		repo:      repo,
		predictor: predictor,
	}
}

// Create records a new version for a plant.
// When no health status is supplied and an image is, the status is obtained
// from the disease model before anything is persisted.
func (s *versionService) Create(ctx context.Context, callerID int64, req CreateVersionRequest) (*Version, error) {
	if callerID <= 0 {
		return nil, ErrAuthRequired
	}
	if req.PlantID <= 0 {
		return nil, &ValidationError{Message: "plantId is required"}
	}

	status := req.UpdatedHealthStatus
	if status == "" {
		if s.predictor == nil || len(req.UpdatedImage) == 0 {
			return nil, &ValidationError{Message: "updatedHealthStatus is required"}
		}
		label, err := s.predictor.PredictLabel(ctx, req.UpdatedImage)
		if err != nil {
			return nil, fmt.Errorf("failed to classify version image: %w", err)
		}
		status = label
	}

	version := &Version{
		PlantID:             req.PlantID,
		UserID:              callerID,
		UpdatedHealthStatus: status,
		UpdatedImage:        req.UpdatedImage,
	}

	created, err := s.repo.Create(ctx, version)
	if err != nil {
		return nil, err
	}

	log.Printf("[VERSION-CREATE] user=%d plant=%d status=%q", callerID, req.PlantID, status)
	return created, nil
}

func (s *versionService) ListByPlant(ctx context.Context, plantID int64) ([]Version, error) {
	if plantID <= 0 {
		return nil, &ValidationError{Message: "plantId is required"}
	}
	return s.repo.ListByPlant(ctx, plantID)
}

func (s *versionService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrVersionNotFound
	}
	return s.repo.Delete(ctx, id)
}
