package plants

import (
	"context"
	"fmt"
	"log"
	"strings"
)

type plantService struct {
	repo      Repository
	predictor HealthPredictor
}

// NewPlantService creates a new plant service.
// predictor can be nil if the disease model is not configured.
func NewPlantService(repo Repository, predictor HealthPredictor) Service {
	return &plantService{
		repo:      repo,
		predictor: predictor,
	}
}

func (s *plantService) Create(ctx context.Context, callerID int64, req CreatePlantRequest) (*Plant, error) {
	if callerID <= 0 {
		return nil, ErrAuthRequired
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, &ValidationError{Message: "name is required"}
	}

	status := req.HealthStatus
	if status == "" && s.predictor != nil && len(req.Image) > 0 {
		label, err := s.predictor.PredictLabel(ctx, req.Image)
		if err != nil {
			// The model being down should not block registering a plant;
			// the status can be filled in later by a version
			log.Printf("[PLANT-CREATE] Warning: failed to classify plant image: %v", err)
		} else {
			status = label
		}
	}

	plant := &Plant{
		Name:         strings.TrimSpace(req.Name),
		HealthStatus: status,
		Description:  req.Description,
		Image:        req.Image,
		OwnerID:      callerID,
	}

	return s.repo.Create(ctx, plant)
}

func (s *plantService) Get(ctx context.Context, id int64) (*Plant, error) {
	if id <= 0 {
		return nil, ErrPlantNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *plantService) List(ctx context.Context, ownerID int64) ([]Plant, error) {
	if ownerID <= 0 {
		return nil, ErrAuthRequired
	}
	return s.repo.List(ctx, ownerID)
}

func (s *plantService) Update(ctx context.Context, id int64, req UpdatePlantRequest) (*Plant, error) {
	if id <= 0 {
		return nil, ErrPlantNotFound
	}
	return s.repo.Update(ctx, id, req)
}

func (s *plantService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrPlantNotFound
	}
	return s.repo.Delete(ctx, id)
}

// ResolveImage picks the plant's own image when present, falling back to the
// image of the most recently created version. A plant whose latest version
// has no image resolves to ErrNoImageAvailable even if an older version has
// one; only the newest assessment counts.
func (s *plantService) ResolveImage(ctx context.Context, plantID int64) ([]byte, error) {
	plant, err := s.repo.GetByID(ctx, plantID)
	if err != nil {
		return nil, err
	}

	if len(plant.Image) > 0 {
		return plant.Image, nil
	}

	img, err := s.repo.LatestVersionImage(ctx, plantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load latest version image: %w", err)
	}
	if len(img) == 0 {
		return nil, ErrNoImageAvailable
	}

	return img, nil
}
