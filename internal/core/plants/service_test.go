package plants

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock repository for testing
type mockPlantRepository struct {
	mock.Mock
}

func (m *mockPlantRepository) Create(ctx context.Context, plant *Plant) (*Plant, error) {
	args := m.Called(ctx, plant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Plant), args.Error(1)
}

func (m *mockPlantRepository) GetByID(ctx context.Context, id int64) (*Plant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Plant), args.Error(1)
}

func (m *mockPlantRepository) List(ctx context.Context, ownerID int64) ([]Plant, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Plant), args.Error(1)
}

func (m *mockPlantRepository) Update(ctx context.Context, id int64, req UpdatePlantRequest) (*Plant, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Plant), args.Error(1)
}

func (m *mockPlantRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPlantRepository) LatestVersionImage(ctx context.Context, plantID int64) ([]byte, error) {
	args := m.Called(ctx, plantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type mockPredictor struct {
	mock.Mock
}

func (m *mockPredictor) PredictLabel(ctx context.Context, image []byte) (string, error) {
	args := m.Called(ctx, image)
	return args.String(0), args.Error(1)
}

func TestPlantService_ResolveImage_PlantImageWins(t *testing.T) {
	mockRepo := new(mockPlantRepository)
	service := NewPlantService(mockRepo, nil)

	ctx := context.Background()
	plantImage := []byte("plant-image")
	mockRepo.On("GetByID", ctx, int64(7)).Return(&Plant{ID: 7, Image: plantImage}, nil)

	img, err := service.ResolveImage(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, plantImage, img)

	// Versions must not even be consulted
	mockRepo.AssertNotCalled(t, "LatestVersionImage", mock.Anything, mock.Anything)
}

func TestPlantService_ResolveImage_FallsBackToLatestVersion(t *testing.T) {
	mockRepo := new(mockPlantRepository)
	service := NewPlantService(mockRepo, nil)

	ctx := context.Background()
	versionImage := []byte("version-image")
	mockRepo.On("GetByID", ctx, int64(7)).Return(&Plant{ID: 7}, nil)
	mockRepo.On("LatestVersionImage", ctx, int64(7)).Return(versionImage, nil)

	img, err := service.ResolveImage(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, versionImage, img)
	mockRepo.AssertExpectations(t)
}

func TestPlantService_ResolveImage_NoImageAnywhere(t *testing.T) {
	mockRepo := new(mockPlantRepository)
	service := NewPlantService(mockRepo, nil)

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, int64(7)).Return(&Plant{ID: 7}, nil)
	mockRepo.On("LatestVersionImage", ctx, int64(7)).Return(nil, nil)

	_, err := service.ResolveImage(ctx, 7)
	assert.ErrorIs(t, err, ErrNoImageAvailable)
}

func TestPlantService_ResolveImage_PlantNotFound(t *testing.T) {
	mockRepo := new(mockPlantRepository)
	service := NewPlantService(mockRepo, nil)

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, int64(404)).Return(nil, ErrPlantNotFound)

	_, err := service.ResolveImage(ctx, 404)
	assert.ErrorIs(t, err, ErrPlantNotFound)
}

func TestPlantService_Create_PredictsMissingStatus(t *testing.T) {
	mockRepo := new(mockPlantRepository)
	predictor := new(mockPredictor)
	service := NewPlantService(mockRepo, predictor)

	ctx := context.Background()
	image := []byte("leaf")

	predictor.On("PredictLabel", ctx, image).Return("Tomato_Early_blight", nil)
	mockRepo.On("Create", ctx, mock.MatchedBy(func(p *Plant) bool {
		return p.HealthStatus == "Tomato_Early_blight" && p.OwnerID == 42
	})).Return(&Plant{ID: 1, HealthStatus: "Tomato_Early_blight"}, nil)

	created, err := service.Create(ctx, 42, CreatePlantRequest{Name: "Tomato", Image: image})
	require.NoError(t, err)
	assert.Equal(t, "Tomato_Early_blight", created.HealthStatus)
	predictor.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestPlantService_Create_ExplicitStatusSkipsModel(t *testing.T) {
	mockRepo := new(mockPlantRepository)
	predictor := new(mockPredictor)
	service := NewPlantService(mockRepo, predictor)

	ctx := context.Background()
	mockRepo.On("Create", ctx, mock.Anything).Return(&Plant{ID: 1, HealthStatus: "healthy"}, nil)

	_, err := service.Create(ctx, 42, CreatePlantRequest{
		Name:         "Tomato",
		HealthStatus: "healthy",
		Image:        []byte("leaf"),
	})
	require.NoError(t, err)
	predictor.AssertNotCalled(t, "PredictLabel", mock.Anything, mock.Anything)
}

func TestPlantService_Create_ModelFailureDoesNotBlock(t *testing.T) {
	mockRepo := new(mockPlantRepository)
	predictor := new(mockPredictor)
	service := NewPlantService(mockRepo, predictor)

	ctx := context.Background()
	image := []byte("leaf")

	predictor.On("PredictLabel", ctx, image).Return("", errors.New("model unreachable"))
	mockRepo.On("Create", ctx, mock.MatchedBy(func(p *Plant) bool {
		return p.HealthStatus == ""
	})).Return(&Plant{ID: 1}, nil)

	_, err := service.Create(ctx, 42, CreatePlantRequest{Name: "Tomato", Image: image})
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestPlantService_Create_Unauthenticated(t *testing.T) {
	mockRepo := new(mockPlantRepository)
	service := NewPlantService(mockRepo, nil)

	_, err := service.Create(context.Background(), 0, CreatePlantRequest{Name: "Tomato"})
	assert.ErrorIs(t, err, ErrAuthRequired)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPlantService_Create_RequiresName(t *testing.T) {
	mockRepo := new(mockPlantRepository)
	service := NewPlantService(mockRepo, nil)

	_, err := service.Create(context.Background(), 42, CreatePlantRequest{Name: "   "})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}
