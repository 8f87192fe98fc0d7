package versions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock repository for testing
type mockVersionRepository struct {
	mock.Mock
}

func (m *mockVersionRepository) Create(ctx context.Context, version *Version) (*Version, error) {
	args := m.Called(ctx, version)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Version), args.Error(1)
}

func (m *mockVersionRepository) GetByID(ctx context.Context, id int64) (*Version, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Version), args.Error(1)
}

func (m *mockVersionRepository) ListByPlant(ctx context.Context, plantID int64) ([]Version, error) {
	args := m.Called(ctx, plantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Version), args.Error(1)
}

func (m *mockVersionRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockPredictor struct {
	mock.Mock
}

func (m *mockPredictor) PredictLabel(ctx context.Context, image []byte) (string, error) {
	args := m.Called(ctx, image)
	return args.String(0), args.Error(1)
}

func TestVersionService_Create_ExplicitStatus(t *testing.T) {
	mockRepo := new(mockVersionRepository)
	service := NewVersionService(mockRepo, nil)

	ctx := context.Background()
	mockRepo.On("Create", ctx, mock.MatchedBy(func(v *Version) bool {
		return v.PlantID == 7 && v.UserID == 42 && v.UpdatedHealthStatus == "healthy"
	})).Return(&Version{ID: 1, PlantID: 7, UserID: 42, UpdatedHealthStatus: "healthy"}, nil)

	created, err := service.Create(ctx, 42, CreateVersionRequest{
		PlantID:             7,
		UpdatedHealthStatus: "healthy",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	mockRepo.AssertExpectations(t)
}

func TestVersionService_Create_PredictsMissingStatus(t *testing.T) {
	mockRepo := new(mockVersionRepository)
	predictor := new(mockPredictor)
	service := NewVersionService(mockRepo, predictor)

	ctx := context.Background()
	image := []byte("leaf")

	predictor.On("PredictLabel", ctx, image).Return("Potato_Late_blight", nil)
	mockRepo.On("Create", ctx, mock.MatchedBy(func(v *Version) bool {
		return v.UpdatedHealthStatus == "Potato_Late_blight"
	})).Return(&Version{ID: 1, UpdatedHealthStatus: "Potato_Late_blight"}, nil)

	created, err := service.Create(ctx, 42, CreateVersionRequest{
		PlantID:      7,
		UpdatedImage: image,
	})
	require.NoError(t, err)
	assert.Equal(t, "Potato_Late_blight", created.UpdatedHealthStatus)
	predictor.AssertExpectations(t)
}

func TestVersionService_Create_ValidateInput(t *testing.T) {
	tests := []struct {
		name string
		req  CreateVersionRequest
	}{
		{name: "missing plant", req: CreateVersionRequest{UpdatedHealthStatus: "healthy"}},
		{name: "no status and no image", req: CreateVersionRequest{PlantID: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mockVersionRepository)
			service := NewVersionService(mockRepo, nil)

			_, err := service.Create(context.Background(), 42, tt.req)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestVersionService_Create_Unauthenticated(t *testing.T) {
	mockRepo := new(mockVersionRepository)
	service := NewVersionService(mockRepo, nil)

	_, err := service.Create(context.Background(), 0, CreateVersionRequest{
		PlantID:             7,
		UpdatedHealthStatus: "healthy",
	})
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestVersionService_Create_UnknownPlant(t *testing.T) {
	mockRepo := new(mockVersionRepository)
	service := NewVersionService(mockRepo, nil)

	ctx := context.Background()
	mockRepo.On("Create", ctx, mock.Anything).Return(nil, ErrPlantNotFound)

	_, err := service.Create(ctx, 42, CreateVersionRequest{
		PlantID:             404,
		UpdatedHealthStatus: "healthy",
	})
	assert.ErrorIs(t, err, ErrPlantNotFound)
}

func TestVersionService_ListByPlant(t *testing.T) {
	mockRepo := new(mockVersionRepository)
	service := NewVersionService(mockRepo, nil)

	ctx := context.Background()
	expected := []Version{{ID: 2, PlantID: 7}, {ID: 1, PlantID: 7}}
	mockRepo.On("ListByPlant", ctx, int64(7)).Return(expected, nil)

	result, err := service.ListByPlant(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, result, 2)
	mockRepo.AssertExpectations(t)
}

func TestVersionService_Delete_NotFound(t *testing.T) {
	mockRepo := new(mockVersionRepository)
	service := NewVersionService(mockRepo, nil)

	ctx := context.Background()
	mockRepo.On("Delete", ctx, int64(404)).Return(ErrVersionNotFound)

	err := service.Delete(ctx, 404)
	assert.ErrorIs(t, err, ErrVersionNotFound)
}
