package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/facility-finder/internal/domain"
)

// MockPlacesRepository is a mock of PlacesRepository
type MockPlacesRepository struct {
	mock.Mock
}

func (m *MockPlacesRepository) SearchNearby(ctx context.Context, req domain.NearbySearchRequest) ([]byte, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockPlacesRepository) SearchText(ctx context.Context, req domain.TextSearchRequest) ([]byte, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockPlacesRepository) GetPlace(ctx context.Context, req domain.DetailLookupRequest) ([]byte, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func ptrFloat64(v float64) *float64 {
	return &v
}

func ptrString(v string) *string {
	return &v
}

func ptrInt(v int) *int {
	return &v
}

func names(facilities []domain.Facility) []string {
	result := make([]string, 0, len(facilities))
	for _, f := range facilities {
		if f.Name == nil {
			result = append(result, "")
			continue
		}
		result = append(result, *f.Name)
	}
	return result
}
