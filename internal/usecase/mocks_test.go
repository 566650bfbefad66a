package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/neighborhood-gateway/internal/domain"
)

// MockGeocodingRepository is a mock of GeocodingRepository
type MockGeocodingRepository struct {
	mock.Mock
}

func (m *MockGeocodingRepository) ResolveAddress(ctx context.Context, query string) ([]*domain.GeocodeCandidate, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.GeocodeCandidate), args.Error(1)
}

// MockNearbySearchRepository is a mock of NearbySearchRepository
type MockNearbySearchRepository struct {
	mock.Mock
}

func (m *MockNearbySearchRepository) SearchNearby(ctx context.Context, point domain.Coordinate, category int) ([]*domain.POIResult, error) {
	args := m.Called(ctx, point, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.POIResult), args.Error(1)
}

// MockNeighborhoodRepository is a mock of NeighborhoodRepository
type MockNeighborhoodRepository struct {
	mock.Mock
}

func (m *MockNeighborhoodRepository) QueryContainment(ctx context.Context, point domain.Coordinate) ([]*domain.NeighborhoodRecord, error) {
	args := m.Called(ctx, point)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.NeighborhoodRecord), args.Error(1)
}

func (m *MockNeighborhoodRepository) VerifySRID(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func ptrFloat64(v float64) *float64 {
	return &v
}

func ptrString(s string) *string {
	return &s
}
