package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/neighborhood-gateway/internal/domain"
	pkgerrors "github.com/neighborhood-gateway/internal/pkg/errors"
	"github.com/neighborhood-gateway/internal/usecase"
	"github.com/neighborhood-gateway/internal/usecase/dto"
)

func TestNearbyPOIUseCase_FindNearby(t *testing.T) {
	ctx := context.Background()
	downtown := domain.Coordinate{Lon: -71.0589, Lat: 42.3601}
	req := dto.CoordinateRequest{Lon: ptrFloat64(downtown.Lon), Lat: ptrFloat64(downtown.Lat)}

	t.Run("ranks follow provider order", func(t *testing.T) {
		repo := &MockNearbySearchRepository{}
		uc := usecase.NewNearbyPOIUseCase(repo, domain.CoffeeShopCategory, zap.NewNop())

		repo.On("SearchNearby", ctx, downtown, domain.CoffeeShopCategory).Return([]*domain.POIResult{
			{ID: "a", Name: ptrString("Thinking Cup"), Score: 0.5, Distance: 400, Position: domain.Coordinate{Lon: -71.064, Lat: 42.352}},
			{ID: "b", Score: 9.1, Distance: 20, Position: domain.Coordinate{Lon: -71.058, Lat: 42.360}},
			{ID: "c", Score: 3.3, Distance: 90, Position: domain.Coordinate{Lon: -71.057, Lat: 42.361}},
		}, nil).Once()

		fc, err := uc.FindNearby(ctx, req)
		require.NoError(t, err)
		require.Len(t, fc.Features, 3)

		for i, f := range fc.Features {
			assert.Equal(t, i+1, f.Properties["rank"])
		}
		assert.Equal(t, "a", fc.Features[0].Properties["id"])
		assert.Equal(t, "Thinking Cup", fc.Features[0].Properties["name"])
		_, hasName := fc.Features[1].Properties["name"]
		assert.False(t, hasName)
		repo.AssertExpectations(t)
	})

	t.Run("default category is coffee shops", func(t *testing.T) {
		repo := &MockNearbySearchRepository{}
		uc := usecase.NewNearbyPOIUseCase(repo, 0, zap.NewNop())

		repo.On("SearchNearby", ctx, downtown, domain.CoffeeShopCategory).Return([]*domain.POIResult{}, nil).Once()

		fc, err := uc.FindNearby(ctx, req)
		require.NoError(t, err)
		assert.NotNil(t, fc.Features)
		assert.Empty(t, fc.Features)
		repo.AssertExpectations(t)
	})

	t.Run("zero coordinates are accepted", func(t *testing.T) {
		repo := &MockNearbySearchRepository{}
		uc := usecase.NewNearbyPOIUseCase(repo, domain.CoffeeShopCategory, zap.NewNop())

		origin := domain.Coordinate{Lon: 0, Lat: 0}
		repo.On("SearchNearby", ctx, origin, domain.CoffeeShopCategory).Return([]*domain.POIResult{}, nil).Once()

		_, err := uc.FindNearby(ctx, dto.CoordinateRequest{Lon: ptrFloat64(0), Lat: ptrFloat64(0)})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("invalid coordinates never reach provider", func(t *testing.T) {
		repo := &MockNearbySearchRepository{}
		uc := usecase.NewNearbyPOIUseCase(repo, domain.CoffeeShopCategory, zap.NewNop())

		cases := []dto.CoordinateRequest{
			{Lat: ptrFloat64(42.36)},
			{Lon: ptrFloat64(-71.06)},
			{Lon: ptrFloat64(-181), Lat: ptrFloat64(42.36)},
			{Lon: ptrFloat64(-71.06), Lat: ptrFloat64(91)},
		}
		for _, c := range cases {
			_, err := uc.FindNearby(ctx, c)
			assert.ErrorIs(t, err, pkgerrors.ErrValidation)
		}
		repo.AssertNotCalled(t, "SearchNearby", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("provider failure is propagated", func(t *testing.T) {
		repo := &MockNearbySearchRepository{}
		uc := usecase.NewNearbyPOIUseCase(repo, domain.CoffeeShopCategory, zap.NewNop())

		repo.On("SearchNearby", ctx, downtown, domain.CoffeeShopCategory).
			Return(nil, pkgerrors.ErrUpstreamProvider.Wrap(errors.New("status 503"))).Once()

		_, err := uc.FindNearby(ctx, req)
		assert.ErrorIs(t, err, pkgerrors.ErrUpstreamProvider)
	})
}
