package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/neighborhood-gateway/internal/domain"
	pkgerrors "github.com/neighborhood-gateway/internal/pkg/errors"
	"github.com/neighborhood-gateway/internal/usecase"
	"github.com/neighborhood-gateway/internal/usecase/dto"
)

var southEndPolygon = orb.MultiPolygon{{{
	{-71.085, 42.333}, {-71.060, 42.333}, {-71.060, 42.349}, {-71.085, 42.349}, {-71.085, 42.333},
}}}

func TestNeighborhoodUseCase_FindNeighborhood(t *testing.T) {
	ctx := context.Background()
	southEnd := domain.Coordinate{Lon: -71.0700, Lat: 42.3420}
	req := dto.CoordinateRequest{Lon: ptrFloat64(southEnd.Lon), Lat: ptrFloat64(southEnd.Lat)}

	t.Run("point inside one polygon", func(t *testing.T) {
		repo := &MockNeighborhoodRepository{}
		uc := usecase.NewNeighborhoodUseCase(repo, zap.NewNop())

		repo.On("QueryContainment", ctx, southEnd).Return([]*domain.NeighborhoodRecord{
			{
				ID:       "south-end",
				Name:     "South End",
				Geometry: southEndPolygon,
				Properties: map[string]interface{}{
					"id": "south-end", "name": "South End", "description": "Victorian row houses",
				},
			},
		}, nil).Once()

		fc, err := uc.FindNeighborhood(ctx, req)
		require.NoError(t, err)
		require.Len(t, fc.Features, 1)
		assert.Equal(t, "South End", fc.Features[0].Properties["name"])
		assert.Equal(t, southEndPolygon, fc.Features[0].Geometry)
		repo.AssertExpectations(t)
	})

	t.Run("point outside all polygons", func(t *testing.T) {
		repo := &MockNeighborhoodRepository{}
		uc := usecase.NewNeighborhoodUseCase(repo, zap.NewNop())

		harbor := domain.Coordinate{Lon: -71.03, Lat: 42.34}
		repo.On("QueryContainment", ctx, harbor).Return([]*domain.NeighborhoodRecord{}, nil).Once()

		fc, err := uc.FindNeighborhood(ctx, dto.CoordinateRequest{Lon: ptrFloat64(harbor.Lon), Lat: ptrFloat64(harbor.Lat)})
		require.NoError(t, err)

		raw, err := json.Marshal(fc)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, string(raw))
	})

	t.Run("repeated calls return identical collections", func(t *testing.T) {
		repo := &MockNeighborhoodRepository{}
		uc := usecase.NewNeighborhoodUseCase(repo, zap.NewNop())

		records := []*domain.NeighborhoodRecord{
			{ID: "a", Name: "A", Geometry: southEndPolygon},
			{ID: "b", Name: "B", Geometry: southEndPolygon},
		}
		repo.On("QueryContainment", ctx, southEnd).Return(records, nil).Twice()

		first, err := uc.FindNeighborhood(ctx, req)
		require.NoError(t, err)
		second, err := uc.FindNeighborhood(ctx, req)
		require.NoError(t, err)

		a, _ := json.Marshal(first)
		b, _ := json.Marshal(second)
		assert.JSONEq(t, string(a), string(b))
		repo.AssertExpectations(t)
	})

	t.Run("missing coordinate is a validation error", func(t *testing.T) {
		repo := &MockNeighborhoodRepository{}
		uc := usecase.NewNeighborhoodUseCase(repo, zap.NewNop())

		_, err := uc.FindNeighborhood(ctx, dto.CoordinateRequest{Lon: ptrFloat64(-71.07)})
		assert.ErrorIs(t, err, pkgerrors.ErrValidation)
		assert.Contains(t, err.Error(), "lat is required")
		repo.AssertNotCalled(t, "QueryContainment", mock.Anything, mock.Anything)
	})

	t.Run("database failure is propagated", func(t *testing.T) {
		repo := &MockNeighborhoodRepository{}
		uc := usecase.NewNeighborhoodUseCase(repo, zap.NewNop())

		repo.On("QueryContainment", ctx, southEnd).
			Return(nil, pkgerrors.ErrDatabaseQuery.Wrap(errors.New("connection reset"))).Once()

		_, err := uc.FindNeighborhood(ctx, req)
		assert.ErrorIs(t, err, pkgerrors.ErrDatabaseQuery)
	})
}
