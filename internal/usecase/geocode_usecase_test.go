package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
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

func TestGeocodeUseCase_Geocode(t *testing.T) {
	ctx := context.Background()

	t.Run("success keeps provider order and properties", func(t *testing.T) {
		repo := &MockGeocodingRepository{}
		uc := usecase.NewGeocodeUseCase(repo, zap.NewNop())

		repo.On("ResolveAddress", ctx, "200 Clarendon St, Boston, MA").Return([]*domain.GeocodeCandidate{
			{
				Geometry: orb.Point{-71.0763, 42.3474},
				Properties: map[string]interface{}{
					"address": map[string]interface{}{"formattedAddress": "200 Clarendon St, Boston, MA 02116"},
				},
			},
			{
				Geometry:   orb.Point{-71.0770, 42.3480},
				Properties: map[string]interface{}{"confidence": "Medium"},
			},
		}, nil).Once()

		fc, err := uc.Geocode(ctx, dto.GeocodeRequest{Query: "  200 Clarendon St, Boston, MA  "})
		require.NoError(t, err)
		require.Len(t, fc.Features, 2)

		assert.Equal(t, orb.Point{-71.0763, 42.3474}, fc.Features[0].Geometry)
		address := fc.Features[0].Properties["address"].(map[string]interface{})
		assert.Contains(t, address["formattedAddress"], "Clarendon")
		assert.Equal(t, "Medium", fc.Features[1].Properties["confidence"])
		repo.AssertExpectations(t)
	})

	t.Run("no candidates is an empty collection", func(t *testing.T) {
		repo := &MockGeocodingRepository{}
		uc := usecase.NewGeocodeUseCase(repo, zap.NewNop())

		repo.On("ResolveAddress", ctx, "zzqx").Return([]*domain.GeocodeCandidate{}, nil).Once()

		fc, err := uc.Geocode(ctx, dto.GeocodeRequest{Query: "zzqx"})
		require.NoError(t, err)

		raw, err := json.Marshal(fc)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, string(raw))
	})

	t.Run("blank query is rejected before provider call", func(t *testing.T) {
		repo := &MockGeocodingRepository{}
		uc := usecase.NewGeocodeUseCase(repo, zap.NewNop())

		_, err := uc.Geocode(ctx, dto.GeocodeRequest{Query: "   "})
		assert.ErrorIs(t, err, pkgerrors.ErrValidation)
		assert.Contains(t, err.Error(), "q is required")
		repo.AssertNotCalled(t, "ResolveAddress", mock.Anything, mock.Anything)
	})

	t.Run("overlong query is rejected", func(t *testing.T) {
		repo := &MockGeocodingRepository{}
		uc := usecase.NewGeocodeUseCase(repo, zap.NewNop())

		_, err := uc.Geocode(ctx, dto.GeocodeRequest{Query: strings.Repeat("a", 257)})
		assert.ErrorIs(t, err, pkgerrors.ErrValidation)
		repo.AssertNotCalled(t, "ResolveAddress", mock.Anything, mock.Anything)
	})

	t.Run("provider failure is propagated", func(t *testing.T) {
		repo := &MockGeocodingRepository{}
		uc := usecase.NewGeocodeUseCase(repo, zap.NewNop())

		providerErr := pkgerrors.ErrUpstreamProvider.Wrap(errors.New("connection refused"))
		repo.On("ResolveAddress", ctx, "Boston").Return(nil, providerErr).Once()

		fc, err := uc.Geocode(ctx, dto.GeocodeRequest{Query: "Boston"})
		assert.Nil(t, fc)
		assert.ErrorIs(t, err, pkgerrors.ErrUpstreamProvider)
	})
}
