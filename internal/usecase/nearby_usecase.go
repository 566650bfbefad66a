package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/neighborhood-gateway/internal/domain"
	"github.com/neighborhood-gateway/internal/domain/repository"
	"github.com/neighborhood-gateway/internal/pkg/validator"
	"github.com/neighborhood-gateway/internal/usecase/dto"
	"github.com/paulmach/orb/geojson"
)

// NearbyPOIUseCase - use case для поиска заведений категории рядом с точкой
type NearbyPOIUseCase struct {
	search   repository.NearbySearchRepository
	category int
	logger   *zap.Logger
}

// NewNearbyPOIUseCase - создание нового NearbyPOIUseCase.
// category - идентификатор категории провайдера (по умолчанию кофейни).
func NewNearbyPOIUseCase(search repository.NearbySearchRepository, category int, logger *zap.Logger) *NearbyPOIUseCase {
	if category == 0 {
		category = domain.CoffeeShopCategory
	}
	return &NearbyPOIUseCase{
		search:   search,
		category: category,
		logger:   logger,
	}
}

// FindNearby - поиск заведений рядом с точкой. Rank = позиция в ответе провайдера, начиная с 1.
func (uc *NearbyPOIUseCase) FindNearby(ctx context.Context, req dto.CoordinateRequest) (*geojson.FeatureCollection, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	point := req.Coordinate()

	pois, err := uc.search.SearchNearby(ctx, point, uc.category)
	if err != nil {
		uc.logger.Error("Failed to search nearby POIs",
			zap.Float64("lon", point.Lon),
			zap.Float64("lat", point.Lat),
			zap.Int("category", uc.category),
			zap.Error(err),
		)
		return nil, err
	}

	domain.RankPOIs(pois)

	features := make([]*geojson.Feature, 0, len(pois))
	for _, p := range pois {
		features = append(features, p.Feature())
	}

	return domain.NewFeatureCollection(features...), nil
}
