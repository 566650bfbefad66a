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

// NeighborhoodUseCase - use case для определения района по точке
type NeighborhoodUseCase struct {
	neighborhoodRepo repository.NeighborhoodRepository
	logger           *zap.Logger
}

// NewNeighborhoodUseCase - создание нового NeighborhoodUseCase
func NewNeighborhoodUseCase(neighborhoodRepo repository.NeighborhoodRepository, logger *zap.Logger) *NeighborhoodUseCase {
	return &NeighborhoodUseCase{
		neighborhoodRepo: neighborhoodRepo,
		logger:           logger,
	}
}

// FindNeighborhood - все районы, содержащие точку. Точка вне всех полигонов
// дает пустую коллекцию, а не ошибку.
func (uc *NeighborhoodUseCase) FindNeighborhood(ctx context.Context, req dto.CoordinateRequest) (*geojson.FeatureCollection, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	point := req.Coordinate()

	records, err := uc.neighborhoodRepo.QueryContainment(ctx, point)
	if err != nil {
		uc.logger.Error("Failed to find neighborhood",
			zap.Float64("lon", point.Lon),
			zap.Float64("lat", point.Lat),
			zap.Error(err),
		)
		return nil, err
	}

	features := make([]*geojson.Feature, 0, len(records))
	for _, rec := range records {
		features = append(features, rec.Feature())
	}

	return domain.NewFeatureCollection(features...), nil
}
