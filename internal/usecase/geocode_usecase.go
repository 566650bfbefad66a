package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/neighborhood-gateway/internal/domain"
	"github.com/neighborhood-gateway/internal/domain/repository"
	"github.com/neighborhood-gateway/internal/pkg/validator"
	"github.com/neighborhood-gateway/internal/usecase/dto"
	"github.com/paulmach/orb/geojson"
)

// GeocodeUseCase - use case для прямого геокодирования адреса
type GeocodeUseCase struct {
	geocoder repository.GeocodingRepository
	logger   *zap.Logger
}

// NewGeocodeUseCase - создание нового GeocodeUseCase
func NewGeocodeUseCase(geocoder repository.GeocodingRepository, logger *zap.Logger) *GeocodeUseCase {
	return &GeocodeUseCase{
		geocoder: geocoder,
		logger:   logger,
	}
}

// Geocode - разрешение адреса в коллекцию кандидатов в порядке провайдера.
// Отсутствие кандидатов - успешный пустой результат.
func (uc *GeocodeUseCase) Geocode(ctx context.Context, req dto.GeocodeRequest) (*geojson.FeatureCollection, error) {
	req.Query = strings.TrimSpace(req.Query)
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	candidates, err := uc.geocoder.ResolveAddress(ctx, req.Query)
	if err != nil {
		// текст запроса может быть адресом пользователя, в лог идет только длина
		uc.logger.Error("Failed to geocode address",
			zap.Int("query_len", len(req.Query)),
			zap.Error(err),
		)
		return nil, err
	}

	features := make([]*geojson.Feature, 0, len(candidates))
	for _, c := range candidates {
		features = append(features, c.Feature())
	}

	uc.logger.Debug("Geocode resolved", zap.Int("candidates", len(features)))

	return domain.NewFeatureCollection(features...), nil
}
