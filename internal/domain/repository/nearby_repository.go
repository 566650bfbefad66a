package repository

import (
	"context"

	"github.com/neighborhood-gateway/internal/domain"
)

// NearbySearchRepository определяет методы для поиска точек интереса поблизости
type NearbySearchRepository interface {
	// SearchNearby возвращает POI категории category вокруг точки,
	// упорядоченные по релевантности провайдера. Rank не заполняется.
	SearchNearby(ctx context.Context, point domain.Coordinate, category int) ([]*domain.POIResult, error)
}
