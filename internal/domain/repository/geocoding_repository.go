package repository

import (
	"context"

	"github.com/neighborhood-gateway/internal/domain"
)

// GeocodingRepository определяет методы для работы с провайдером геокодирования
type GeocodingRepository interface {
	// ResolveAddress возвращает кандидатов для текстового запроса в порядке провайдера
	// (первый кандидат считается лучшим совпадением)
	ResolveAddress(ctx context.Context, query string) ([]*domain.GeocodeCandidate, error)
}
