package repository

import (
	"context"

	"github.com/neighborhood-gateway/internal/domain"
)

// NeighborhoodRepository определяет методы для работы с полигонами районов
type NeighborhoodRepository interface {
	// QueryContainment возвращает районы, полигон которых содержит точку (SRID 4326).
	// Пустой результат - не ошибка.
	QueryContainment(ctx context.Context, point domain.Coordinate) ([]*domain.NeighborhoodRecord, error)

	// VerifySRID проверяет, что геометрия таблицы хранится в SRID 4326
	VerifySRID(ctx context.Context) error
}

// NeighborhoodWriter определяет методы загрузки полигонов районов
type NeighborhoodWriter interface {
	// EnsureSchema создает таблицу и пространственный индекс, если их нет
	EnsureSchema(ctx context.Context) error

	// UpsertBatch вставляет или обновляет районы в одной транзакции
	UpsertBatch(ctx context.Context, records []*domain.NeighborhoodRecord) (int, error)
}
