package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/neighborhood-gateway/internal/domain/repository"
	"go.uber.org/zap"
)

// Importer загружает полигоны районов из shapefile в пространственную БД
type Importer struct {
	writer repository.NeighborhoodWriter
	logger *zap.Logger
}

func New(writer repository.NeighborhoodWriter, logger *zap.Logger) *Importer {
	return &Importer{
		writer: writer,
		logger: logger,
	}
}

// Run читает файл целиком до записи, поэтому ошибка разбора не оставляет
// таблицу в частично обновленном состоянии
func (im *Importer) Run(ctx context.Context, path string, opts Options) (int, error) {
	start := time.Now()

	records, err := ReadShapefile(path, opts)
	if err != nil {
		return 0, err
	}
	im.logger.Info("Shapefile parsed",
		zap.String("path", path),
		zap.Int("records", len(records)),
	)

	if err := im.writer.EnsureSchema(ctx); err != nil {
		return 0, fmt.Errorf("ensure schema: %w", err)
	}

	written, err := im.writer.UpsertBatch(ctx, records)
	if err != nil {
		return 0, fmt.Errorf("upsert neighborhoods: %w", err)
	}

	im.logger.Info("Neighborhoods imported",
		zap.Int("written", written),
		zap.Duration("elapsed", time.Since(start)),
	)
	return written, nil
}
