package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jmoiron/sqlx"
	"github.com/neighborhood-gateway/internal/config"
	"github.com/neighborhood-gateway/internal/domain"
	"github.com/neighborhood-gateway/internal/domain/repository"
	pkgerrors "github.com/neighborhood-gateway/internal/pkg/errors"
	"github.com/neighborhood-gateway/internal/pkg/metrics"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"
)

type NeighborhoodRepository struct {
	db           *sqlx.DB
	logger       *zap.Logger
	schema       string
	table        string
	queryTimeout time.Duration
}

var (
	_ repository.NeighborhoodRepository = (*NeighborhoodRepository)(nil)
	_ repository.NeighborhoodWriter     = (*NeighborhoodRepository)(nil)
)

// NewNeighborhoodRepository создает репозиторий полигонов районов.
// cfg.NeighborhoodTable может быть "table" или "schema.table".
func NewNeighborhoodRepository(db *DB, cfg *config.DatabaseConfig) (*NeighborhoodRepository, error) {
	schema, table, err := splitTableName(cfg.NeighborhoodTable)
	if err != nil {
		return nil, err
	}
	return &NeighborhoodRepository{
		db:           db.DB,
		logger:       db.logger,
		schema:       schema,
		table:        table,
		queryTimeout: cfg.QueryTimeout,
	}, nil
}

func splitTableName(name string) (schema, table string, err error) {
	parts := strings.Split(strings.TrimSpace(name), ".")
	switch {
	case len(parts) == 1 && parts[0] != "":
		return "public", parts[0], nil
	case len(parts) == 2 && parts[0] != "" && parts[1] != "":
		return parts[0], parts[1], nil
	default:
		return "", "", fmt.Errorf("invalid neighborhood table name %q", name)
	}
}

// qualifiedTable возвращает экранированное имя таблицы для подстановки в SQL
func (r *NeighborhoodRepository) qualifiedTable() string {
	return pgx.Identifier{r.schema, r.table}.Sanitize()
}

func (r *NeighborhoodRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.queryTimeout)
}

// VerifySRID проверяет SRID геометрической колонки через Find_SRID
func (r *NeighborhoodRepository) VerifySRID(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var srid int
	err := r.db.QueryRowxContext(ctx, `SELECT Find_SRID($1, $2, $3)`, r.schema, r.table, geometryColumn).Scan(&srid)
	if err != nil {
		return pkgerrors.ErrDatabaseQuery.Wrap(fmt.Errorf("find srid of %s.%s: %w", r.schema, r.table, err))
	}
	if srid != SRID4326 {
		return pkgerrors.ErrDatabaseQuery.Wrap(
			fmt.Errorf("table %s.%s stores geometry in SRID %d, expected %d", r.schema, r.table, srid, SRID4326),
		)
	}

	r.logger.Debug("neighborhood table SRID verified",
		zap.String("table", r.schema+"."+r.table),
		zap.Int("srid", srid),
	)
	return nil
}

type containmentRow struct {
	Properties string `db:"properties"`
	Geometry   string `db:"geometry"`
}

// QueryContainment возвращает все районы, полигон которых содержит точку.
// В свойства попадают только id, name и description; attributes остаются
// данными импорта. Порядок детерминирован (по id), пустой результат - не ошибка.
func (r *NeighborhoodRepository) QueryContainment(ctx context.Context, point domain.Coordinate) (records []*domain.NeighborhoodRecord, err error) {
	start := time.Now()
	defer func() {
		metrics.ContainmentQueryDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.ContainmentQueryErrors.Inc()
		}
	}()

	if !point.Valid() {
		return nil, pkgerrors.ErrInvalidCoordinates
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`
		SELECT
			(to_jsonb(n) - '%[1]s')::text AS properties,
			ST_AsGeoJSON(n.%[1]s) AS geometry
		FROM (
			SELECT %[4]s, t.%[1]s
			FROM %[2]s AS t
			WHERE ST_Contains(t.%[1]s, ST_SetSRID(ST_MakePoint($1, $2), %[3]d))
		) AS n
		ORDER BY n.id
	`, geometryColumn, r.qualifiedTable(), SRID4326, selectColumns("t", containmentColumns))

	rows, err := r.db.QueryxContext(ctx, query, point.Lon, point.Lat)
	if err != nil {
		r.logger.Error("failed to query neighborhood containment",
			zap.Float64("lon", point.Lon),
			zap.Float64("lat", point.Lat),
			zap.Error(err),
		)
		return nil, pkgerrors.ErrDatabaseQuery.Wrap(err)
	}
	defer rows.Close()

	records = make([]*domain.NeighborhoodRecord, 0)
	for rows.Next() {
		var row containmentRow
		if err := rows.StructScan(&row); err != nil {
			return nil, pkgerrors.ErrDatabaseQuery.Wrap(fmt.Errorf("scan neighborhood row: %w", err))
		}

		rec, err := decodeContainmentRow(row)
		if err != nil {
			return nil, pkgerrors.ErrDatabaseQuery.Wrap(err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, pkgerrors.ErrDatabaseQuery.Wrap(err)
	}

	r.logger.Debug("neighborhood containment query",
		zap.Float64("lon", point.Lon),
		zap.Float64("lat", point.Lat),
		zap.Int("matches", len(records)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return records, nil
}

func decodeContainmentRow(row containmentRow) (*domain.NeighborhoodRecord, error) {
	geometry, err := geojson.UnmarshalGeometry([]byte(row.Geometry))
	if err != nil {
		return nil, fmt.Errorf("decode neighborhood geometry: %w", err)
	}

	raw := make(map[string]interface{})
	if err := json.Unmarshal([]byte(row.Properties), &raw); err != nil {
		return nil, fmt.Errorf("decode neighborhood properties: %w", err)
	}

	props := make(map[string]interface{}, len(containmentColumns))
	for _, col := range containmentColumns {
		props[col] = raw[col]
	}

	return &domain.NeighborhoodRecord{
		ID:          stringProperty(props, "id"),
		Name:        stringProperty(props, "name"),
		Description: stringProperty(props, "description"),
		Geometry:    geometry.Geometry(),
		Properties:  props,
	}, nil
}

// selectColumns возвращает "alias.col, ..." для списка колонок
func selectColumns(alias string, cols []string) string {
	quoted := make([]string, 0, len(cols))
	for _, col := range cols {
		quoted = append(quoted, alias+"."+pgx.Identifier{col}.Sanitize())
	}
	return strings.Join(quoted, ", ")
}

func stringProperty(props map[string]interface{}, key string) string {
	v, ok := props[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// EnsureSchema создает таблицу районов и GiST индекс, если их нет
func (r *NeighborhoodRepository) EnsureSchema(ctx context.Context) error {
	createTable := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			attributes  JSONB NOT NULL DEFAULT '{}'::jsonb,
			%s          geometry(MultiPolygon, %d) NOT NULL
		)
	`, r.qualifiedTable(), geometryColumn, SRID4326)

	createIndex := fmt.Sprintf(
		`CREATE INDEX IF NOT EXISTS %s ON %s USING GIST (%s)`,
		pgx.Identifier{r.table + "_geom_idx"}.Sanitize(), r.qualifiedTable(), geometryColumn,
	)

	for _, stmt := range []string{createTable, createIndex} {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return pkgerrors.ErrDatabaseQuery.Wrap(fmt.Errorf("ensure neighborhood schema: %w", err))
		}
	}

	r.logger.Info("neighborhood schema ready", zap.String("table", r.schema+"."+r.table))
	return nil
}

// UpsertBatch записывает районы в одной транзакции: либо все, либо ничего.
// Геометрия приводится к MultiPolygon в SRID 4326.
func (r *NeighborhoodRepository) UpsertBatch(ctx context.Context, records []*domain.NeighborhoodRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	query := fmt.Sprintf(`
		INSERT INTO %[1]s (id, name, description, attributes, %[2]s)
		VALUES ($1, $2, $3, $4::jsonb, ST_Multi(ST_SetSRID(ST_GeomFromGeoJSON($5), %[3]d)))
		ON CONFLICT (id) DO UPDATE SET
			name        = EXCLUDED.name,
			description = EXCLUDED.description,
			attributes  = EXCLUDED.attributes,
			%[2]s       = EXCLUDED.%[2]s
	`, r.qualifiedTable(), geometryColumn, SRID4326)

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, pkgerrors.ErrDatabaseQuery.Wrap(fmt.Errorf("begin upsert: %w", err))
	}
	defer tx.Rollback()

	stmt, err := tx.PreparexContext(ctx, query)
	if err != nil {
		return 0, pkgerrors.ErrDatabaseQuery.Wrap(fmt.Errorf("prepare upsert: %w", err))
	}
	defer stmt.Close()

	for i, rec := range records {
		if rec.ID == "" {
			return 0, pkgerrors.ErrValidation.WithMessage(fmt.Sprintf("record %d has empty id", i))
		}

		geometry, err := geojson.NewGeometry(rec.Geometry).MarshalJSON()
		if err != nil {
			return 0, fmt.Errorf("encode geometry of %s: %w", rec.ID, err)
		}

		attrs := rec.Properties
		if attrs == nil {
			attrs = map[string]interface{}{}
		}
		attributes, err := json.Marshal(attrs)
		if err != nil {
			return 0, fmt.Errorf("encode attributes of %s: %w", rec.ID, err)
		}

		if _, err := stmt.ExecContext(ctx, rec.ID, rec.Name, rec.Description, string(attributes), string(geometry)); err != nil {
			r.logger.Error("failed to upsert neighborhood", zap.String("id", rec.ID), zap.Error(err))
			return 0, pkgerrors.ErrDatabaseQuery.Wrap(fmt.Errorf("upsert %s: %w", rec.ID, err))
		}

		if (i+1)%upsertBatchSize == 0 {
			r.logger.Info("neighborhood upsert progress", zap.Int("written", i+1), zap.Int("total", len(records)))
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, pkgerrors.ErrDatabaseQuery.Wrap(fmt.Errorf("commit upsert: %w", err))
	}

	return len(records), nil
}
