package azuremaps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/neighborhood-gateway/internal/config"
	"github.com/neighborhood-gateway/internal/domain"
	"github.com/neighborhood-gateway/internal/domain/repository"
	pkgerrors "github.com/neighborhood-gateway/internal/pkg/errors"
	"github.com/neighborhood-gateway/internal/pkg/metrics"
	"github.com/paulmach/orb/geo"
	"go.uber.org/zap"
)

const (
	providerName     = "azure_maps"
	operationGeocode = "geocode"
	operationNearby  = "search_nearby"

	maxErrorBodyBytes = 4 << 10
)

var (
	_ repository.GeocodingRepository    = (*Client)(nil)
	_ repository.NearbySearchRepository = (*Client)(nil)
)

// Client - клиент Azure Maps: геокодирование и поиск POI поблизости.
// Один запрос на вызов, ограниченный таймаутом HTTP клиента, без повторов.
type Client struct {
	httpClient      *http.Client
	baseURL         string
	subscriptionKey string
	geocodeVersion  string
	searchVersion   string
	logger          *zap.Logger
}

// NewClient создает новый клиент для Azure Maps API
func NewClient(cfg *config.AzureMapsConfig, logger *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:         cfg.BaseURL,
		subscriptionKey: cfg.SubscriptionKey,
		geocodeVersion:  cfg.GeocodeVersion,
		searchVersion:   cfg.SearchVersion,
		logger:          logger.With(zap.String("provider", providerName)),
	}
}

// ResolveAddress геокодирует текстовый запрос и возвращает кандидатов в порядке провайдера
func (c *Client) ResolveAddress(ctx context.Context, query string) (candidates []*domain.GeocodeCandidate, err error) {
	start := time.Now()
	defer func() { metrics.ObserveProvider(operationGeocode, start, err) }()

	params := url.Values{}
	params.Set("api-version", c.geocodeVersion)
	params.Set("query", query)

	var resp geocodeResponse
	if err := c.get(ctx, operationGeocode, "/geocode", params, &resp); err != nil {
		return nil, err
	}

	if resp.Features == nil {
		c.logger.Error("Azure Maps geocode response has no feature list", zap.Int("query_len", len(query)))
		return nil, pkgerrors.ErrUpstreamProvider.Wrap(fmt.Errorf("geocode: malformed payload: missing features"))
	}

	candidates = make([]*domain.GeocodeCandidate, 0, len(*resp.Features))
	for i, f := range *resp.Features {
		if f.Geometry == nil || f.Geometry.Geometry() == nil {
			c.logger.Error("Azure Maps geocode feature has no geometry",
				zap.Int("query_len", len(query)),
				zap.Int("index", i))
			return nil, pkgerrors.ErrUpstreamProvider.Wrap(fmt.Errorf("geocode: malformed payload: feature %d has no geometry", i))
		}

		props := f.Properties
		if props == nil {
			props = map[string]interface{}{}
		}

		candidates = append(candidates, &domain.GeocodeCandidate{
			Geometry:   f.Geometry.Geometry(),
			Properties: props,
		})
	}

	c.logger.Debug("Azure Maps geocode call successful",
		zap.Int("query_len", len(query)),
		zap.Int("features", len(candidates)))

	return candidates, nil
}

// SearchNearby ищет POI категории category вокруг точки. Порядок результатов - порядок провайдера.
func (c *Client) SearchNearby(ctx context.Context, point domain.Coordinate, category int) (pois []*domain.POIResult, err error) {
	start := time.Now()
	defer func() { metrics.ObserveProvider(operationNearby, start, err) }()

	params := url.Values{}
	params.Set("api-version", c.searchVersion)
	params.Set("lat", strconv.FormatFloat(point.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(point.Lon, 'f', -1, 64))
	params.Set("categorySet", strconv.Itoa(category))

	var resp nearbyResponse
	if err := c.get(ctx, operationNearby, "/search/nearby/json", params, &resp); err != nil {
		return nil, err
	}

	if resp.Results == nil {
		c.logger.Error("Azure Maps nearby response has no result list",
			zap.Float64("lon", point.Lon),
			zap.Float64("lat", point.Lat))
		return nil, pkgerrors.ErrUpstreamProvider.Wrap(fmt.Errorf("search nearby: malformed payload: missing results"))
	}

	pois = make([]*domain.POIResult, 0, len(*resp.Results))
	for i, r := range *resp.Results {
		if r.Position == nil || r.Position.Lat == nil || r.Position.Lon == nil {
			c.logger.Error("Azure Maps nearby result has no position",
				zap.String("id", r.ID),
				zap.Int("index", i))
			return nil, pkgerrors.ErrUpstreamProvider.Wrap(fmt.Errorf("search nearby: malformed payload: result %d has no position", i))
		}
		poi := toPOIResult(point, r)
		if !poi.Position.Valid() {
			return nil, pkgerrors.ErrUpstreamProvider.Wrap(fmt.Errorf("search nearby: result %d has position out of range", i))
		}
		pois = append(pois, poi)
	}

	c.logger.Debug("Azure Maps nearby call successful",
		zap.Float64("lon", point.Lon),
		zap.Float64("lat", point.Lat),
		zap.Int("results", len(pois)))

	return pois, nil
}

// toPOIResult переносит поля провайдера как есть. Если dist не пришел,
// расстояние в метрах считается по большому кругу от точки запроса.
func toPOIResult(origin domain.Coordinate, r nearbyResult) *domain.POIResult {
	poi := &domain.POIResult{
		ID:       r.ID,
		Score:    r.Score,
		Position: domain.Coordinate{Lon: *r.Position.Lon, Lat: *r.Position.Lat},
	}
	if r.Dist != nil {
		poi.Distance = *r.Dist
	} else {
		poi.Distance = geo.Distance(origin.Point(), poi.Position.Point())
	}
	if r.POI != nil {
		poi.Name = r.POI.Name
		poi.Phone = r.POI.Phone
		poi.URL = r.POI.URL
		poi.Categories = r.POI.Categories
	}
	if r.Address != nil {
		poi.Address = r.Address.FreeformAddress
	}
	return poi
}

// get выполняет GET запрос и декодирует JSON ответ в out.
// Ключ подписки добавляется здесь и никогда не попадает в логи.
func (c *Client) get(ctx context.Context, operation, path string, params url.Values, out interface{}) error {
	endpoint := c.baseURL + path

	c.logger.Debug("Calling Azure Maps API",
		zap.String("operation", operation),
		zap.String("endpoint", endpoint))

	params.Set("subscription-key", c.subscriptionKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.String("operation", operation), zap.Error(err))
		return pkgerrors.ErrUpstreamProvider.Wrap(fmt.Errorf("%s: failed to create request: %w", operation, err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// *url.Error содержит полный URL с ключом; логируем только внутреннюю причину
		cause := err
		if urlErr, ok := err.(*url.Error); ok {
			cause = urlErr.Err
		}
		c.logger.Error("Failed to execute request", zap.String("operation", operation), zap.Error(cause))
		return pkgerrors.ErrUpstreamProvider.Wrap(fmt.Errorf("%s: failed to execute request: %w", operation, cause))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		c.logger.Error("Azure Maps API returned error",
			zap.String("operation", operation),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return pkgerrors.ErrUpstreamProvider.Wrap(fmt.Errorf("%s: azure maps API error: status %d", operation, resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode response", zap.String("operation", operation), zap.Error(err))
		return pkgerrors.ErrUpstreamProvider.Wrap(fmt.Errorf("%s: failed to decode response: %w", operation, err))
	}

	return nil
}
