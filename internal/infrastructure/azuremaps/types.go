package azuremaps

import "github.com/paulmach/orb/geojson"

// geocodeResponse - ответ Geocoding API (GeoJSON FeatureCollection).
// Features - указатель: отсутствие списка отличается от пустого списка.
type geocodeResponse struct {
	Type     string            `json:"type"`
	Features *[]geocodeFeature `json:"features"`
}

type geocodeFeature struct {
	Type       string                 `json:"type"`
	Geometry   *geojson.Geometry      `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

// nearbyResponse - ответ Search Nearby API v1.0
type nearbyResponse struct {
	Summary struct {
		NumResults   int `json:"numResults"`
		TotalResults int `json:"totalResults"`
	} `json:"summary"`
	Results *[]nearbyResult `json:"results"`
}

type nearbyResult struct {
	Type     string        `json:"type"`
	ID       string        `json:"id"`
	Score    float64       `json:"score"`
	Dist     *float64      `json:"dist"`
	POI      *poiInfo      `json:"poi"`
	Address  *addressInfo  `json:"address"`
	Position *positionInfo `json:"position"`
}

type poiInfo struct {
	Name       *string  `json:"name"`
	Phone      *string  `json:"phone"`
	URL        *string  `json:"url"`
	Categories []string `json:"categories"`
}

type addressInfo struct {
	FreeformAddress *string `json:"freeformAddress"`
}

type positionInfo struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}
