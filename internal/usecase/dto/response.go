package dto

// Типы ниже описывают тела ответов для swagger. В коде ответы строятся
// через orb/geojson, сериализация совпадает.

// FeatureResponse - GeoJSON Feature
type FeatureResponse struct {
	Type       string                 `json:"type" example:"Feature"`
	Geometry   GeometryResponse       `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

// GeometryResponse - GeoJSON geometry, координаты в порядке [lon, lat]
type GeometryResponse struct {
	Type        string      `json:"type" example:"Point"`
	Coordinates interface{} `json:"coordinates" swaggertype:"array,number" example:"-71.0763,42.3474"`
}

// FeatureCollectionResponse - GeoJSON FeatureCollection; features всегда массив
type FeatureCollectionResponse struct {
	Type     string            `json:"type" example:"FeatureCollection"`
	Features []FeatureResponse `json:"features"`
}

// HealthResponse - ответ liveness-проверки
type HealthResponse struct {
	Status string `json:"status" example:"healthy"`
	Time   string `json:"time" example:"2025-01-01T12:00:00Z"`
}

// ReadyResponse - ответ readiness-проверки
type ReadyResponse struct {
	Status string            `json:"status" example:"ready"`
	Checks map[string]string `json:"checks"`
}
