package domain

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// SRIDWGS84 - система координат всех геометрий шлюза (lon/lat, градусы)
const SRIDWGS84 = 4326

// Coordinate - точка WGS84. Порядок полей повторяет порядок сериализации: [lon, lat]
type Coordinate struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// Point возвращает orb.Point; orb хранит точку как [lon, lat]
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lon, c.Lat}
}

// Valid проверяет, что координата лежит в допустимых границах WGS84
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Lon) || math.IsNaN(c.Lat) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// NewFeature оборачивает геометрию и свойства в канонический GeoJSON Feature.
// Свойства копируются, ключи провайдера сохраняются как есть.
func NewFeature(geometry orb.Geometry, properties map[string]interface{}) *geojson.Feature {
	f := geojson.NewFeature(geometry)
	for k, v := range properties {
		f.Properties[k] = v
	}
	return f
}

// NewFeatureCollection собирает коллекцию, сохраняя порядок фич.
// Пустой вход сериализуется как "features": [], а не null.
func NewFeatureCollection(features ...*geojson.Feature) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, f := range features {
		fc.Append(f)
	}
	return fc
}
