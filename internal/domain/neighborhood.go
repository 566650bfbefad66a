package domain

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// NeighborhoodRecord - строка таблицы районов, содержащая точку запроса
type NeighborhoodRecord struct {
	ID          string
	Name        string
	Description string
	Geometry    orb.Geometry

	// Properties - негеометрические колонки выборки: id, name, description
	Properties map[string]interface{}
}

// Feature возвращает полигон района как GeoJSON Feature
func (n *NeighborhoodRecord) Feature() *geojson.Feature {
	props := n.Properties
	if props == nil {
		props = map[string]interface{}{
			"id":          n.ID,
			"name":        n.Name,
			"description": n.Description,
		}
	}
	return NewFeature(n.Geometry, props)
}
