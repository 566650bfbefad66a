package domain

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// GeocodeCandidate - один кандидат геокодера: геометрия и свойства провайдера без изменений
type GeocodeCandidate struct {
	Geometry   orb.Geometry
	Properties map[string]interface{}
}

// Feature оборачивает кандидата в канонический Feature
func (g *GeocodeCandidate) Feature() *geojson.Feature {
	return NewFeature(g.Geometry, g.Properties)
}
