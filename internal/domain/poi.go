package domain

import "github.com/paulmach/orb/geojson"

// CoffeeShopCategory - код категории Azure Maps для кофеен
const CoffeeShopCategory = 9376006

// POIResult представляет точку интереса, найденную провайдером поиска поблизости.
// Опциональные поля провайдера (имя, телефон, адрес, сайт) могут отсутствовать.
type POIResult struct {
	ID         string     `json:"id"`
	Name       *string    `json:"name,omitempty"`
	Phone      *string    `json:"phone,omitempty"`
	Address    *string    `json:"address,omitempty"`
	URL        *string    `json:"url,omitempty"`
	Categories []string   `json:"categories,omitempty"`
	Score      float64    `json:"score"`
	Distance   float64    `json:"distance"` // meters
	Position   Coordinate `json:"position"`

	// Rank - позиция в ответе провайдера, начиная с 1. Проставляется шлюзом, не провайдером.
	Rank int `json:"rank"`
}

// Feature строит Point по собственной позиции POI (не по точке запроса)
func (p *POIResult) Feature() *geojson.Feature {
	props := map[string]interface{}{
		"id":       p.ID,
		"score":    p.Score,
		"distance": p.Distance,
		"rank":     p.Rank,
	}
	if p.Name != nil {
		props["name"] = *p.Name
	}
	if p.Phone != nil {
		props["phone"] = *p.Phone
	}
	if p.Address != nil {
		props["address"] = *p.Address
	}
	if p.URL != nil {
		props["url"] = *p.URL
	}
	if p.Categories != nil {
		props["categories"] = p.Categories
	}

	return NewFeature(p.Position.Point(), props)
}

// RankPOIs проставляет ранг по порядку ответа провайдера: rank = index + 1.
// Score и distance на ранг не влияют.
func RankPOIs(pois []*POIResult) {
	for i, p := range pois {
		p.Rank = i + 1
	}
}
