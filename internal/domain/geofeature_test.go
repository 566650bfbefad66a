package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func decodeJSON(t *testing.T, v interface{}) map[string]interface{} {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestCoordinate_SerializesLonFirst(t *testing.T) {
	tests := []struct {
		name  string
		coord Coordinate
	}{
		{name: "boston", coord: Coordinate{Lon: -71.0589, Lat: 42.3601}},
		{name: "southern hemisphere", coord: Coordinate{Lon: 151.2093, Lat: -33.8688}},
		{name: "antimeridian", coord: Coordinate{Lon: 180, Lat: -90}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := NewFeatureCollection(NewFeature(tt.coord.Point(), nil))
			out := decodeJSON(t, fc)

			features := out["features"].([]interface{})
			geometry := features[0].(map[string]interface{})["geometry"].(map[string]interface{})
			coords := geometry["coordinates"].([]interface{})

			assert.Equal(t, "Point", geometry["type"])
			assert.Equal(t, tt.coord.Lon, coords[0])
			assert.Equal(t, tt.coord.Lat, coords[1])
		})
	}
}

func TestCoordinate_Valid(t *testing.T) {
	assert.True(t, Coordinate{Lon: -71.0589, Lat: 42.3601}.Valid())
	assert.True(t, Coordinate{Lon: -180, Lat: 90}.Valid())
	assert.False(t, Coordinate{Lon: 42.3601, Lat: -171.0589}.Valid())
	assert.False(t, Coordinate{Lon: 181, Lat: 0}.Valid())
	assert.False(t, Coordinate{Lon: math.NaN(), Lat: 0}.Valid())
}

func TestNewFeatureCollection_EmptyHasFeatureArray(t *testing.T) {
	out := decodeJSON(t, NewFeatureCollection())

	assert.Equal(t, "FeatureCollection", out["type"])
	features, ok := out["features"].([]interface{})
	require.True(t, ok, "features must be an array, got %T", out["features"])
	assert.Empty(t, features)
}

func TestPOIResult_Feature(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		poi := &POIResult{
			ID:         "US/POI/p0/1",
			Name:       strPtr("Tatte Bakery"),
			Phone:      strPtr("+1 617-555-0100"),
			Address:    strPtr("399 Boylston St, Boston, MA 02116"),
			URL:        strPtr("https://tattebakery.com"),
			Categories: []string{"coffee shop", "cafe"},
			Score:      2.57,
			Distance:   120.5,
			Position:   Coordinate{Lon: -71.0712, Lat: 42.3519},
			Rank:       1,
		}

		f := poi.Feature()
		assert.Equal(t, orb.Point{-71.0712, 42.3519}, f.Geometry)
		assert.Equal(t, "Tatte Bakery", f.Properties["name"])
		assert.Equal(t, 1, f.Properties["rank"])
		assert.Equal(t, []string{"coffee shop", "cafe"}, f.Properties["categories"])
	})

	t.Run("missing optional fields are omitted", func(t *testing.T) {
		poi := &POIResult{
			ID:       "US/POI/p0/2",
			Score:    1.1,
			Distance: 300,
			Position: Coordinate{Lon: -71.06, Lat: 42.36},
			Rank:     2,
		}

		f := poi.Feature()
		for _, key := range []string{"name", "phone", "address", "url", "categories"} {
			_, ok := f.Properties[key]
			assert.False(t, ok, "property %q should be absent", key)
		}
		assert.Equal(t, "US/POI/p0/2", f.Properties["id"])
		assert.Equal(t, 2, f.Properties["rank"])
	})
}

func TestRankPOIs_FollowsResponseOrder(t *testing.T) {
	// Score и distance намеренно не отсортированы
	pois := []*POIResult{
		{ID: "a", Score: 1.0, Distance: 500},
		{ID: "b", Score: 9.0, Distance: 10},
		{ID: "c", Score: 5.0, Distance: 50},
	}

	RankPOIs(pois)

	for i, p := range pois {
		assert.Equal(t, i+1, p.Rank)
	}
}

func TestNeighborhoodRecord_Feature(t *testing.T) {
	polygon := orb.Polygon{{{-71.08, 42.34}, {-71.06, 42.34}, {-71.06, 42.35}, {-71.08, 42.34}}}

	t.Run("uses row properties when present", func(t *testing.T) {
		rec := &NeighborhoodRecord{
			ID:       "21",
			Name:     "South End",
			Geometry: polygon,
			Properties: map[string]interface{}{
				"id":          "21",
				"name":        "South End",
				"description": "Victorian row houses",
				"acres":       460.2,
			},
		}

		f := rec.Feature()
		assert.Equal(t, polygon, f.Geometry)
		assert.Equal(t, "South End", f.Properties["name"])
		assert.Equal(t, 460.2, f.Properties["acres"])
	})

	t.Run("falls back to core columns", func(t *testing.T) {
		rec := &NeighborhoodRecord{ID: "7", Name: "Back Bay", Description: "", Geometry: polygon}

		f := rec.Feature()
		assert.Equal(t, "7", f.Properties["id"])
		assert.Equal(t, "Back Bay", f.Properties["name"])
		assert.Equal(t, "", f.Properties["description"])
	})
}
