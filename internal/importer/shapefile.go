package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/neighborhood-gateway/internal/domain"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Options - какие колонки dbf использовать как id, name и description.
// Пустое IDField означает порядковый номер записи начиная с 1.
type Options struct {
	IDField          string
	NameField        string
	DescriptionField string
}

// DefaultOptions соответствуют выгрузке Boston Neighborhood Boundaries
func DefaultOptions() Options {
	return Options{
		IDField:          "OBJECTID",
		NameField:        "Name",
		DescriptionField: "",
	}
}

// ReadShapefile читает полигоны районов из .shp/.dbf. Файл должен быть в WGS84
// (градусы); спроецированные данные отклоняются.
func ReadShapefile(path string, opts Options) ([]*domain.NeighborhoodRecord, error) {
	reader, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open shapefile %s: %w", path, err)
	}
	defer reader.Close()

	fieldIndex := make(map[string]int)
	for i, f := range reader.Fields() {
		fieldIndex[strings.ToLower(fieldName(f))] = i
	}
	for _, name := range []string{opts.IDField, opts.NameField, opts.DescriptionField} {
		if name == "" {
			continue
		}
		if _, ok := fieldIndex[strings.ToLower(name)]; !ok {
			return nil, fmt.Errorf("shapefile %s has no attribute %q", path, name)
		}
	}

	fields := reader.Fields()
	records := make([]*domain.NeighborhoodRecord, 0)
	seen := make(map[string]int)

	for reader.Next() {
		n, shape := reader.Shape()

		polygon, ok := shape.(*shp.Polygon)
		if !ok {
			return nil, fmt.Errorf("record %d: expected polygon, got %T", n, shape)
		}

		geometry, err := PolygonToMultiPolygon(polygon)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", n, err)
		}

		attrs := make(map[string]interface{}, len(fields))
		for i, f := range fields {
			attrs[fieldName(f)] = strings.TrimRight(reader.ReadAttribute(n, i), "\x00 ")
		}

		rec := &domain.NeighborhoodRecord{
			ID:          strconv.Itoa(n + 1),
			Name:        attribute(reader, n, fieldIndex, opts.NameField),
			Description: attribute(reader, n, fieldIndex, opts.DescriptionField),
			Geometry:    geometry,
			Properties:  attrs,
		}
		if opts.IDField != "" {
			rec.ID = attribute(reader, n, fieldIndex, opts.IDField)
		}
		if rec.ID == "" {
			return nil, fmt.Errorf("record %d: empty %s", n, opts.IDField)
		}
		if prev, dup := seen[rec.ID]; dup {
			return nil, fmt.Errorf("record %d: duplicate id %q (first seen in record %d)", n, rec.ID, prev)
		}
		seen[rec.ID] = n

		records = append(records, rec)
	}

	if err := reader.Err(); err != nil {
		return nil, fmt.Errorf("read shapefile %s: %w", path, err)
	}

	return records, nil
}

func fieldName(f shp.Field) string {
	return strings.TrimRight(string(f.Name[:]), "\x00 ")
}

func attribute(reader *shp.Reader, row int, index map[string]int, name string) string {
	if name == "" {
		return ""
	}
	i, ok := index[strings.ToLower(name)]
	if !ok {
		return ""
	}
	return strings.TrimSpace(strings.TrimRight(reader.ReadAttribute(row, i), "\x00"))
}

// PolygonToMultiPolygon разбирает части shp.Polygon на кольца. В shapefile внешние
// кольца идут по часовой стрелке, дырки против; каждая дырка прикрепляется к
// внешнему кольцу, которое ее содержит.
func PolygonToMultiPolygon(p *shp.Polygon) (orb.MultiPolygon, error) {
	if p == nil || len(p.Points) == 0 {
		return nil, fmt.Errorf("empty polygon")
	}

	var (
		result orb.MultiPolygon
		holes  []orb.Ring
	)

	for i := range p.Parts {
		start := int(p.Parts[i])
		end := len(p.Points)
		if i+1 < len(p.Parts) {
			end = int(p.Parts[i+1])
		}
		if start < 0 || end > len(p.Points) || end-start < 4 {
			return nil, fmt.Errorf("part %d has %d points, need at least 4", i, end-start)
		}

		ring := make(orb.Ring, 0, end-start)
		for _, pt := range p.Points[start:end] {
			if !(domain.Coordinate{Lon: pt.X, Lat: pt.Y}).Valid() {
				return nil, fmt.Errorf("point (%v, %v) is outside WGS84 degree range; reproject to EPSG:4326", pt.X, pt.Y)
			}
			ring = append(ring, orb.Point{pt.X, pt.Y})
		}
		if !ring.Closed() {
			ring = append(ring, ring[0])
		}

		if ring.Orientation() == orb.CW {
			result = append(result, orb.Polygon{ring})
		} else {
			holes = append(holes, ring)
		}
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("polygon has no outer ring")
	}

	for _, hole := range holes {
		placed := false
		for i := range result {
			if planar.RingContains(result[i][0], hole[0]) {
				result[i] = append(result[i], hole)
				placed = true
				break
			}
		}
		if !placed {
			return nil, fmt.Errorf("hole starting at %v is outside every outer ring", hole[0])
		}
	}

	return result, nil
}
