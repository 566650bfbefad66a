package dto

import "github.com/neighborhood-gateway/internal/domain"

// GeocodeRequest - запрос на геокодирование текстового адреса
type GeocodeRequest struct {
	Query string `json:"q" validate:"required,max=256"`
}

// CoordinateRequest - запрос с точкой WGS84 (поиск кофеен и района).
// Указатели отличают отсутствующий параметр от нулевой координаты.
type CoordinateRequest struct {
	Lon *float64 `json:"lon" validate:"required,gte=-180,lte=180"`
	Lat *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
}

// Coordinate возвращает точку запроса; вызывать только после валидации
func (r CoordinateRequest) Coordinate() domain.Coordinate {
	return domain.Coordinate{Lon: *r.Lon, Lat: *r.Lat}
}
