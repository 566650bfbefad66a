package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/neighborhood-gateway/internal/pkg/utils"
	"github.com/neighborhood-gateway/internal/usecase"
	"go.uber.org/zap"
)

const coffeeFailedMessage = "Failed to fetch coffee shop data"

// POIHandler - обработчик поиска заведений рядом с точкой
type POIHandler struct {
	nearbyUC *usecase.NearbyPOIUseCase
	logger   *zap.Logger
}

// NewPOIHandler - создание нового POIHandler
func NewPOIHandler(nearbyUC *usecase.NearbyPOIUseCase, logger *zap.Logger) *POIHandler {
	return &POIHandler{
		nearbyUC: nearbyUC,
		logger:   logger,
	}
}

// FindCoffee godoc
// @Summary Кофейни рядом с точкой
// @Description Ищет кофейни рядом с точкой через Azure Maps nearby search. rank - позиция в ответе провайдера начиная с 1; name, phone, address, url и categories отсутствуют, если провайдер их не вернул.
// @Tags POI
// @Produce json
// @Param lon query number true "Долгота WGS84, -180..180"
// @Param lat query number true "Широта WGS84, -90..90"
// @Success 200 {object} dto.FeatureCollectionResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/coffee/find [get]
func (h *POIHandler) FindCoffee(c *fiber.Ctx) error {
	req, err := parseCoordinateRequest(c)
	if err != nil {
		return utils.SendError(c, err, coffeeFailedMessage)
	}

	result, err := h.nearbyUC.FindNearby(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err, coffeeFailedMessage)
	}

	return utils.SendFeatureCollection(c, result)
}
