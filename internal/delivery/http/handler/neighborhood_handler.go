package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/neighborhood-gateway/internal/pkg/utils"
	"github.com/neighborhood-gateway/internal/usecase"
	"go.uber.org/zap"
)

const neighborhoodFailedMessage = "Failed to fetch neighborhood data"

// NeighborhoodHandler - обработчик определения района по точке
type NeighborhoodHandler struct {
	neighborhoodUC *usecase.NeighborhoodUseCase
	logger         *zap.Logger
}

// NewNeighborhoodHandler - создание нового NeighborhoodHandler
func NewNeighborhoodHandler(neighborhoodUC *usecase.NeighborhoodUseCase, logger *zap.Logger) *NeighborhoodHandler {
	return &NeighborhoodHandler{
		neighborhoodUC: neighborhoodUC,
		logger:         logger,
	}
}

// FindNeighborhood godoc
// @Summary Район по точке
// @Description Возвращает полигоны всех районов, содержащих точку. Точка вне районов дает пустой массив features.
// @Tags Neighborhoods
// @Produce json
// @Param lon query number true "Долгота WGS84, -180..180"
// @Param lat query number true "Широта WGS84, -90..90"
// @Success 200 {object} dto.FeatureCollectionResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/neighborhoods/find [get]
func (h *NeighborhoodHandler) FindNeighborhood(c *fiber.Ctx) error {
	req, err := parseCoordinateRequest(c)
	if err != nil {
		return utils.SendError(c, err, neighborhoodFailedMessage)
	}

	result, err := h.neighborhoodUC.FindNeighborhood(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err, neighborhoodFailedMessage)
	}

	return utils.SendFeatureCollection(c, result)
}
