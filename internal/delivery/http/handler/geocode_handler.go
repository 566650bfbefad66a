package handler

import (
	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"
	"github.com/neighborhood-gateway/internal/pkg/utils"
	"github.com/neighborhood-gateway/internal/usecase"
	"github.com/neighborhood-gateway/internal/usecase/dto"
	"go.uber.org/zap"
)

const geocodeFailedMessage = "Failed to fetch geocode data"

// GeocodeHandler - обработчик геокодирования адресов
type GeocodeHandler struct {
	geocodeUC *usecase.GeocodeUseCase
	logger    *zap.Logger
}

// NewGeocodeHandler - создание нового GeocodeHandler
func NewGeocodeHandler(geocodeUC *usecase.GeocodeUseCase, logger *zap.Logger) *GeocodeHandler {
	return &GeocodeHandler{
		geocodeUC: geocodeUC,
		logger:    logger,
	}
}

// Geocode godoc
// @Summary Геокодирование адреса
// @Description Разрешает текстовый адрес в кандидатов Azure Maps. Порядок и свойства кандидатов сохраняются как у провайдера, properties.address.formattedAddress содержит полный адрес.
// @Tags Geocode
// @Produce json
// @Param q query string true "Адрес или место, 1..256 символов"
// @Success 200 {object} dto.FeatureCollectionResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/geocode [get]
func (h *GeocodeHandler) Geocode(c *fiber.Ctx) error {
	req := dto.GeocodeRequest{Query: fiberutils.CopyString(c.Query("q"))}

	result, err := h.geocodeUC.Geocode(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err, geocodeFailedMessage)
	}

	return utils.SendFeatureCollection(c, result)
}
