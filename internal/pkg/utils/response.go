package utils

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/neighborhood-gateway/internal/pkg/errors"
	"github.com/paulmach/orb/geojson"
)

// ErrorResponse - тело ответа об ошибке. Внутренний тип ошибки клиенту не отдается.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SendFeatureCollection отдает коллекцию как есть, без конверта data/meta
func SendFeatureCollection(c *fiber.Ctx, fc *geojson.FeatureCollection) error {
	return c.JSON(fc)
}

// SendError отдает 4xx с сообщением ошибки валидации; любые другие ошибки
// сворачиваются в 500 с общим сообщением genericMessage.
func SendError(c *fiber.Ctx, err error, genericMessage string) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) && appErr.IsClientError() {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr.Message,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: genericMessage,
	})
}
