package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	pkgerrors "github.com/neighborhood-gateway/internal/pkg/errors"
	"github.com/neighborhood-gateway/internal/usecase/dto"
)

// parseCoordinateRequest читает lon/lat из query. Отсутствующий параметр
// остается nil и отклоняется валидатором use case.
func parseCoordinateRequest(c *fiber.Ctx) (dto.CoordinateRequest, error) {
	var req dto.CoordinateRequest

	lon, err := parseFloatParam(c, "lon")
	if err != nil {
		return req, err
	}
	lat, err := parseFloatParam(c, "lat")
	if err != nil {
		return req, err
	}

	req.Lon = lon
	req.Lat = lat
	return req, nil
}

func parseFloatParam(c *fiber.Ctx, name string) (*float64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, pkgerrors.ErrValidation.WithMessage(fmt.Sprintf("%s must be a number", name)).Wrap(err)
	}
	return &v, nil
}
