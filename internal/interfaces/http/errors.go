package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-analytics/internal/application/dto"
	"github.com/jhoicas/Inventario-analytics/internal/domain"
)

// statusFor traduce errores del dominio a status HTTP y código de error.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrDatasetUnavailable):
		return fiber.StatusServiceUnavailable, "DATASET_UNAVAILABLE"
	case errors.Is(err, domain.ErrMaterialNotFound):
		return fiber.StatusNotFound, "MATERIAL_NOT_FOUND"
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrMalformedRecord):
		return fiber.StatusBadRequest, "INVALID_INPUT"
	case errors.Is(err, domain.ErrInvalidConfiguration):
		return fiber.StatusBadRequest, "INVALID_CONFIGURATION"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

// writeError responde con dto.ErrorResponse. Los 5xx se registran y no
// exponen el detalle interno.
func writeError(c *fiber.Ctx, log zerolog.Logger, err error) error {
	status, code := statusFor(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
		msg = "error interno del servidor"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func badParams(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: msg})
}
