package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/freezer-api/internal/application/dto"
	"github.com/jhoicas/freezer-api/internal/domain"
)

// respondDomainError traduce errores de dominio a respuestas HTTP.
// Los StoreError exponen solo su Message estable; la causa queda en logs.
func respondDomainError(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "datos inválidos",
			Errors:  vErr.Fields,
		})
	}
	var dErr *domain.DuplicateError
	if errors.As(err, &dErr) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "DUPLICATE",
			Message: err.Error(),
		})
	}
	var sErr *domain.StoreError
	if errors.As(err, &sErr) {
		status := fiber.StatusInternalServerError
		if sErr.Timeout {
			status = fiber.StatusGatewayTimeout
		}
		return c.Status(status).JSON(dto.ErrorResponse{Code: "STORE", Message: sErr.Message})
	}

	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "no autorizado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrItemBorrowed):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ITEM_BORROWED", Message: "el ítem ya está prestado"})
	case errors.Is(err, domain.ErrCheckoutNotActive):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CHECKOUT_NOT_ACTIVE", Message: "el préstamo ya fue devuelto"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
