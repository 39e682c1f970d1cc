package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/udllano/inventario-api/internal/application/dto"
	"github.com/udllano/inventario-api/internal/domain"
)

// domainError traduce un error de dominio a la respuesta HTTP con su
// código. Estado sin cambios en todos los rechazos: el usuario puede
// reintentar con la entrada corregida.
func domainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingField):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "todos los campos son obligatorios y las cantidades deben ser positivas"})
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, domain.ErrDuplicateID):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_ID", Message: "el ID ya existe, usa un identificador único"})
	case errors.Is(err, domain.ErrDuplicateName):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_NAME", Message: "el nombre ya existe, usa un nombre único"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrStorage):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORAGE_UNAVAILABLE", Message: "almacenamiento no disponible"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
