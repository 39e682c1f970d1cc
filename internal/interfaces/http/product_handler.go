package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/udllano/inventario-api/internal/application/dto"
	"github.com/udllano/inventario-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP de productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(in)
	if err != nil {
		return domainError(c, err)
	}
	productsRegistered.Inc()
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Inventario actual de productos
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
