package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/udllano/inventario-api/internal/application/dto"
	"github.com/udllano/inventario-api/internal/application/usecase"
)

// MovementHandler maneja ventas o compras; misma forma, caso de uso
// distinto por log. kind solo se usa para las métricas.
type MovementHandler struct {
	uc   *usecase.MovementUseCase
	kind string
}

// NewSalesHandler construye el handler del log de ventas.
func NewSalesHandler(uc *usecase.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc, kind: "venta"}
}

// NewPurchasesHandler construye el handler del log de compras.
func NewPurchasesHandler(uc *usecase.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc, kind: "compra"}
}

// Record godoc
// @Summary      Registrar venta o compra
// @Description  Añade un movimiento al log correspondiente y actualiza el
//	stock del producto. Una venta con cantidad mayor al stock se rechaza.
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "product_name y quantity"
// @Success      201   {object}  dto.RecordMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *MovementHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Record(in)
	if err != nil {
		movementsTotal.WithLabelValues(h.kind, "rechazado").Inc()
		return domainError(c, err)
	}
	movementsTotal.WithLabelValues(h.kind, "aplicado").Inc()
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History godoc
// @Summary      Historial de ventas o compras
// @Tags         movements
// @Produce      json
// @Success      200  {object}  dto.MovementListResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *MovementHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
