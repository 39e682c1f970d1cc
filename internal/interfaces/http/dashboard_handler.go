package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/udllano/inventario-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del Dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen del inventario
// @Description  KPIs (productos únicos, stock total, bajo stock <= 10),
//	top 5 de ventas y compras por cantidad, distribución por categoría y
//	niveles de stock. Se recalcula completo en cada petición.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(summary)
}
