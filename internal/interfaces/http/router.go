package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/udllano/inventario-api/internal/application/analytics"
	"github.com/udllano/inventario-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	SalesUC     *usecase.MovementUseCase
	PurchasesUC *usecase.MovementUseCase
	DashboardUC *analytics.DashboardUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(metricsMiddleware)
	app.Get("/metrics", metricsHandler())

	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Register)
	products.Get("/", productHandler.List)

	// Sales
	sales := api.Group("/sales")
	salesHandler := NewSalesHandler(deps.SalesUC)
	sales.Post("/", salesHandler.Record)
	sales.Get("/", salesHandler.History)

	// Purchases
	purchases := api.Group("/purchases")
	purchasesHandler := NewPurchasesHandler(deps.PurchasesUC)
	purchases.Post("/", purchasesHandler.Record)
	purchases.Get("/", purchasesHandler.History)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
}
