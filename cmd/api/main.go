package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/udllano/inventario-api/docs"
	"github.com/udllano/inventario-api/internal/application/analytics"
	"github.com/udllano/inventario-api/internal/application/usecase"
	"github.com/udllano/inventario-api/internal/infrastructure/sheets"
	httpRouter "github.com/udllano/inventario-api/internal/interfaces/http"
	"github.com/udllano/inventario-api/pkg/config"
	"github.com/udllano/inventario-api/pkg/logger"
)

// @title        Inventario Universal del Llano API
// @version      1.0
// @description  Control de inventario de la distribuidora: productos, ventas, compras y dashboard, con persistencia en un libro de cálculo.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("libro", cfg.Sheet.Path).
		Msg("iniciando aplicación")

	// Proveedor de almacenamiento: libro xlsx; se crea con las hojas
	// Productos/Ventas/Compras si no existe. Un libro inaccesible es
	// fatal para la sesión, sin reintentos.
	store, err := sheets.Open(cfg.Sheet.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir libro de inventario")
	}
	defer store.Close()

	productRepo := sheets.NewProductRepository(store)
	salesRepo := sheets.NewSalesRepository(store)
	purchasesRepo := sheets.NewPurchasesRepository(store)

	productUC := usecase.NewProductUseCase(productRepo)
	salesUC := usecase.NewSalesUseCase(productRepo, salesRepo)
	purchasesUC := usecase.NewPurchasesUseCase(productRepo, purchasesRepo)
	dashboardUC := analytics.NewDashboardUseCase(productRepo, salesRepo, purchasesRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Llano API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		SalesUC:     salesUC,
		PurchasesUC: purchasesUC,
		DashboardUC: dashboardUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
