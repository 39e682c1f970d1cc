package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventario_http_requests_total",
		Help: "Peticiones HTTP por ruta y código de estado.",
	}, []string{"method", "path", "status"})

	movementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventario_movements_total",
		Help: "Movimientos de inventario por tipo y resultado.",
	}, []string{"kind", "result"})

	productsRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventario_products_registered_total",
		Help: "Productos registrados con éxito.",
	})
)

// metricsMiddleware cuenta cada petición con la ruta declarada (no la
// URL cruda, para no disparar la cardinalidad de las etiquetas).
func metricsMiddleware(c *fiber.Ctx) error {
	err := c.Next()
	path := c.Route().Path
	httpRequestsTotal.WithLabelValues(
		c.Method(), path, strconv.Itoa(c.Response().StatusCode()),
	).Inc()
	return err
}

// metricsHandler expone el registro de prometheus en formato de texto.
func metricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
