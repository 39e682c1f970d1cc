package dto

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Vistas derivadas puras, recalculadas en cada petición desde las tres
// hojas completas (sin caché ni mantenimiento incremental).
type DashboardSummaryDTO struct {
	// KPIs principales
	TotalUniqueProducts int   `json:"total_unique_products"`
	TotalStock          int64 `json:"total_stock"`
	LowStockCount       int   `json:"low_stock_count"` // stock <= 10

	// Detalle de productos con bajo stock
	LowStock []ProductResponse `json:"low_stock"`

	// Top 5 por cantidad acumulada en cada log
	TopSales     []ProductTotalDTO `json:"top_sales"`
	TopPurchases []ProductTotalDTO `json:"top_purchases"`

	// Datos para los gráficos
	Categories  []CategoryCountDTO `json:"categories"`   // torta de productos por categoría
	StockLevels []ProductResponse  `json:"stock_levels"` // barras, orden descendente por stock
}

// ProductTotalDTO suma de cantidades de un producto en un log.
type ProductTotalDTO struct {
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
}

// CategoryCountDTO número de productos de una categoría.
type CategoryCountDTO struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}
