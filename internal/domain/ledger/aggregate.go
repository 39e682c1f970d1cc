package ledger

import (
	"sort"

	"github.com/udllano/inventario-api/internal/domain/entity"
)

// LowStockThreshold marca el umbral de "bajo stock" del dashboard.
const LowStockThreshold = 10

// UniqueProducts cuenta los IDs distintos de la tabla de productos.
func UniqueProducts(products []entity.Product) int {
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		seen[p.ID] = struct{}{}
	}
	return len(seen)
}

// TotalStock suma el stock de todos los productos. Los valores no
// numéricos de la hoja ya llegan coercionados a 0 desde el storage.
func TotalStock(products []entity.Product) int64 {
	var total int64
	for _, p := range products {
		total += p.Stock
	}
	return total
}

// LowStock devuelve los productos con stock <= LowStockThreshold,
// en el orden de la tabla.
func LowStock(products []entity.Product) []entity.Product {
	var low []entity.Product
	for _, p := range products {
		if p.Stock <= LowStockThreshold {
			low = append(low, p)
		}
	}
	return low
}

// ProductTotal acumulado de cantidades de un producto en un log.
type ProductTotal struct {
	ProductName string
	Quantity    int64
}

// TopMoved agrupa el log por nombre de producto, suma cantidades y
// devuelve los n grupos con mayor suma. El desempate conserva el orden
// de primera aparición en el log (orden estable de agrupación).
func TopMoved(log []entity.Movement, n int) []ProductTotal {
	totals := make(map[string]int64, len(log))
	order := make([]string, 0, len(log))
	for _, m := range log {
		if _, ok := totals[m.ProductName]; !ok {
			order = append(order, m.ProductName)
		}
		totals[m.ProductName] += m.Quantity
	}

	ranked := make([]ProductTotal, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, ProductTotal{ProductName: name, Quantity: totals[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// CategoryCount número de productos por categoría.
type CategoryCount struct {
	Category string
	Count    int
}

// CategoryDistribution cuenta productos por categoría, en orden de
// primera aparición (para el gráfico de torta del dashboard).
func CategoryDistribution(products []entity.Product) []CategoryCount {
	counts := make(map[string]int, len(products))
	order := make([]string, 0, len(products))
	for _, p := range products {
		if _, ok := counts[p.Category]; !ok {
			order = append(order, p.Category)
		}
		counts[p.Category]++
	}
	out := make([]CategoryCount, 0, len(order))
	for _, c := range order {
		out = append(out, CategoryCount{Category: c, Count: counts[c]})
	}
	return out
}

// StockByProduct devuelve los productos ordenados por stock descendente
// (para el gráfico de barras de niveles de stock).
func StockByProduct(products []entity.Product) []entity.Product {
	sorted := make([]entity.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Stock > sorted[j].Stock
	})
	return sorted
}
