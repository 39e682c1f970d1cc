// Package analytics contiene el caso de uso del Dashboard de inventario:
// vistas derivadas puras, recalculadas en cada petición.
package analytics

import (
	"fmt"

	"github.com/udllano/inventario-api/internal/application/dto"
	"github.com/udllano/inventario-api/internal/domain/entity"
	"github.com/udllano/inventario-api/internal/domain/ledger"
	"github.com/udllano/inventario-api/internal/domain/repository"
)

const dashboardTopN = 5 // número de productos en los widgets top

// DashboardUseCase construye el resumen del inventario y sus movimientos.
//
// Fuente de datos: los tres repositorios de tablas (lecturas completas);
// toda la agregación se delega a las funciones puras del ledger.
type DashboardUseCase struct {
	products  repository.ProductRepository
	sales     repository.MovementRepository
	purchases repository.MovementRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	products repository.ProductRepository,
	sales repository.MovementRepository,
	purchases repository.MovementRepository,
) *DashboardUseCase {
	return &DashboardUseCase{products: products, sales: sales, purchases: purchases}
}

// GetSummary lee las tres tablas en paralelo y arma el DashboardSummaryDTO.
func (uc *DashboardUseCase) GetSummary() (*dto.DashboardSummaryDTO, error) {
	type productsResult struct {
		rows []entity.Product
		err  error
	}
	type movementsResult struct {
		rows []entity.Movement
		err  error
	}

	productsCh := make(chan productsResult, 1)
	salesCh := make(chan movementsResult, 1)
	purchasesCh := make(chan movementsResult, 1)

	go func() {
		rows, err := uc.products.GetAll()
		productsCh <- productsResult{rows, err}
	}()
	go func() {
		rows, err := uc.sales.GetAll()
		salesCh <- movementsResult{rows, err}
	}()
	go func() {
		rows, err := uc.purchases.GetAll()
		purchasesCh <- movementsResult{rows, err}
	}()

	products := <-productsCh
	sales := <-salesCh
	purchases := <-purchasesCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: ventas: %w", sales.err)
	}
	if purchases.err != nil {
		return nil, fmt.Errorf("dashboard: compras: %w", purchases.err)
	}

	low := ledger.LowStock(products.rows)

	return &dto.DashboardSummaryDTO{
		TotalUniqueProducts: ledger.UniqueProducts(products.rows),
		TotalStock:          ledger.TotalStock(products.rows),
		LowStockCount:       len(low),
		LowStock:            toProductDTOs(low),
		TopSales:            toTotalDTOs(ledger.TopMoved(sales.rows, dashboardTopN)),
		TopPurchases:        toTotalDTOs(ledger.TopMoved(purchases.rows, dashboardTopN)),
		Categories:          toCategoryDTOs(ledger.CategoryDistribution(products.rows)),
		StockLevels:         toProductDTOs(ledger.StockByProduct(products.rows)),
	}, nil
}

func toProductDTOs(products []entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductResponse{
			ID: p.ID, Name: p.Name, Category: p.Category, Unit: p.Unit, Stock: p.Stock,
		})
	}
	return out
}

func toTotalDTOs(totals []ledger.ProductTotal) []dto.ProductTotalDTO {
	out := make([]dto.ProductTotalDTO, 0, len(totals))
	for _, t := range totals {
		out = append(out, dto.ProductTotalDTO{ProductName: t.ProductName, Quantity: t.Quantity})
	}
	return out
}

func toCategoryDTOs(counts []ledger.CategoryCount) []dto.CategoryCountDTO {
	out := make([]dto.CategoryCountDTO, 0, len(counts))
	for _, c := range counts {
		out = append(out, dto.CategoryCountDTO{Category: c.Category, Count: c.Count})
	}
	return out
}
