// Package ledger implementa el protocolo de actualización del inventario
// (servicio de dominio): funciones puras que reciben el estado actual de
// las tablas, validan la operación y devuelven las tablas actualizadas.
// La persistencia es responsabilidad del caller.
package ledger

import (
	"strings"
	"time"

	"github.com/udllano/inventario-api/internal/domain"
	"github.com/udllano/inventario-api/internal/domain/entity"
)

// RegisterProduct valida y añade un producto al final de la tabla.
// Devuelve una copia de la tabla con la fila nueva; las filas existentes
// no se tocan. El ID y el nombre deben ser únicos (el flujo de ventas y
// compras selecciona el producto por nombre, así que un nombre repetido
// haría ambigua la selección).
func RegisterProduct(products []entity.Product, p entity.Product) ([]entity.Product, error) {
	if strings.TrimSpace(p.ID) == "" ||
		strings.TrimSpace(p.Name) == "" ||
		strings.TrimSpace(p.Category) == "" ||
		strings.TrimSpace(p.Unit) == "" ||
		p.Stock < 0 {
		return nil, domain.ErrMissingField
	}
	for _, existing := range products {
		if existing.ID == p.ID {
			return nil, domain.ErrDuplicateID
		}
		if existing.Name == p.Name {
			return nil, domain.ErrDuplicateName
		}
	}
	updated := make([]entity.Product, 0, len(products)+1)
	updated = append(updated, products...)
	updated = append(updated, p)
	return updated, nil
}

// RecordMovement valida y aplica una venta o compra.
//
// Busca el producto por nombre (primera coincidencia), verifica que una
// venta no deje el stock negativo y devuelve las dos tablas resultantes:
// el log de movimientos con una fila añadida y la tabla de productos con
// el stock de la fila afectada reemplazado por stock∓cantidad. Si la
// operación se rechaza no se modifica nada.
func RecordMovement(
	products []entity.Product,
	log []entity.Movement,
	productName string,
	quantity int64,
	kind string,
	now time.Time,
) ([]entity.Product, []entity.Movement, error) {
	if strings.TrimSpace(productName) == "" || quantity <= 0 {
		return nil, nil, domain.ErrMissingField
	}
	if kind != entity.MovementKindSale && kind != entity.MovementKindPurchase {
		return nil, nil, domain.ErrMissingField
	}

	idx := -1
	for i, p := range products {
		if p.Name == productName {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil, domain.ErrProductNotFound
	}
	product := products[idx]

	newStock := product.Stock
	switch kind {
	case entity.MovementKindSale:
		if quantity > product.Stock {
			return nil, nil, domain.ErrInsufficientStock
		}
		newStock -= quantity
	case entity.MovementKindPurchase:
		// Las compras no tienen cota superior.
		newStock += quantity
	}

	updatedProducts := make([]entity.Product, len(products))
	copy(updatedProducts, products)
	updatedProducts[idx].Stock = newStock

	mov := entity.Movement{
		Date:        now,
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    quantity,
		Unit:        product.Unit,
	}
	updatedLog := make([]entity.Movement, 0, len(log)+1)
	updatedLog = append(updatedLog, log...)
	updatedLog = append(updatedLog, mov)

	return updatedProducts, updatedLog, nil
}
