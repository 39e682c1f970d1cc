package entity

import "time"

// DateLayout formato canónico de la fecha de un movimiento, tanto en el
// libro como en la API (el mismo del sistema original).
const DateLayout = "2006-01-02 15:04:05"

// Tipos de movimiento de inventario.
const (
	MovementKindSale     = "VENTA"  // salida: descuenta stock
	MovementKindPurchase = "COMPRA" // entrada: suma stock
)

// Movement representa una venta o una compra registrada en su hoja.
// ProductID, ProductName y Unit son una copia del producto en el momento
// del movimiento; si el producto se renombra después, el histórico
// conserva los valores antiguos. Los movimientos nunca se editan ni se
// eliminan una vez escritos.
type Movement struct {
	Date        time.Time // asignada al registrar (columna Fecha)
	ProductID   string
	ProductName string
	Quantity    int64 // siempre positiva
	Unit        string
}
