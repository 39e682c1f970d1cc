package entity

// Product representa un producto del catálogo de la distribuidora.
// Stock es la única fuente de verdad del inventario actual y solo se
// modifica aplicando ventas y compras a través del ledger.
type Product struct {
	ID       string // identificador único (columna ID_Producto)
	Name     string
	Category string
	Unit     string // presentación: caja, unidad, litro...
	Stock    int64  // nunca negativo
}
