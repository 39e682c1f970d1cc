package dto

// RegisterProductRequest entrada para registrar un producto.
// Todos los campos de texto son obligatorios; initial_stock >= 0.
type RegisterProductRequest struct {
	ID           string `json:"id" validate:"required,min=1,max=100"`
	Name         string `json:"name" validate:"required,min=1,max=200"`
	Category     string `json:"category" validate:"required"`
	Unit         string `json:"unit" validate:"required"`
	InitialStock int64  `json:"initial_stock" validate:"min=0"`
}

// ProductResponse salida de un producto con su stock actual.
type ProductResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Unit     string `json:"unit"`
	Stock    int64  `json:"stock"`
}

// ProductListResponse inventario actual completo.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
