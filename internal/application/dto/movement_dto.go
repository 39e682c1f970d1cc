package dto

// RecordMovementRequest body para POST /api/sales y POST /api/purchases.
// El producto se selecciona por nombre, igual que en el formulario
// original; el nombre es único desde el registro.
type RecordMovementRequest struct {
	ProductName string `json:"product_name" validate:"required"`
	Quantity    int64  `json:"quantity" validate:"min=1"`
}

// MovementResponse una fila del historial de ventas o compras.
type MovementResponse struct {
	Date        string `json:"date"` // 2006-01-02 15:04:05
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
	Unit        string `json:"unit"`
}

// RecordMovementResponse resultado de un movimiento aplicado.
type RecordMovementResponse struct {
	Movement MovementResponse `json:"movement"`
	NewStock int64            `json:"new_stock"`
}

// MovementListResponse historial completo de un log.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}
