package repository

import "github.com/udllano/inventario-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para un log de
// movimientos (ventas o compras). El log es append-only a nivel de
// dominio, pero el proveedor solo sabe sobrescribir la tabla completa.
type MovementRepository interface {
	GetAll() ([]entity.Movement, error)
	ReplaceAll(movements []entity.Movement) error
}
