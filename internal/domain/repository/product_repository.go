package repository

import "github.com/udllano/inventario-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para la tabla de
// productos. El proveedor de almacenamiento solo ofrece leer-todo y
// sobrescribir-todo; no hay escrituras incrementales.
type ProductRepository interface {
	GetAll() ([]entity.Product, error)
	ReplaceAll(products []entity.Product) error
}
