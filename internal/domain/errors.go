package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrDuplicateID       = errors.New("el ID de producto ya existe")
	ErrDuplicateName     = errors.New("el nombre de producto ya existe")
	ErrMissingField      = errors.New("campo obligatorio vacío o inválido")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrStorage           = errors.New("almacenamiento no disponible")
)
