package usecase

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/udllano/inventario-api/internal/application/dto"
	"github.com/udllano/inventario-api/internal/domain/entity"
	"github.com/udllano/inventario-api/internal/domain/ledger"
	"github.com/udllano/inventario-api/internal/domain/repository"
)

// ProductUseCase registro y listado de productos. Cada operación es un
// ciclo completo leer-modificar-escribir contra el almacenamiento; el
// ledger decide sobre el snapshot leído.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Register valida y persiste un producto nuevo. En caso de rechazo no
// se escribe nada y el error de dominio sube al handler.
func (uc *ProductUseCase) Register(in dto.RegisterProductRequest) (*dto.ProductResponse, error) {
	products, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}

	product := entity.Product{
		ID:       in.ID,
		Name:     in.Name,
		Category: in.Category,
		Unit:     in.Unit,
		Stock:    in.InitialStock,
	}
	updated, err := ledger.RegisterProduct(products, product)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.ReplaceAll(updated); err != nil {
		return nil, err
	}

	log.Info().
		Str("tx_id", uuid.New().String()).
		Str("product_id", product.ID).
		Str("name", product.Name).
		Int64("initial_stock", product.Stock).
		Msg("producto registrado")

	resp := toProductResponse(product)
	return &resp, nil
}

// List devuelve el inventario actual completo.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	products, err := uc.repo.GetAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

func toProductResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Unit:     p.Unit,
		Stock:    p.Stock,
	}
}
