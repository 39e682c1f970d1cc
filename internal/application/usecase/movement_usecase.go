package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/udllano/inventario-api/internal/application/dto"
	"github.com/udllano/inventario-api/internal/domain/entity"
	"github.com/udllano/inventario-api/internal/domain/ledger"
	"github.com/udllano/inventario-api/internal/domain/repository"
)

// MovementUseCase registra ventas o compras (misma forma, signo de
// stock opuesto) y consulta el historial. Una instancia por log.
type MovementUseCase struct {
	products repository.ProductRepository
	moves    repository.MovementRepository
	kind     string
}

// NewSalesUseCase construye el caso de uso sobre el log de ventas.
func NewSalesUseCase(products repository.ProductRepository, sales repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{products: products, moves: sales, kind: entity.MovementKindSale}
}

// NewPurchasesUseCase construye el caso de uso sobre el log de compras.
func NewPurchasesUseCase(products repository.ProductRepository, purchases repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{products: products, moves: purchases, kind: entity.MovementKindPurchase}
}

// Record aplica el movimiento: lee ambas tablas, delega la validación y
// la aritmética de stock al ledger y persiste primero el log y después
// los productos. La atomicidad entre ambas escrituras es de mejor
// esfuerzo (no hay transacciones en el proveedor de almacenamiento).
func (uc *MovementUseCase) Record(in dto.RecordMovementRequest) (*dto.RecordMovementResponse, error) {
	products, err := uc.products.GetAll()
	if err != nil {
		return nil, err
	}
	moveLog, err := uc.moves.GetAll()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updatedProducts, updatedLog, err := ledger.RecordMovement(
		products, moveLog, in.ProductName, in.Quantity, uc.kind, now)
	if err != nil {
		return nil, err
	}

	if err := uc.moves.ReplaceAll(updatedLog); err != nil {
		return nil, err
	}
	if err := uc.products.ReplaceAll(updatedProducts); err != nil {
		return nil, err
	}

	applied := updatedLog[len(updatedLog)-1]
	var newStock int64
	for _, p := range updatedProducts {
		if p.ID == applied.ProductID {
			newStock = p.Stock
			break
		}
	}

	log.Info().
		Str("tx_id", uuid.New().String()).
		Str("kind", uc.kind).
		Str("product_id", applied.ProductID).
		Int64("quantity", applied.Quantity).
		Int64("new_stock", newStock).
		Msg("movimiento registrado")

	return &dto.RecordMovementResponse{
		Movement: toMovementResponse(applied),
		NewStock: newStock,
	}, nil
}

// History devuelve el log completo en orden cronológico de registro.
func (uc *MovementUseCase) History() (*dto.MovementListResponse, error) {
	moveLog, err := uc.moves.GetAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(moveLog))
	for _, m := range moveLog {
		items = append(items, toMovementResponse(m))
	}
	return &dto.MovementListResponse{Items: items, Total: len(items)}, nil
}

func toMovementResponse(m entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		Date:        m.Date.Format(entity.DateLayout),
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		Unit:        m.Unit,
	}
}
