package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udllano/inventario-api/internal/application/dto"
	"github.com/udllano/inventario-api/internal/application/usecase"
	"github.com/udllano/inventario-api/internal/domain"
	"github.com/udllano/inventario-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de casos de uso
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	rows     []entity.Product
	written  [][]entity.Product
	writeErr error
}

func (r *fakeProductRepo) GetAll() ([]entity.Product, error) { return r.rows, nil }
func (r *fakeProductRepo) ReplaceAll(products []entity.Product) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	r.rows = products
	r.written = append(r.written, products)
	return nil
}

type fakeMovementRepo struct {
	rows    []entity.Movement
	written [][]entity.Movement
}

func (r *fakeMovementRepo) GetAll() ([]entity.Movement, error) { return r.rows, nil }
func (r *fakeMovementRepo) ReplaceAll(movements []entity.Movement) error {
	r.rows = movements
	r.written = append(r.written, movements)
	return nil
}

func seededRepos() (*fakeProductRepo, *fakeMovementRepo) {
	products := &fakeProductRepo{rows: []entity.Product{
		{ID: "P1", Name: "Widget", Category: "Ferretería", Unit: "Caja", Stock: 5},
	}}
	return products, &fakeMovementRepo{}
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas y compras
// ──────────────────────────────────────────────────────────────────────────────

func TestMovementUseCase_VentaActualizaAmbasTablas(t *testing.T) {
	products, sales := seededRepos()
	uc := usecase.NewSalesUseCase(products, sales)

	out, err := uc.Record(dto.RecordMovementRequest{ProductName: "Widget", Quantity: 3})
	require.NoError(t, err)

	assert.Equal(t, int64(2), out.NewStock)
	assert.Equal(t, "P1", out.Movement.ProductID)
	assert.Equal(t, "Caja", out.Movement.Unit)
	assert.NotEmpty(t, out.Movement.Date)

	require.Len(t, sales.written, 1, "una escritura en el log de ventas")
	require.Len(t, products.written, 1, "una escritura en productos")
	assert.Equal(t, int64(2), products.rows[0].Stock)
}

func TestMovementUseCase_CompraSumaStock(t *testing.T) {
	products, purchases := seededRepos()
	uc := usecase.NewPurchasesUseCase(products, purchases)

	out, err := uc.Record(dto.RecordMovementRequest{ProductName: "Widget", Quantity: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(105), out.NewStock)
}

// Rechazo por stock insuficiente: ninguna tabla se escribe.
func TestMovementUseCase_RechazoNoEscribeNada(t *testing.T) {
	products, sales := seededRepos()
	uc := usecase.NewSalesUseCase(products, sales)

	_, err := uc.Record(dto.RecordMovementRequest{ProductName: "Widget", Quantity: 10})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, sales.written)
	assert.Empty(t, products.written)
	assert.Equal(t, int64(5), products.rows[0].Stock)
}

func TestMovementUseCase_ProductoInexistente(t *testing.T) {
	products, sales := seededRepos()
	uc := usecase.NewSalesUseCase(products, sales)

	_, err := uc.Record(dto.RecordMovementRequest{ProductName: "No existe", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

// El log se escribe antes que productos; si productos falla, el log ya
// quedó persistido (atomicidad de mejor esfuerzo, no hay transacciones).
func TestMovementUseCase_FalloEnProductosDejaLogEscrito(t *testing.T) {
	products, sales := seededRepos()
	products.writeErr = domain.ErrStorage
	uc := usecase.NewSalesUseCase(products, sales)

	_, err := uc.Record(dto.RecordMovementRequest{ProductName: "Widget", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.Len(t, sales.written, 1)
}

func TestMovementUseCase_History(t *testing.T) {
	products, sales := seededRepos()
	uc := usecase.NewSalesUseCase(products, sales)

	_, err := uc.Record(dto.RecordMovementRequest{ProductName: "Widget", Quantity: 2})
	require.NoError(t, err)
	_, err = uc.Record(dto.RecordMovementRequest{ProductName: "Widget", Quantity: 1})
	require.NoError(t, err)

	hist, err := uc.History()
	require.NoError(t, err)
	require.Equal(t, 2, hist.Total)
	assert.Equal(t, int64(2), hist.Items[0].Quantity, "orden cronológico de registro")
	assert.Equal(t, int64(1), hist.Items[1].Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUseCase_RegisterYList(t *testing.T) {
	products := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(products)

	out, err := uc.Register(dto.RegisterProductRequest{
		ID: "P1", Name: "Widget", Category: "Ferretería", Unit: "Caja", InitialStock: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), out.Stock)

	list, err := uc.List()
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Widget", list.Items[0].Name)
}

func TestProductUseCase_DuplicadoNoEscribe(t *testing.T) {
	products := &fakeProductRepo{rows: []entity.Product{
		{ID: "P1", Name: "Widget", Category: "C", Unit: "U", Stock: 5},
	}}
	uc := usecase.NewProductUseCase(products)

	_, err := uc.Register(dto.RegisterProductRequest{
		ID: "P1", Name: "Otro", Category: "C", Unit: "U", InitialStock: 1,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateID)
	assert.Empty(t, products.written)
}
