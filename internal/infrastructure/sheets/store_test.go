package sheets_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/udllano/inventario-api/internal/domain/entity"
	"github.com/udllano/inventario-api/internal/infrastructure/sheets"
)

func openTempStore(t *testing.T) (*sheets.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventario.xlsx")
	store, err := sheets.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación del libro
// ──────────────────────────────────────────────────────────────────────────────

// Un libro inexistente se crea con las tres hojas, encabezado y cero filas.
func TestOpen_CreaLibroConHojasYEncabezados(t *testing.T) {
	_, path := openTempStore(t)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	for hoja, encabezado := range map[string][]string{
		"Productos": {"ID_Producto", "Nombre", "Categoría", "Presentación", "Stock"},
		"Ventas":    {"Fecha", "ID_Producto", "Nombre", "Cantidad", "Presentación"},
		"Compras":   {"Fecha", "ID_Producto", "Nombre", "Cantidad", "Presentación"},
	} {
		rows, err := f.GetRows(hoja)
		require.NoError(t, err, "debe existir la hoja %s", hoja)
		require.Len(t, rows, 1, "hoja nueva: solo encabezado")
		assert.Equal(t, encabezado, rows[0])
	}
}

func TestOpen_LibroExistenteConservaDatos(t *testing.T) {
	store, path := openTempStore(t)
	repo := sheets.NewProductRepository(store)
	require.NoError(t, repo.ReplaceAll([]entity.Product{
		{ID: "P1", Name: "Widget", Category: "Ferretería", Unit: "Caja", Stock: 5},
	}))
	require.NoError(t, store.Close())

	reopened, err := sheets.Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	products, err := sheets.NewProductRepository(reopened).GetAll()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Widget", products[0].Name)
	assert.Equal(t, int64(5), products[0].Stock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos: ida y vuelta, coerción y filas malformadas
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepo_RoundTrip(t *testing.T) {
	store, _ := openTempStore(t)
	repo := sheets.NewProductRepository(store)

	in := []entity.Product{
		{ID: "P1", Name: "Widget", Category: "Ferretería", Unit: "Caja", Stock: 5},
		{ID: "P2", Name: "Aceite 1L", Category: "Lubricantes", Unit: "Litro", Stock: 0},
	}
	require.NoError(t, repo.ReplaceAll(in))

	out, err := repo.GetAll()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

// Stock no numérico en la hoja se coerciona a 0 al decodificar:
// [{5},{"abc"},{10}] suma 15 en el dashboard.
func TestProductRepo_StockNoNumericoCoercionaACero(t *testing.T) {
	store, _ := openTempStore(t)

	require.NoError(t, store.WriteTable(sheets.TableProducts, [][]interface{}{
		{"P1", "A", "C", "U", 5},
		{"P2", "B", "C", "U", "abc"},
		{"P3", "C", "C", "U", 10},
	}))

	products, err := sheets.NewProductRepository(store).GetAll()
	require.NoError(t, err)
	require.Len(t, products, 3)

	var total int64
	for _, p := range products {
		total += p.Stock
	}
	assert.Equal(t, int64(15), total)
	assert.Equal(t, int64(0), products[1].Stock)
}

func TestProductRepo_DescartaFilasSinID(t *testing.T) {
	store, _ := openTempStore(t)

	require.NoError(t, store.WriteTable(sheets.TableProducts, [][]interface{}{
		{"", "Sin id", "C", "U", 1},
		{"P1", "Válido", "C", "U", 2},
	}))

	products, err := sheets.NewProductRepository(store).GetAll()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "P1", products[0].ID)
}

// La sobrescritura total elimina las filas sobrantes de la versión anterior.
func TestProductRepo_SobrescrituraEliminaFilasSobrantes(t *testing.T) {
	store, _ := openTempStore(t)
	repo := sheets.NewProductRepository(store)

	require.NoError(t, repo.ReplaceAll([]entity.Product{
		{ID: "P1", Name: "A", Category: "C", Unit: "U", Stock: 1},
		{ID: "P2", Name: "B", Category: "C", Unit: "U", Stock: 2},
		{ID: "P3", Name: "C", Category: "C", Unit: "U", Stock: 3},
	}))
	require.NoError(t, repo.ReplaceAll([]entity.Product{
		{ID: "P9", Name: "Z", Category: "C", Unit: "U", Stock: 9},
	}))

	products, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "P9", products[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestMovementRepo_RoundTripVentasYCompras(t *testing.T) {
	store, _ := openTempStore(t)
	when := time.Date(2026, 2, 10, 9, 30, 0, 0, time.Local)

	in := []entity.Movement{
		{Date: when, ProductID: "P1", ProductName: "Widget", Quantity: 3, Unit: "Caja"},
		{Date: when.Add(time.Minute), ProductID: "P2", ProductName: "Aceite 1L", Quantity: 7, Unit: "Litro"},
	}

	for _, repo := range []*sheets.MovementRepo{
		sheets.NewSalesRepository(store),
		sheets.NewPurchasesRepository(store),
	} {
		require.NoError(t, repo.ReplaceAll(in))
		out, err := repo.GetAll()
		require.NoError(t, err)
		assert.Equal(t, in, out)
	}
}

// Una Fecha ilegible no descarta la fila: el histórico se conserva con fecha cero.
func TestMovementRepo_FechaIlegibleNoDescartaFila(t *testing.T) {
	store, _ := openTempStore(t)

	require.NoError(t, store.WriteTable(sheets.TableSales, [][]interface{}{
		{"no es fecha", "P1", "Widget", 3, "Caja"},
	}))

	movs, err := sheets.NewSalesRepository(store).GetAll()
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.True(t, movs[0].Date.IsZero())
	assert.Equal(t, int64(3), movs[0].Quantity)
}
