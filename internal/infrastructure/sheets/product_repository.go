package sheets

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/udllano/inventario-api/internal/domain/entity"
	"github.com/udllano/inventario-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo adaptador del puerto ProductRepository sobre la hoja Productos.
type ProductRepo struct {
	store *Store
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(store *Store) *ProductRepo {
	return &ProductRepo{store: store}
}

// GetAll decodifica la hoja completa. Las filas sin ID se descartan
// (esquema tipado en la frontera del almacenamiento); un valor de Stock
// no numérico se coerciona a 0.
func (r *ProductRepo) GetAll() ([]entity.Product, error) {
	rows, err := r.store.ReadTable(TableProducts)
	if err != nil {
		return nil, err
	}
	products := make([]entity.Product, 0, len(rows))
	for i, row := range rows {
		id := strings.TrimSpace(cell(row, 0))
		if id == "" {
			log.Warn().Str("hoja", TableProducts).Int("fila", i+2).
				Msg("fila sin ID_Producto descartada")
			continue
		}
		products = append(products, entity.Product{
			ID:       id,
			Name:     cell(row, 1),
			Category: cell(row, 2),
			Unit:     cell(row, 3),
			Stock:    parseCount(cell(row, 4)),
		})
	}
	return products, nil
}

// ReplaceAll sobrescribe la hoja Productos con la tabla dada.
func (r *ProductRepo) ReplaceAll(products []entity.Product) error {
	rows := make([][]interface{}, 0, len(products))
	for _, p := range products {
		rows = append(rows, []interface{}{p.ID, p.Name, p.Category, p.Unit, p.Stock})
	}
	return r.store.WriteTable(TableProducts, rows)
}

// cell devuelve la celda idx de la fila, o "" si excelize recortó las
// celdas vacías del final.
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseCount convierte una celda numérica; cualquier valor no numérico
// cuenta como 0 (requisito del cálculo de stock total del dashboard).
func parseCount(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
