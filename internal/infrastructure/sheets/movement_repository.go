package sheets

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/udllano/inventario-api/internal/domain/entity"
	"github.com/udllano/inventario-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo adaptador del puerto MovementRepository sobre una hoja
// de movimientos (Ventas o Compras; misma forma, hoja distinta).
type MovementRepo struct {
	store *Store
	table string
}

// NewSalesRepository construye el adaptador sobre la hoja Ventas.
func NewSalesRepository(store *Store) *MovementRepo {
	return &MovementRepo{store: store, table: TableSales}
}

// NewPurchasesRepository construye el adaptador sobre la hoja Compras.
func NewPurchasesRepository(store *Store) *MovementRepo {
	return &MovementRepo{store: store, table: TablePurchases}
}

// GetAll decodifica el log completo en orden de hoja (cronológico, el
// log es append-only). Filas sin ID_Producto se descartan; una Cantidad
// no numérica se coerciona a 0 y una Fecha ilegible queda en cero, el
// histórico no se pierde por una celda corrupta.
func (r *MovementRepo) GetAll() ([]entity.Movement, error) {
	rows, err := r.store.ReadTable(r.table)
	if err != nil {
		return nil, err
	}
	movements := make([]entity.Movement, 0, len(rows))
	for i, row := range rows {
		id := cell(row, 1)
		if id == "" {
			log.Warn().Str("hoja", r.table).Int("fila", i+2).
				Msg("fila sin ID_Producto descartada")
			continue
		}
		date, err := time.ParseInLocation(DateLayout, cell(row, 0), time.Local)
		if err != nil {
			date = time.Time{}
		}
		movements = append(movements, entity.Movement{
			Date:        date,
			ProductID:   id,
			ProductName: cell(row, 2),
			Quantity:    parseCount(cell(row, 3)),
			Unit:        cell(row, 4),
		})
	}
	return movements, nil
}

// ReplaceAll sobrescribe la hoja con el log dado.
func (r *MovementRepo) ReplaceAll(movements []entity.Movement) error {
	rows := make([][]interface{}, 0, len(movements))
	for _, m := range movements {
		rows = append(rows, []interface{}{
			m.Date.Format(DateLayout), m.ProductID, m.ProductName, m.Quantity, m.Unit,
		})
	}
	return r.store.WriteTable(r.table, rows)
}
