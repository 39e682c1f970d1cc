// Package sheets implementa el proveedor de almacenamiento sobre un
// libro de Excel (xlsx). Cada tabla es una hoja con encabezado fijo;
// las escrituras sobrescriben la hoja completa, no hay escritura
// incremental.
package sheets

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/xuri/excelize/v2"

	"github.com/udllano/inventario-api/internal/domain"
	"github.com/udllano/inventario-api/internal/domain/entity"
)

// Nombres de las hojas del libro.
const (
	TableProducts  = "Productos"
	TableSales     = "Ventas"
	TablePurchases = "Compras"
)

// DateLayout formato de la columna Fecha.
const DateLayout = entity.DateLayout

// defaultSheet hoja inicial que crea excelize en un libro nuevo.
const defaultSheet = "Sheet1"

var tableHeaders = map[string][]string{
	TableProducts:  {"ID_Producto", "Nombre", "Categoría", "Presentación", "Stock"},
	TableSales:     {"Fecha", "ID_Producto", "Nombre", "Cantidad", "Presentación"},
	TablePurchases: {"Fecha", "ID_Producto", "Nombre", "Cantidad", "Presentación"},
}

// Store maneja el libro xlsx. El mutex protege el handle de excelize,
// que no es seguro para uso concurrente; no aporta aislamiento entre
// ciclos leer-modificar-escribir (último en escribir gana).
type Store struct {
	mu   sync.Mutex
	path string
	f    *excelize.File
}

// Open abre el libro en path, creándolo si no existe. Garantiza que las
// tres hojas existan con su encabezado (y cero filas de datos si son
// nuevas). Un libro ilegible es fatal: se devuelve ErrStorage.
func Open(path string) (*Store, error) {
	f, created, err := openOrCreate(path)
	if err != nil {
		return nil, fmt.Errorf("%w: abrir libro %s: %v", domain.ErrStorage, path, err)
	}

	s := &Store{path: path, f: f}
	if err := s.ensureTables(created); err != nil {
		_ = f.Close()
		return nil, err
	}
	return s, nil
}

func openOrCreate(path string) (f *excelize.File, created bool, err error) {
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		return excelize.NewFile(), true, nil
	}
	f, err = excelize.OpenFile(path)
	return f, false, err
}

// ensureTables crea las hojas que falten con su encabezado y elimina la
// hoja por defecto de un libro recién creado.
func (s *Store) ensureTables(created bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range []string{TableProducts, TableSales, TablePurchases} {
		idx, err := s.f.GetSheetIndex(name)
		if err != nil {
			return fmt.Errorf("%w: hoja %s: %v", domain.ErrStorage, name, err)
		}
		if idx >= 0 {
			continue
		}
		if _, err := s.f.NewSheet(name); err != nil {
			return fmt.Errorf("%w: crear hoja %s: %v", domain.ErrStorage, name, err)
		}
		header := toRow(tableHeaders[name])
		if err := s.f.SetSheetRow(name, "A1", &header); err != nil {
			return fmt.Errorf("%w: encabezado de %s: %v", domain.ErrStorage, name, err)
		}
	}
	if created {
		_ = s.f.DeleteSheet(defaultSheet)
	}
	return s.save()
}

// ReadTable devuelve las filas de datos de la hoja (sin el encabezado),
// como celdas de texto. Las celdas vacías al final de una fila pueden
// venir recortadas; los decodificadores toleran filas cortas.
func (s *Store) ReadTable(name string) ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("%w: leer hoja %s: %v", domain.ErrStorage, name, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	return rows[1:], nil
}

// WriteTable sobrescribe la hoja completa: encabezado más las filas
// dadas. Las filas sobrantes de la versión anterior desaparecen.
func (s *Store) WriteTable(name string, rows [][]interface{}) error {
	header, ok := tableHeaders[name]
	if !ok {
		return fmt.Errorf("%w: hoja desconocida %s", domain.ErrStorage, name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Recrear la hoja es la forma más simple de garantizar la
	// semántica de sobrescritura total.
	if err := s.f.DeleteSheet(name); err != nil {
		return fmt.Errorf("%w: limpiar hoja %s: %v", domain.ErrStorage, name, err)
	}
	if _, err := s.f.NewSheet(name); err != nil {
		return fmt.Errorf("%w: recrear hoja %s: %v", domain.ErrStorage, name, err)
	}
	headerRow := toRow(header)
	if err := s.f.SetSheetRow(name, "A1", &headerRow); err != nil {
		return fmt.Errorf("%w: encabezado de %s: %v", domain.ErrStorage, name, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("%w: celda de %s: %v", domain.ErrStorage, name, err)
		}
		r := row
		if err := s.f.SetSheetRow(name, cell, &r); err != nil {
			return fmt.Errorf("%w: escribir fila en %s: %v", domain.ErrStorage, name, err)
		}
	}
	return s.save()
}

// Close libera el handle del libro.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Close()
}

// save persiste el libro en disco. Caller debe tener el mutex.
func (s *Store) save() error {
	if err := s.f.SaveAs(s.path); err != nil {
		return fmt.Errorf("%w: guardar libro %s: %v", domain.ErrStorage, s.path, err)
	}
	return nil
}

func toRow(cells []string) []interface{} {
	row := make([]interface{}, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}
