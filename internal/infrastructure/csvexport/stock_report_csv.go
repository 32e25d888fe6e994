// Package csvexport escribe el reporte de existencias como CSV (RFC 4180).
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// Header columnas del archivo, en este orden.
var Header = []string{"product", "location", "quantity"}

var _ inventory.StockReportCSVWriter = (*StockReportWriter)(nil)

// StockReportWriter implementa inventory.StockReportCSVWriter.
type StockReportWriter struct{}

// NewStockReportWriter construye el escritor.
func NewStockReportWriter() *StockReportWriter { return &StockReportWriter{} }

// WriteStockReportCSV escribe el encabezado y una fila por saldo, en el orden recibido.
func (StockReportWriter) WriteStockReportCSV(w io.Writer, balances []entity.StockBalance) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("csv: encabezado: %w", err)
	}
	for _, b := range balances {
		rec := []string{b.ProductName, b.LocationName, strconv.FormatInt(b.Quantity, 10)}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("csv: fila %s/%s: %w", b.ProductName, b.LocationName, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
