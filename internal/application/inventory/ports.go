package inventory

import (
	"context"
	"io"
	"time"

	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del almacenamiento, pasando repositorios atados a esa tx.
// Commit si fn devuelve nil, Rollback en cualquier otro caso: ninguna escritura queda a medias.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos repository.Repos) error) error
	// RunReadOnly ejecuta fn sobre una instantánea consistente de catálogo y libro.
	RunReadOnly(ctx context.Context, fn func(repos repository.Repos) error) error
}

// StockReportPDFGenerator genera la representación PDF del reporte de existencias.
type StockReportPDFGenerator interface {
	GenerateStockReportPDF(ctx context.Context, generatedAt time.Time, balances []entity.StockBalance) ([]byte, error)
}

// StockReportCSVWriter escribe el reporte de existencias como CSV.
type StockReportCSVWriter interface {
	WriteStockReportCSV(w io.Writer, balances []entity.StockBalance) error
}
