package inventory

import (
	"bytes"
	"context"
	"fmt"
	"time"
)

// ReportUseCase exporta el reporte de existencias en PDF o CSV.
type ReportUseCase struct {
	balances *BalanceUseCase
	pdf      StockReportPDFGenerator
	csv      StockReportCSVWriter
	now      func() time.Time
}

// NewReportUseCase construye el caso de uso de exportación.
func NewReportUseCase(balances *BalanceUseCase, pdf StockReportPDFGenerator, csv StockReportCSVWriter) *ReportUseCase {
	return &ReportUseCase{balances: balances, pdf: pdf, csv: csv, now: time.Now}
}

// ExportPDF genera el PDF del reporte actual. Un libro vacío produce un PDF sin filas de saldo.
func (uc *ReportUseCase) ExportPDF(ctx context.Context) ([]byte, error) {
	balances, err := uc.balances.ComputeBalances(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := uc.pdf.GenerateStockReportPDF(ctx, uc.now(), balances)
	if err != nil {
		return nil, fmt.Errorf("generar PDF: %w", err)
	}
	return doc, nil
}

// ExportCSV genera el CSV del reporte actual (encabezado + una fila por saldo).
func (uc *ReportUseCase) ExportCSV(ctx context.Context) ([]byte, error) {
	balances, err := uc.balances.ComputeBalances(ctx)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := uc.csv.WriteStockReportCSV(&buf, balances); err != nil {
		return nil, fmt.Errorf("generar CSV: %w", err)
	}
	return buf.Bytes(), nil
}
