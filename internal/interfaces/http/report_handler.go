package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-ledger/internal/application/inventory"
)

// ReportHandler expone el reporte de existencias en JSON, PDF y CSV.
type ReportHandler struct {
	balances *inventory.BalanceUseCase
	exports  *inventory.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(balances *inventory.BalanceUseCase, exports *inventory.ReportUseCase) *ReportHandler {
	return &ReportHandler{balances: balances, exports: exports}
}

// Report godoc
// @Summary      Reporte de existencias
// @Description  Saldos > 0 por (producto, ubicación), ordenados por nombre. Los saldos negativos van en anomalies.
// @Tags         report
// @Produce      json
// @Success      200  {object}  dto.StockReportResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/report [get]
func (h *ReportHandler) Report(c *fiber.Ctx) error {
	out, err := h.balances.Report(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Reporte de existencias en PDF
// @Tags         report
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/report/pdf [get]
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	doc, err := h.exports.ExportPDF(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-inventario.pdf"`)
	return c.Send(doc)
}

// CSV godoc
// @Summary      Reporte de existencias en CSV
// @Tags         report
// @Produce      text/csv
// @Success      200  {file}  binary
// @Router       /api/report/csv [get]
func (h *ReportHandler) CSV(c *fiber.Ctx) error {
	doc, err := h.exports.ExportCSV(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-inventario.csv"`)
	return c.Send(doc)
}
