// Package pdf genera el reporte de existencias en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de inventario  │  Fecha de generación       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Ubicación | Cantidad                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: pares con existencia / unidades totales            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
)

// ReportTitle título del documento y del encabezado.
const ReportTitle = "Reporte de inventario"

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ inventory.StockReportPDFGenerator = (*MarotoStockReportGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoStockReportGenerator implementa inventory.StockReportPDFGenerator usando Maroto v2.
type MarotoStockReportGenerator struct {
	author string
}

// NewMarotoStockReportGenerator construye el generador. author se escribe en los metadatos del PDF.
func NewMarotoStockReportGenerator(author string) *MarotoStockReportGenerator {
	return &MarotoStockReportGenerator{author: author}
}

// GenerateStockReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoStockReportGenerator) GenerateStockReportPDF(
	ctx context.Context,
	generatedAt time.Time,
	balances []entity.StockBalance,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(ReportTitle, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range tableBalanceRows(balances) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(balances))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(ReportTitle, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(5).Add(
			text.New("Generado:", props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(generatedAt.UTC().Format("02/01/2006 15:04 MST"), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 8,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 5, align.Left),
		h("Ubicación", 4, align.Left),
		h("Cantidad", 3, align.Right),
	)
}

// tableBalanceRows: una fila por par (producto, ubicación); "Sin existencias" si no hay ninguno.
func tableBalanceRows(balances []entity.StockBalance) []core.Row {
	if len(balances) == 0 {
		return []core.Row{
			row.New(8).Add(col.New(12).Add(text.New("Sin existencias", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 2,
			}))),
		}
	}
	result := make([]core.Row, 0, len(balances))
	for _, b := range balances {
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(b.ProductName,
				props.Text{Size: 9, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(b.LocationName,
				props.Text{Size: 9, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(FormatQuantity(b.Quantity),
				props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func summaryRow(balances []entity.StockBalance) core.Row {
	var total int64
	for _, b := range balances {
		total += b.Quantity
	}
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(label("Pares con existencia:")),
		col.New(3).Add(
			text.New(strconv.Itoa(len(balances)), props.Text{Size: 9, Align: align.Right, Right: 1}),
			text.New(FormatQuantity(total)+" u.", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 1, Top: 5, Color: colorPrimary,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// FormatQuantity inserta puntos de miles. Ej: 25000 → "25.000", -1500 → "-1.500".
func FormatQuantity(q int64) string {
	s := strconv.FormatInt(q, 10)
	sign := ""
	if q < 0 {
		sign, s = "-", s[1:]
	}
	n := len(s)
	if n <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}
