// Package pdf implementa la generación de la nota de entrega imprimible de
// un despacho usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nota de entrega  │  Organización + N° doc + Fecha   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: N° | Producto | Cant. | Precio | Importe             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                       │
//	│  FIRMAS: Entregó / Recibió                                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

const deletedProductLabel = "Producto eliminado"

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 11, Green: 117, Blue: 180}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator genera la nota de entrega de un despacho usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateShipmentPDF genera el PDF de la nota de entrega y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateShipmentPDF(doc *repository.ShipmentDoc) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(14).WithRightMargin(14).
		WithTopMargin(14).WithBottomMargin(14).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Nota de entrega "+doc.ShipmentID, true).
		WithAuthor(doc.OrgName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.6}))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(doc.Lines)...)
	m.AddRows(totalRow(doc))
	m.AddRows(signaturesRow())

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y organización + documento + fecha (der).
func headerRow(doc *repository.ShipmentDoc) core.Row {
	fecha := doc.CreatedAt.Format("02/01/2006 15:04")

	return row.New(20).Add(
		col.New(6).Add(
			text.New("Nota de entrega", props.Text{
				Style: fontstyle.Bold, Size: 18, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(6).Add(
			text.New("Organización: "+doc.OrgName, props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Documento: Despacho N° "+doc.ShipmentID, props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 9, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("N°", 1, align.Center),
		h("Producto", 5, align.Left),
		h("Cant.", 2, align.Center),
		h("Precio", 2, align.Right),
		h("Importe", 2, align.Right),
	)
}

// tableDetailRows: una fila por línea del despacho.
func tableDetailRows(lines []repository.ShipmentDocLine) []core.Row {
	if len(lines) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Sin posiciones", props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray}),
		))}
	}
	result := make([]core.Row, 0, len(lines))
	for i, l := range lines {
		name := l.ProductName
		if name == "" {
			name = deletedProductLabel
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", i+1),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				l.Price.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				l.Amount.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total del despacho alineado a la derecha.
func totalRow(doc *repository.ShipmentDoc) core.Row {
	total := decimal.Zero
	for _, l := range doc.Lines {
		total = total.Add(l.Amount)
	}
	return row.New(12).Add(
		col.New(8),
		col.New(4).Add(text.New("Total: "+total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Right,
			Color: colorPrimary, Top: 3, Right: 1,
		})),
	)
}

// signaturesRow: líneas de firma de quien entrega y quien recibe.
func signaturesRow() core.Row {
	sign := func(label string) core.Col {
		return col.New(6).Add(
			text.New("__________________________", props.Text{
				Size: 9, Align: align.Center, Top: 14, Color: colorGray,
			}),
			text.New(label, props.Text{
				Size: 8, Align: align.Center, Top: 20, Color: colorGray,
			}),
		)
	}
	return row.New(28).Add(sign("Entregó"), sign("Recibió"))
}
