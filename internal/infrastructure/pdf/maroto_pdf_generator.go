// Package pdf implementa la generación del reporte PDF del congelador.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: activos / vencidos / slots usados / slots vacíos   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MAPA: una fila por slot (T1-P1 ... T3-P2) con su estado     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Nombre | Proveedor | Cant | Zona | Vence | Ubicación │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
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

	appinventory "github.com/jhoicas/freezer-api/internal/application/inventory"
	"github.com/jhoicas/freezer-api/internal/domain/entity"
	"github.com/jhoicas/freezer-api/internal/domain/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appinventory.ReportPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa inventory.ReportPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateFreezerReport genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateFreezerReport(
	_ context.Context,
	items []entity.InventoryItem,
	slots []inventory.Slot,
	summary inventory.MapSummary,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Freezer Inventory Report", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(mapHeaderRow())
	for _, s := range slots {
		m.AddRows(slotRow(s))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow())
	for _, it := range items {
		m.AddRows(itemRow(it))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow() core.Row {
	fecha := time.Now().UTC().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("FREEZER INVENTORY REPORT", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func summaryRow(s inventory.MapSummary) core.Row {
	cell := func(label string, value int, c *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New(fmt.Sprintf("%d", value), props.Text{
				Style: fontstyle.Bold, Size: 12, Color: c, Top: 6,
			}),
		)
	}
	return row.New(14).Add(
		cell("Ítems activos", s.ActiveItems, colorPrimary),
		cell("Ítems vencidos", s.ExpiredItems, colorDanger),
		cell("Slots usados", s.UsedSlots, colorPrimary),
		cell("Slots vacíos", s.EmptySlots, colorGray),
	)
}

func mapHeaderRow() core.Row {
	h := func(size int, label string) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(7).Add(
		h(2, "Slot"), h(5, "Ubicación"), h(2, "Ítems"), h(3, "Estado"),
	)
}

func slotRow(s inventory.Slot) core.Row {
	status := s.Status()
	c := colorGray
	if status == inventory.SlotHasExpired {
		c = colorDanger
	}
	return row.New(6).Add(
		col.New(2).Add(text.New(s.Label, props.Text{Size: 8, Style: fontstyle.Bold})),
		col.New(5).Add(text.New(inventory.LocationDescription(s.Track, s.Position), props.Text{Size: 8})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", s.Count), props.Text{Size: 8})),
		col.New(3).Add(text.New(status, props.Text{Size: 8, Color: c})),
	)
}

func tableHeaderRow() core.Row {
	h := func(size int, label string) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(7).Add(
		h(3, "Nombre"), h(3, "Proveedor"), h(1, "Cant"),
		h(1, "Zona"), h(2, "Vence"), h(2, "Ubicación"),
	)
}

func itemRow(it entity.InventoryItem) core.Row {
	expira := "—"
	c := colorGray
	if it.ExpirationDate != nil {
		expira = it.ExpirationDate.Format("02/01/2006")
		if it.ExpirationDate.Before(time.Now()) {
			c = colorDanger
		}
	}
	ubicacion := "—"
	if it.LocationLabel != nil {
		ubicacion = *it.LocationLabel
	}
	return row.New(6).Add(
		col.New(3).Add(text.New(it.Name, props.Text{Size: 8})),
		col.New(3).Add(text.New(it.Company, props.Text{Size: 8})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", it.Quantity), props.Text{Size: 8})),
		col.New(1).Add(text.New(it.Category, props.Text{Size: 8})),
		col.New(2).Add(text.New(expira, props.Text{Size: 8, Color: c})),
		col.New(2).Add(text.New(ubicacion, props.Text{Size: 8})),
	)
}
