package inventory

import (
	"context"

	"github.com/jhoicas/freezer-api/internal/domain/entity"
	"github.com/jhoicas/freezer-api/internal/domain/inventory"
)

// ReportPDFGenerator puerto hacia el generador de PDF del reporte del congelador.
// La implementación vive en infraestructura (Maroto).
type ReportPDFGenerator interface {
	GenerateFreezerReport(
		ctx context.Context,
		items []entity.InventoryItem,
		slots []inventory.Slot,
		summary inventory.MapSummary,
	) ([]byte, error)
}
