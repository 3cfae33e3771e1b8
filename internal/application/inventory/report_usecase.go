package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/freezer-api/internal/domain/inventory"
	"github.com/jhoicas/freezer-api/internal/domain/repository"
)

// ReportUseCase genera el reporte PDF del estado del congelador: inventario
// completo ordenado por nombre más el mapa de ocupación con su resumen.
type ReportUseCase struct {
	repo      repository.InventoryRepository
	generator ReportPDFGenerator
}

// NewReportUseCase construye el caso de uso inyectando sus dependencias.
func NewReportUseCase(repo repository.InventoryRepository, generator ReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{repo: repo, generator: generator}
}

// GenerateReport arma el snapshot del congelador y lo renderiza a PDF.
// Devuelve los bytes del documento y un filename con la fecha del día.
func (uc *ReportUseCase) GenerateReport(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	items, err := uc.repo.FetchAll(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: cargar inventario: %w", err)
	}
	sortByName(items)

	slots := inventory.BuildFreezerMap(items)
	summary := inventory.Summarize(items, slots)

	pdfBytes, err = uc.generator.GenerateFreezerReport(ctx, items, slots, summary)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar pdf: %w", err)
	}
	filename = fmt.Sprintf("freezer-report-%s.pdf", time.Now().UTC().Format("2006-01-02"))
	return pdfBytes, filename, nil
}
