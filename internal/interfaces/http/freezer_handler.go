package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/freezer-api/internal/application/dto"
	"github.com/jhoicas/freezer-api/internal/application/inventory"
)

// FreezerHandler mapa de ocupación y reporte PDF del congelador (protegido).
type FreezerHandler struct {
	uc       *inventory.UseCase
	reportUC *inventory.ReportUseCase
}

// NewFreezerHandler construye el handler.
func NewFreezerHandler(uc *inventory.UseCase, reportUC *inventory.ReportUseCase) *FreezerHandler {
	return &FreezerHandler{uc: uc, reportUC: reportUC}
}

// Map godoc
// @Summary      Mapa de ocupación del congelador
// @Description  Devuelve los 6 slots de la grilla 3×2 en orden (track, position)
//
//	con su estado de ocupación y el resumen global.
//
// @Tags         freezer
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FreezerMapResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/freezer/map [get]
func (h *FreezerHandler) Map(c *fiber.Ctx) error {
	slots, summary, err := h.uc.FreezerMap(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.NewFreezerMapResponse(slots, summary))
}

// Report godoc
// @Summary      Reporte PDF del congelador
// @Description  Genera un PDF con el resumen de ocupación y el inventario completo.
// @Tags         freezer
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    file
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/freezer/report [get]
func (h *FreezerHandler) Report(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.reportUC.GenerateReport(c.Context())
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
