package dto

import (
	"github.com/jhoicas/freezer-api/internal/domain/inventory"
)

// SlotItemDTO ítem resumido dentro de un slot del mapa.
type SlotItemDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// SlotDTO ocupación de una ubicación fija del congelador.
type SlotDTO struct {
	Track        int           `json:"track"`
	Position     int           `json:"position"`
	Label        string        `json:"label"`
	Count        int           `json:"count"`
	Status       string        `json:"status"` // empty | has-expired | full | moderate | low
	ActiveCount  int           `json:"activeCount"`
	ExpiredCount int           `json:"expiredCount"`
	Items        []SlotItemDTO `json:"items"`
}

// FreezerSummaryDTO totales globales del mapa.
type FreezerSummaryDTO struct {
	ActiveItems  int `json:"activeItems"`
	ExpiredItems int `json:"expiredItems"`
	EmptySlots   int `json:"emptySlots"`
	UsedSlots    int `json:"usedSlots"`
}

// FreezerMapResponse respuesta de GET /api/freezer/map: los 6 slots en orden
// (track, position) más el resumen.
type FreezerMapResponse struct {
	Slots   []SlotDTO         `json:"slots"`
	Summary FreezerSummaryDTO `json:"summary"`
}

// NewFreezerMapResponse mapea los slots del dominio al contrato de wire.
func NewFreezerMapResponse(slots []inventory.Slot, sum inventory.MapSummary) FreezerMapResponse {
	out := FreezerMapResponse{
		Slots: make([]SlotDTO, 0, len(slots)),
		Summary: FreezerSummaryDTO{
			ActiveItems:  sum.ActiveItems,
			ExpiredItems: sum.ExpiredItems,
			EmptySlots:   sum.EmptySlots,
			UsedSlots:    sum.UsedSlots,
		},
	}
	for _, s := range slots {
		dto := SlotDTO{
			Track:        s.Track,
			Position:     s.Position,
			Label:        s.Label,
			Count:        s.Count,
			Status:       s.Status(),
			ActiveCount:  len(s.ActiveItems),
			ExpiredCount: len(s.ExpiredItems),
			Items:        make([]SlotItemDTO, 0, len(s.Items)),
		}
		for _, it := range s.Items {
			dto.Items = append(dto.Items, SlotItemDTO{ID: it.ID, Name: it.Name, Status: it.Status})
		}
		out.Slots = append(out.Slots, dto)
	}
	return out
}
