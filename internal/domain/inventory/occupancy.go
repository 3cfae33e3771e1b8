package inventory

import "github.com/jhoicas/freezer-api/internal/domain/entity"

// Estados de ocupación de un slot, en orden de prioridad de evaluación.
const (
	SlotEmpty      = "empty"
	SlotHasExpired = "has-expired"
	SlotFull       = "full"     // count >= 5
	SlotModerate   = "moderate" // count >= 2
	SlotLow        = "low"      // count == 1
)

// Slot resumen de ocupación de una de las 6 ubicaciones fijas.
// Items conserva todo lo almacenado en el slot; ActiveItems y ExpiredItems
// son sub-listas por status. Un ítem archived cuenta en Count pero no entra
// en ninguna de las dos sub-listas.
type Slot struct {
	Track        int
	Position     int
	Label        string
	Count        int
	Items        []entity.InventoryItem
	ActiveItems  []entity.InventoryItem
	ExpiredItems []entity.InventoryItem
}

// Status deriva el estado de ocupación del slot. La prioridad importa:
// vacío gana siempre, y "tiene vencidos" pisa la coloración por nivel de stock.
func (s Slot) Status() string {
	switch {
	case s.Count == 0:
		return SlotEmpty
	case len(s.ExpiredItems) > 0:
		return SlotHasExpired
	case s.Count >= 5:
		return SlotFull
	case s.Count >= 2:
		return SlotModerate
	default:
		return SlotLow
	}
}

// MapSummary totales globales del mapa del congelador.
type MapSummary struct {
	ActiveItems  int
	ExpiredItems int
	EmptySlots   int
	UsedSlots    int
}

// BuildFreezerMap agrupa los ítems por slot. Función pura sobre la lista en
// memoria: inicializa las 6 combinaciones (track, position) en cero, bucketiza
// cada ítem por su location.Label y devuelve los slots ordenados por
// (track, position) ascendente. Ítems sin ubicación resoluble se ignoran.
func BuildFreezerMap(items []entity.InventoryItem) []Slot {
	slots := make([]Slot, 0, MaxTrack*MaxPosition)
	index := make(map[string]int, MaxTrack*MaxPosition)

	for track := 1; track <= MaxTrack; track++ {
		for position := 1; position <= MaxPosition; position++ {
			label := LocationLabel(track, position)
			index[label] = len(slots)
			slots = append(slots, Slot{Track: track, Position: position, Label: label})
		}
	}

	for _, item := range items {
		if item.Location == nil || item.Location.Label == "" {
			continue
		}
		i, ok := index[item.Location.Label]
		if !ok {
			continue
		}
		slot := &slots[i]
		slot.Items = append(slot.Items, item)
		slot.Count++

		switch item.Status {
		case entity.StatusExpired:
			slot.ExpiredItems = append(slot.ExpiredItems, item)
		case entity.StatusActive:
			slot.ActiveItems = append(slot.ActiveItems, item)
		}
	}

	return slots
}

// Summarize calcula los totales que acompañan al mapa.
func Summarize(items []entity.InventoryItem, slots []Slot) MapSummary {
	var sum MapSummary
	for _, item := range items {
		switch item.Status {
		case entity.StatusActive:
			sum.ActiveItems++
		case entity.StatusExpired:
			sum.ExpiredItems++
		}
	}
	for _, s := range slots {
		if s.Count == 0 {
			sum.EmptySlots++
		} else {
			sum.UsedSlots++
		}
	}
	return sum
}
