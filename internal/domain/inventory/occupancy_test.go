package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/freezer-api/internal/domain/entity"
	"github.com/jhoicas/freezer-api/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del agregador de ocupación de la grilla 3×2.
// ──────────────────────────────────────────────────────────────────────────────

func itemAt(track, position int, status string) entity.InventoryItem {
	label := inventory.LocationLabel(track, position)
	return entity.InventoryItem{
		ID:     label + "-" + status,
		Name:   "item " + label,
		Status: status,
		Location: &entity.Location{
			Track:    track,
			Position: position,
			Label:    label,
		},
	}
}

func TestBuildFreezerMap_SeisSlotsEnOrden(t *testing.T) {
	slots := inventory.BuildFreezerMap(nil)
	require.Len(t, slots, 6)

	wantLabels := []string{"T1-P1", "T1-P2", "T2-P1", "T2-P2", "T3-P1", "T3-P2"}
	for i, s := range slots {
		assert.Equal(t, wantLabels[i], s.Label)
		assert.Equal(t, 0, s.Count)
		assert.Equal(t, inventory.SlotEmpty, s.Status())
	}
}

func TestBuildFreezerMap_BucketizaPorLabel(t *testing.T) {
	items := []entity.InventoryItem{
		itemAt(1, 1, entity.StatusActive),
		itemAt(1, 1, entity.StatusActive),
		itemAt(3, 2, entity.StatusExpired),
	}
	slots := inventory.BuildFreezerMap(items)

	assert.Equal(t, 2, slots[0].Count, "T1-P1 debe tener 2 ítems")
	assert.Len(t, slots[0].ActiveItems, 2)
	assert.Empty(t, slots[0].ExpiredItems)

	last := slots[5]
	assert.Equal(t, "T3-P2", last.Label)
	assert.Equal(t, 1, last.Count)
	assert.Len(t, last.ExpiredItems, 1)
}

// Ítems sin ubicación resoluble se ignoran en el mapa.
func TestBuildFreezerMap_IgnoraItemsSinUbicacion(t *testing.T) {
	items := []entity.InventoryItem{
		{ID: "a", Status: entity.StatusActive},
		{ID: "b", Status: entity.StatusActive, Location: &entity.Location{Label: "T9-P9"}},
	}
	slots := inventory.BuildFreezerMap(items)
	for _, s := range slots {
		assert.Equal(t, 0, s.Count)
	}
}

// Un ítem archived suma al Count del slot pero no entra en ninguna sub-lista.
func TestBuildFreezerMap_ArchivedCuentaSinSubLista(t *testing.T) {
	items := []entity.InventoryItem{itemAt(2, 1, entity.StatusArchived)}
	slots := inventory.BuildFreezerMap(items)

	slot := slots[2]
	require.Equal(t, "T2-P1", slot.Label)
	assert.Equal(t, 1, slot.Count)
	assert.Len(t, slot.Items, 1)
	assert.Empty(t, slot.ActiveItems)
	assert.Empty(t, slot.ExpiredItems)
}

func TestSlotStatus_PrioridadDeEstados(t *testing.T) {
	mk := func(total, expired int) inventory.Slot {
		s := inventory.Slot{Count: total}
		for i := 0; i < expired; i++ {
			s.ExpiredItems = append(s.ExpiredItems, entity.InventoryItem{})
		}
		return s
	}

	assert.Equal(t, inventory.SlotEmpty, mk(0, 0).Status())
	assert.Equal(t, inventory.SlotLow, mk(1, 0).Status())
	assert.Equal(t, inventory.SlotModerate, mk(2, 0).Status())
	assert.Equal(t, inventory.SlotModerate, mk(4, 0).Status())
	assert.Equal(t, inventory.SlotFull, mk(5, 0).Status())

	// "tiene vencidos" pisa la coloración por nivel de stock
	assert.Equal(t, inventory.SlotHasExpired, mk(5, 1).Status())
	assert.Equal(t, inventory.SlotHasExpired, mk(1, 1).Status())
}

func TestSummarize_Totales(t *testing.T) {
	items := []entity.InventoryItem{
		itemAt(1, 1, entity.StatusActive),
		itemAt(1, 1, entity.StatusActive),
		itemAt(1, 2, entity.StatusExpired),
		itemAt(2, 1, entity.StatusArchived),
		{ID: "sin-ubicacion", Status: entity.StatusActive},
	}
	slots := inventory.BuildFreezerMap(items)
	sum := inventory.Summarize(items, slots)

	// el ítem sin ubicación cuenta en los totales pero no ocupa slot
	assert.Equal(t, 3, sum.ActiveItems)
	assert.Equal(t, 1, sum.ExpiredItems)
	assert.Equal(t, 3, sum.UsedSlots)
	assert.Equal(t, 3, sum.EmptySlots)
}
