package entity

import "time"

// FieldChange valor anterior y nuevo de un campo editado.
type FieldChange struct {
	From any `json:"from"`
	To   any `json:"to"`
}

// EditHistoryEntry registro de auditoría append-only por ítem.
// Se crea en cada actualización; nunca se modifica ni se borra.
type EditHistoryEntry struct {
	ID        string
	ItemID    string
	Action    string // siempre "updated" por ahora
	ChangedBy string
	ChangedAt time.Time
	Changes   map[string]FieldChange
}
