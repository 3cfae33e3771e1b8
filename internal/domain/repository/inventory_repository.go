package repository

import (
	"context"

	"github.com/jhoicas/freezer-api/internal/domain/entity"
)

// InventoryRepository puerto de persistencia para InventoryItem y su historial
// de ediciones. Toda escritura del inventario pasa por acá; la UI/API nunca
// escribe al store directamente.
//
// Add es la ruta de escritura incondicional: NO valida ni consulta duplicados,
// eso es responsabilidad del caller (caso de uso) antes de invocarla.
// Update y AppendHistory son dos escrituras independientes sin transacción
// entre sí: un crash en el medio deja el ítem actualizado pero sin auditar
// (pérdida de auditoría, no de datos).
type InventoryRepository interface {
	// FetchAll devuelve todos los ítems, sin orden garantizado; el caso de uso
	// ordena por nombre sin distinguir mayúsculas.
	FetchAll(ctx context.Context) ([]entity.InventoryItem, error)

	// GetByID devuelve el ítem o nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)

	// Exists chequeo de existencia por clave de negocio: match exacto (con trim)
	// de (name, company), acotado además por batchNumber cuando no es vacío.
	Exists(ctx context.Context, name, company, batchNumber string) (bool, error)

	// Add persiste el ítem tal cual viene (ya canónico). El ID viene asignado.
	Add(ctx context.Context, item *entity.InventoryItem) error

	// Update mezcla los campos dados sobre el documento y refresca updatedAt.
	// Nunca toca id ni createdAt. Las claves usan los nombres del contrato de
	// wire (name, quantity, borrowedBy, ...); un valor nil limpia el campo.
	Update(ctx context.Context, id string, fields map[string]any) error

	// AppendHistory agrega una entrada de auditoría; nunca se modifica ni borra.
	AppendHistory(ctx context.Context, e *entity.EditHistoryEntry) error

	ListByCompany(ctx context.Context, company string) ([]entity.InventoryItem, error)
	ListByCategory(ctx context.Context, category string) ([]entity.InventoryItem, error)
	ListActive(ctx context.Context) ([]entity.InventoryItem, error)
	ListExpired(ctx context.Context) ([]entity.InventoryItem, error)
	ListBorrowed(ctx context.Context) ([]entity.InventoryItem, error)
	ListByCreator(ctx context.Context, userID string) ([]entity.InventoryItem, error)
}
