package repository

import (
	"context"
	"time"

	"github.com/jhoicas/freezer-api/internal/domain/entity"
)

// CheckoutRepository puerto de persistencia para registros de préstamo.
type CheckoutRepository interface {
	// Create persiste un nuevo Checkout (status=active).
	Create(ctx context.Context, co *entity.Checkout) error

	// GetByID devuelve el checkout o nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Checkout, error)

	// MarkReturned setea returnedAt y transiciona status a "returned".
	MarkReturned(ctx context.Context, id string, returnedAt time.Time) error

	// ListByItem devuelve el historial de préstamos de un ítem, más reciente primero.
	ListByItem(ctx context.Context, inventoryID string) ([]entity.Checkout, error)
}
