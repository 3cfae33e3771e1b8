package checkout

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/freezer-api/internal/domain"
	"github.com/jhoicas/freezer-api/internal/domain/entity"
	"github.com/jhoicas/freezer-api/internal/domain/repository"
)

// UseCase maneja el ciclo de préstamo de ítems: checkout y devolución.
// Las dos escrituras de cada operación (registro Checkout + estado sombra del
// ítem) corren dentro de la misma transacción vía TxRunner.
type UseCase struct {
	txRunner TxRunner
	invRepo  repository.InventoryRepository
	coRepo   repository.CheckoutRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	invRepo repository.InventoryRepository,
	coRepo repository.CheckoutRepository,
) *UseCase {
	return &UseCase{txRunner: txRunner, invRepo: invRepo, coRepo: coRepo}
}

// CheckoutInput entrada para prestar un ítem.
type CheckoutInput struct {
	ItemID             string
	UserID             string
	Quantity           int
	ExpectedReturnDate string // "YYYY-MM-DD"; vacío = hoy
	Purpose            string
}

// Checkout presta un ítem: crea el registro Checkout (status=active) y marca el
// estado sombra del ítem (borrowedBy/borrowedAt/expectedReturnDate) en una sola
// transacción. Un ítem ya prestado no puede volver a prestarse hasta devolverse.
func (uc *UseCase) Checkout(ctx context.Context, in CheckoutInput) (*entity.Checkout, error) {
	if in.UserID == "" {
		return nil, domain.ErrUnauthorized
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	item, err := uc.invRepo.GetByID(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.BorrowedBy != nil {
		return nil, domain.ErrItemBorrowed
	}

	now := time.Now().UTC()
	expected := now
	if in.ExpectedReturnDate != "" {
		d, err := time.Parse("2006-01-02", in.ExpectedReturnDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		expected = d
	}

	co := &entity.Checkout{
		ID:                 uuid.New().String(),
		InventoryID:        item.ID,
		UserID:             in.UserID,
		CheckedOutAt:       now,
		Quantity:           in.Quantity,
		ExpectedReturnDate: expected,
		Status:             entity.CheckoutActive,
		Purpose:            in.Purpose,
	}

	err = uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		coRepo repository.CheckoutRepository,
	) error {
		if err := coRepo.Create(ctx, co); err != nil {
			return err
		}
		return invRepo.Update(ctx, item.ID, map[string]any{
			"borrowedBy":         in.UserID,
			"borrowedAt":         now,
			"expectedReturnDate": expected,
		})
	})
	if err != nil {
		return nil, err
	}
	return co, nil
}

// Return devuelve un préstamo: marca el Checkout como returned y limpia el
// estado sombra del ítem, ambas escrituras en una sola transacción.
// El checkout debe pertenecer al ítem indicado y seguir activo.
func (uc *UseCase) Return(ctx context.Context, itemID, checkoutID string) error {
	if checkoutID == "" {
		return domain.ErrInvalidInput
	}

	co, err := uc.coRepo.GetByID(ctx, checkoutID)
	if err != nil {
		return err
	}
	if co == nil || co.InventoryID != itemID {
		return domain.ErrNotFound
	}
	if co.Status != entity.CheckoutActive {
		return domain.ErrCheckoutNotActive
	}

	now := time.Now().UTC()
	return uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		coRepo repository.CheckoutRepository,
	) error {
		if err := coRepo.MarkReturned(ctx, checkoutID, now); err != nil {
			return err
		}
		return invRepo.Update(ctx, itemID, map[string]any{
			"borrowedBy":         nil,
			"borrowedAt":         nil,
			"expectedReturnDate": nil,
		})
	})
}

// History devuelve el historial de préstamos de un ítem, más reciente primero.
func (uc *UseCase) History(ctx context.Context, itemID string) ([]entity.Checkout, error) {
	return uc.coRepo.ListByItem(ctx, itemID)
}
