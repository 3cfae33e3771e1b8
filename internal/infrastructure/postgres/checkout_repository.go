package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/freezer-api/internal/domain"
	"github.com/jhoicas/freezer-api/internal/domain/entity"
	"github.com/jhoicas/freezer-api/internal/domain/repository"
)

var _ repository.CheckoutRepository = (*CheckoutRepo)(nil)

// CheckoutRepo implementación del puerto CheckoutRepository sobre PostgreSQL
// (usable con pool o tx). Colección "checkouts".
type CheckoutRepo struct {
	q Querier
}

// NewCheckoutRepository construye el adaptador de persistencia de préstamos.
func NewCheckoutRepository(q Querier) *CheckoutRepo {
	return &CheckoutRepo{q: q}
}

const checkoutColumns = `id, inventory_id, user_id, checked_out_at, quantity,
	expected_return_date, status, purpose, returned_at`

func scanCheckout(row pgx.Row) (*entity.Checkout, error) {
	var co entity.Checkout
	err := row.Scan(
		&co.ID, &co.InventoryID, &co.UserID, &co.CheckedOutAt, &co.Quantity,
		&co.ExpectedReturnDate, &co.Status, &co.Purpose, &co.ReturnedAt,
	)
	if err != nil {
		return nil, err
	}
	return &co, nil
}

// Create persiste un nuevo registro de préstamo.
func (r *CheckoutRepo) Create(ctx context.Context, co *entity.Checkout) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO checkouts (id, inventory_id, user_id, checked_out_at, quantity,
			expected_return_date, status, purpose, returned_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		co.ID, co.InventoryID, co.UserID, co.CheckedOutAt, co.Quantity,
		co.ExpectedReturnDate, co.Status, co.Purpose, co.ReturnedAt,
	)
	if err != nil {
		return storeErr("create checkout", "Failed to checkout item", err)
	}
	return nil
}

// GetByID obtiene un checkout por ID; nil si no existe.
func (r *CheckoutRepo) GetByID(ctx context.Context, id string) (*entity.Checkout, error) {
	row := r.q.QueryRow(ctx, `SELECT `+checkoutColumns+` FROM checkouts WHERE id = $1`, id)
	co, err := scanCheckout(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get checkout", "Failed to return item", err)
	}
	return co, nil
}

// MarkReturned setea returned_at y transiciona el status a "returned" en una
// sola escritura, para que los dos campos no puedan divergir.
func (r *CheckoutRepo) MarkReturned(ctx context.Context, id string, returnedAt time.Time) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE checkouts SET returned_at = $2, status = $3 WHERE id = $1`,
		id, returnedAt, entity.CheckoutReturned,
	)
	if err != nil {
		return storeErr("mark checkout returned", "Failed to return item", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByItem historial de préstamos de un ítem, más reciente primero.
func (r *CheckoutRepo) ListByItem(ctx context.Context, inventoryID string) ([]entity.Checkout, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+checkoutColumns+` FROM checkouts WHERE inventory_id = $1 ORDER BY checked_out_at DESC`,
		inventoryID,
	)
	if err != nil {
		return nil, storeErr("list checkouts", "Failed to fetch checkouts", err)
	}
	defer rows.Close()
	var list []entity.Checkout
	for rows.Next() {
		co, err := scanCheckout(rows)
		if err != nil {
			return nil, storeErr("list checkouts", "Failed to fetch checkouts", err)
		}
		list = append(list, *co)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list checkouts", "Failed to fetch checkouts", err)
	}
	return list, nil
}
