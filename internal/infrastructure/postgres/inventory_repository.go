package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/freezer-api/internal/domain"
	"github.com/jhoicas/freezer-api/internal/domain/entity"
	"github.com/jhoicas/freezer-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL
// (usable con pool o tx). Colección "inventory" + sub-colección "inventory_history".
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de persistencia del inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const itemColumns = `id, name, company, volume, quantity, concentration, notes, category,
	barcode, qr_code, batch_number, serial_number, cas_number,
	purchase_date, expiration_date,
	track, slot_position, location_label, location_description,
	status, created_by, created_at, updated_at,
	borrowed_by, borrowed_at, expected_return_date`

// colByField mapea los nombres de campo del contrato de wire a columnas SQL.
// Update solo acepta estas claves; id y created_at quedan fuera a propósito.
var colByField = map[string]string{
	"name":               "name",
	"company":            "company",
	"volume":             "volume",
	"quantity":           "quantity",
	"concentration":      "concentration",
	"notes":              "notes",
	"category":           "category",
	"barcode":            "barcode",
	"qrCode":             "qr_code",
	"batchNumber":        "batch_number",
	"serialNumber":       "serial_number",
	"casNumber":          "cas_number",
	"purchaseDate":       "purchase_date",
	"expirationDate":     "expiration_date",
	"status":             "status",
	"borrowedBy":         "borrowed_by",
	"borrowedAt":         "borrowed_at",
	"expectedReturnDate": "expected_return_date",
}

func scanItem(row pgx.Row) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	var track, position *int
	var label, description *string
	err := row.Scan(
		&it.ID, &it.Name, &it.Company, &it.Volume, &it.Quantity, &it.Concentration, &it.Notes, &it.Category,
		&it.Barcode, &it.QRCode, &it.BatchNumber, &it.SerialNumber, &it.CASNumber,
		&it.PurchaseDate, &it.ExpirationDate,
		&track, &position, &label, &description,
		&it.Status, &it.CreatedBy, &it.CreatedAt, &it.UpdatedAt,
		&it.BorrowedBy, &it.BorrowedAt, &it.ExpectedReturnDate,
	)
	if err != nil {
		return nil, err
	}
	if track != nil && position != nil && label != nil && description != nil {
		it.Location = &entity.Location{Track: *track, Position: *position, Label: *label, Description: *description}
		it.LocationLabel = label
	}
	return &it, nil
}

// list corre una consulta filtrada y envuelve cualquier fallo en un StoreError
// con el mensaje estable de la operación.
func (r *InventoryRepo) list(ctx context.Context, op, failMsg, where string, args ...any) ([]entity.InventoryItem, error) {
	query := `SELECT ` + itemColumns + ` FROM inventory`
	if where != "" {
		query += ` WHERE ` + where
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr(op, failMsg, err)
	}
	defer rows.Close()
	var items []entity.InventoryItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, storeErr(op, failMsg, err)
		}
		items = append(items, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(op, failMsg, err)
	}
	return items, nil
}

// FetchAll devuelve todos los ítems; el orden por nombre lo aplica el caso de uso.
func (r *InventoryRepo) FetchAll(ctx context.Context) ([]entity.InventoryItem, error) {
	return r.list(ctx, "fetch inventory", "Failed to load inventory items", "")
}

// GetByID obtiene un ítem por ID; nil si no existe.
func (r *InventoryRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	row := r.q.QueryRow(ctx, `SELECT `+itemColumns+` FROM inventory WHERE id = $1`, id)
	it, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get inventory item", "Failed to load inventory items", err)
	}
	return it, nil
}

// Exists chequeo de duplicado por clave de negocio con match exacto (trim).
func (r *InventoryRepo) Exists(ctx context.Context, name, company, batchNumber string) (bool, error) {
	var (
		query string
		args  []any
	)
	if strings.TrimSpace(batchNumber) != "" {
		query = `SELECT 1 FROM inventory WHERE name = $1 AND company = $2 AND batch_number = $3 LIMIT 1`
		args = []any{strings.TrimSpace(name), strings.TrimSpace(company), strings.TrimSpace(batchNumber)}
	} else {
		query = `SELECT 1 FROM inventory WHERE name = $1 AND company = $2 LIMIT 1`
		args = []any{strings.TrimSpace(name), strings.TrimSpace(company)}
	}
	var one int
	err := r.q.QueryRow(ctx, query, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, storeErr("check duplicate", "Failed to check for duplicates", err)
	}
	return true, nil
}

// Add persiste el ítem ya canónico. No valida ni chequea duplicados: eso
// corre antes, en el caso de uso (la carrera check-then-act queda documentada).
func (r *InventoryRepo) Add(ctx context.Context, item *entity.InventoryItem) error {
	var track, position *int
	var label, description *string
	if item.Location != nil {
		track, position = &item.Location.Track, &item.Location.Position
		label, description = &item.Location.Label, &item.Location.Description
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO inventory (
			id, name, company, volume, quantity, concentration, notes, category,
			barcode, qr_code, batch_number, serial_number, cas_number,
			purchase_date, expiration_date,
			track, slot_position, location_label, location_description,
			status, created_by, created_at, updated_at,
			borrowed_by, borrowed_at, expected_return_date
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26)`,
		item.ID, item.Name, item.Company, item.Volume, item.Quantity, item.Concentration, item.Notes, item.Category,
		item.Barcode, item.QRCode, item.BatchNumber, item.SerialNumber, item.CASNumber,
		item.PurchaseDate, item.ExpirationDate,
		track, position, label, description,
		item.Status, item.CreatedBy, item.CreatedAt, item.UpdatedAt,
		item.BorrowedBy, item.BorrowedAt, item.ExpectedReturnDate,
	)
	if err != nil {
		return storeErr("add inventory item", "Failed to add inventory item", err)
	}
	return nil
}

// Update mezcla los campos dados sobre la fila y refresca updated_at.
// La clave "location" es especial: actualiza las cuatro columnas derivadas
// juntas (nil las limpia); el resto se resuelve por colByField.
func (r *InventoryRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	set := []string{"updated_at = now()"}
	args := []any{id}
	n := 2

	for field, value := range fields {
		if field == "location" {
			loc, _ := value.(*entity.Location)
			var track, position *int
			var label, description *string
			if loc != nil {
				track, position = &loc.Track, &loc.Position
				label, description = &loc.Label, &loc.Description
			}
			set = append(set,
				fmt.Sprintf("track = $%d", n), fmt.Sprintf("slot_position = $%d", n+1),
				fmt.Sprintf("location_label = $%d", n+2), fmt.Sprintf("location_description = $%d", n+3))
			args = append(args, track, position, label, description)
			n += 4
			continue
		}
		col, ok := colByField[field]
		if !ok {
			return fmt.Errorf("update inventory: campo desconocido %q", field)
		}
		set = append(set, fmt.Sprintf("%s = $%d", col, n))
		args = append(args, value)
		n++
	}

	query := `UPDATE inventory SET ` + strings.Join(set, ", ") + ` WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return storeErr("update inventory item", "Failed to update inventory item", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AppendHistory agrega una entrada a la sub-colección de historial del ítem.
// Independiente de Update: sin transacción entre ambas llamadas.
func (r *InventoryRepo) AppendHistory(ctx context.Context, e *entity.EditHistoryEntry) error {
	changes, err := json.Marshal(e.Changes)
	if err != nil {
		return fmt.Errorf("marshal changes: %w", err)
	}
	_, err = r.q.Exec(ctx, `
		INSERT INTO inventory_history (id, item_id, action, changed_by, changed_at, changes)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.ItemID, e.Action, e.ChangedBy, e.ChangedAt, changes,
	)
	if err != nil {
		return storeErr("log item edit", "Failed to log edit history", err)
	}
	return nil
}

// ListByCompany filtra por proveedor con match exacto (trim).
func (r *InventoryRepo) ListByCompany(ctx context.Context, company string) ([]entity.InventoryItem, error) {
	company = strings.TrimSpace(company)
	return r.list(ctx, "list by company", fmt.Sprintf("Failed to fetch items from %s", company), "company = $1", company)
}

// ListByCategory filtra por zona de temperatura (4C o -20C).
func (r *InventoryRepo) ListByCategory(ctx context.Context, category string) ([]entity.InventoryItem, error) {
	return r.list(ctx, "list by category", fmt.Sprintf("Failed to fetch items from %s", category), "category = $1", category)
}

// ListActive devuelve los ítems con status active.
func (r *InventoryRepo) ListActive(ctx context.Context) ([]entity.InventoryItem, error) {
	return r.list(ctx, "list active", "Failed to fetch active items", "status = $1", entity.StatusActive)
}

// ListExpired devuelve ítems activos cuya fecha de vencimiento ya pasó.
// El status persistido no se recalcula al vencer; este filtro compara la fecha.
func (r *InventoryRepo) ListExpired(ctx context.Context) ([]entity.InventoryItem, error) {
	return r.list(ctx, "list expired", "Failed to fetch expired items",
		"expiration_date IS NOT NULL AND expiration_date < now() AND status = $1", entity.StatusActive)
}

// ListBorrowed devuelve los ítems actualmente prestados (estado sombra).
func (r *InventoryRepo) ListBorrowed(ctx context.Context) ([]entity.InventoryItem, error) {
	return r.list(ctx, "list borrowed", "Failed to fetch borrowed items", "borrowed_by IS NOT NULL")
}

// ListByCreator filtra por el usuario que registró el ítem.
func (r *InventoryRepo) ListByCreator(ctx context.Context, userID string) ([]entity.InventoryItem, error) {
	return r.list(ctx, "list by creator", "Failed to fetch items created by user", "created_by = $1", userID)
}
