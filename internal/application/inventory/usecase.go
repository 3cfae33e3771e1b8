package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/freezer-api/internal/application/dto"
	"github.com/jhoicas/freezer-api/internal/domain"
	"github.com/jhoicas/freezer-api/internal/domain/entity"
	"github.com/jhoicas/freezer-api/internal/domain/inventory"
	"github.com/jhoicas/freezer-api/internal/domain/repository"
)

// UseCase casos de uso del inventario: alta con validación y chequeo de
// duplicados, lecturas ordenadas/filtradas y edición con auditoría.
type UseCase struct {
	repo repository.InventoryRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.InventoryRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create valida la entrada, chequea duplicados por (name, company[, batch]) y
// persiste el ítem canónico. El chequeo de duplicados es consulta-y-escritura
// sin transacción: dos altas concurrentes idénticas pueden colarse ambas.
func (uc *UseCase) Create(ctx context.Context, createdBy string, in entity.NewItemInput) (*entity.InventoryItem, error) {
	if createdBy == "" {
		return nil, domain.ErrUnauthorized
	}

	if res := inventory.ValidateNewItem(in); !res.Valid {
		return nil, &domain.ValidationError{Fields: res.Errors}
	}

	name := strings.TrimSpace(in.Name)
	company := strings.TrimSpace(in.Company)
	batch := strings.TrimSpace(in.BatchNumber)

	if res := inventory.ValidateDuplicateInput(name, company); !res.Valid {
		return nil, &domain.ValidationError{Fields: res.Errors}
	}
	exists, err := uc.repo.Exists(ctx, name, company, batch)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &domain.DuplicateError{Name: name, Company: company, BatchNumber: batch}
	}

	now := time.Now().UTC()
	item := &entity.InventoryItem{
		ID:            uuid.New().String(),
		Name:          name,
		Company:       company,
		Volume:        strings.TrimSpace(in.Volume),
		Quantity:      int(*in.Quantity),
		Concentration: optional(in.Concentration),
		Notes:         strings.TrimSpace(in.Notes),
		Category:      in.Category,
		Barcode:       strings.TrimSpace(in.Barcode),
		QRCode:        strings.TrimSpace(in.QRCode),
		BatchNumber:   optional(in.BatchNumber),
		SerialNumber:  optional(in.SerialNumber),
		CASNumber:     optional(in.CASNumber),
		Status:        entity.StatusActive,
		CreatedBy:     createdBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	item.PurchaseDate = parseDate(in.PurchaseDate)
	item.ExpirationDate = parseDate(in.ExpirationDate)

	if in.Location != nil {
		loc := buildLocation(in.Location.Track, in.Location.Position)
		item.Location = loc
		item.LocationLabel = &loc.Label
	}

	if err := uc.repo.Add(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// FetchAll devuelve el inventario completo ordenado por nombre sin distinguir
// mayúsculas (orden de colación en inglés, no orden de bytes).
func (uc *UseCase) FetchAll(ctx context.Context) ([]entity.InventoryItem, error) {
	items, err := uc.repo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	sortByName(items)
	return items, nil
}

// Get devuelve un ítem por ID o ErrNotFound.
func (uc *UseCase) Get(ctx context.Context, id string) (*entity.InventoryItem, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// Search filtra el inventario completo en memoria: substring sin distinguir
// mayúsculas sobre name, company, batchNumber y casNumber. Query vacía
// devuelve todo.
func (uc *UseCase) Search(ctx context.Context, query string) ([]entity.InventoryItem, error) {
	items, err := uc.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items, nil
	}
	out := make([]entity.InventoryItem, 0, len(items))
	for _, it := range items {
		if matches(it, q) {
			out = append(out, it)
		}
	}
	return out, nil
}

// ListByCompany filtra por proveedor (match exacto en el store).
func (uc *UseCase) ListByCompany(ctx context.Context, company string) ([]entity.InventoryItem, error) {
	return uc.repo.ListByCompany(ctx, company)
}

// ListByCategory filtra por zona de temperatura ("4C" | "-20C").
func (uc *UseCase) ListByCategory(ctx context.Context, category string) ([]entity.InventoryItem, error) {
	if category != entity.CategoryFridge && category != entity.CategoryFreezer {
		return nil, domain.ErrInvalidInput
	}
	return uc.repo.ListByCategory(ctx, category)
}

// ListActive devuelve los ítems con status=active.
func (uc *UseCase) ListActive(ctx context.Context) ([]entity.InventoryItem, error) {
	return uc.repo.ListActive(ctx)
}

// ListExpired devuelve los ítems activos cuya fecha de vencimiento ya pasó.
// El vencimiento se evalúa al momento de la consulta; el status almacenado
// no se reescribe automáticamente.
func (uc *UseCase) ListExpired(ctx context.Context) ([]entity.InventoryItem, error) {
	return uc.repo.ListExpired(ctx)
}

// ListBorrowed devuelve los ítems con préstamo activo.
func (uc *UseCase) ListBorrowed(ctx context.Context) ([]entity.InventoryItem, error) {
	return uc.repo.ListBorrowed(ctx)
}

// ListByCreator devuelve los ítems dados de alta por un usuario.
func (uc *UseCase) ListByCreator(ctx context.Context, userID string) ([]entity.InventoryItem, error) {
	return uc.repo.ListByCreator(ctx, userID)
}

// Update mezcla los campos presentes del request sobre el ítem, valida los que
// cambian y deja una entrada de auditoría con el antes/después de cada campo.
// Update y AppendHistory son dos escrituras sin transacción: un fallo en la
// segunda deja el cambio aplicado pero sin auditar.
func (uc *UseCase) Update(ctx context.Context, id, changedBy string, req dto.UpdateItemRequest) (*entity.InventoryItem, error) {
	if changedBy == "" {
		return nil, domain.ErrUnauthorized
	}
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}

	errs := map[string]string{}
	fields := map[string]any{}
	changes := map[string]entity.FieldChange{}

	setStr := func(key string, newVal *string, oldVal string) {
		if newVal == nil || *newVal == oldVal {
			return
		}
		if msg := inventory.ValidateItemField(key, *newVal); msg != "" {
			errs[key] = msg
			return
		}
		fields[key] = *newVal
		changes[key] = entity.FieldChange{From: oldVal, To: *newVal}
	}
	setOpt := func(key string, newVal *string, oldVal *string) {
		if newVal == nil {
			return
		}
		old := ""
		if oldVal != nil {
			old = *oldVal
		}
		if *newVal == old {
			return
		}
		// Vaciar un campo opcional sigue siendo válido; el valor nuevo no vacío
		// pasa por las mismas reglas del alta.
		if msg := inventory.ValidateItemField(key, *newVal); msg != "" {
			errs[key] = msg
			return
		}
		fields[key] = optional(*newVal)
		changes[key] = entity.FieldChange{From: oldVal, To: optional(*newVal)}
	}

	setStr("name", req.Name, current.Name)
	setStr("company", req.Company, current.Company)
	setStr("volume", req.Volume, current.Volume)
	setStr("notes", req.Notes, current.Notes)
	setStr("barcode", req.Barcode, current.Barcode)
	setStr("qrCode", req.QRCode, current.QRCode)
	setOpt("concentration", req.Concentration, current.Concentration)
	setOpt("batchNumber", req.BatchNumber, current.BatchNumber)
	setOpt("serialNumber", req.SerialNumber, current.SerialNumber)
	setOpt("casNumber", req.CASNumber, current.CASNumber)

	if req.Quantity != nil && *req.Quantity != current.Quantity {
		if *req.Quantity < 0 {
			errs["quantity"] = "Quantity cannot be negative"
		} else if *req.Quantity > 999999 {
			errs["quantity"] = "Quantity exceeds maximum"
		} else {
			fields["quantity"] = *req.Quantity
			changes["quantity"] = entity.FieldChange{From: current.Quantity, To: *req.Quantity}
		}
	}
	if req.Category != nil && *req.Category != current.Category {
		if *req.Category != entity.CategoryFridge && *req.Category != entity.CategoryFreezer {
			errs["category"] = "Category must be 4C or -20C"
		} else {
			fields["category"] = *req.Category
			changes["category"] = entity.FieldChange{From: current.Category, To: *req.Category}
		}
	}
	if req.Status != nil && *req.Status != current.Status {
		switch *req.Status {
		case entity.StatusActive, entity.StatusExpired, entity.StatusArchived:
			fields["status"] = *req.Status
			changes["status"] = entity.FieldChange{From: current.Status, To: *req.Status}
		default:
			errs["status"] = "Status must be active, expired or archived"
		}
	}
	if req.PurchaseDate != nil {
		if *req.PurchaseDate != "" && parseDate(*req.PurchaseDate) == nil {
			errs["purchaseDate"] = "Invalid purchase date"
		} else {
			fields["purchaseDate"] = parseDate(*req.PurchaseDate)
			changes["purchaseDate"] = entity.FieldChange{From: current.PurchaseDate, To: parseDate(*req.PurchaseDate)}
		}
	}
	if req.ExpirationDate != nil {
		if *req.ExpirationDate != "" && parseDate(*req.ExpirationDate) == nil {
			errs["expirationDate"] = "Invalid expiration date"
		} else {
			fields["expirationDate"] = parseDate(*req.ExpirationDate)
			changes["expirationDate"] = entity.FieldChange{From: current.ExpirationDate, To: parseDate(*req.ExpirationDate)}
		}
	}
	if req.Location != nil {
		if res := inventory.ValidateLocation(req.Location.Track, req.Location.Position); !res.Valid {
			if msg, ok := res.Errors["track"]; ok {
				errs["location"] = msg
			} else if msg, ok := res.Errors["position"]; ok {
				errs["location"] = msg
			}
		} else {
			loc := buildLocation(req.Location.Track, req.Location.Position)
			if current.Location == nil || current.Location.Label != loc.Label {
				fields["location"] = loc
				var from any
				if current.Location != nil {
					from = current.Location.Label
				}
				changes["location"] = entity.FieldChange{From: from, To: loc.Label}
			}
		}
	}

	if len(errs) > 0 {
		return nil, &domain.ValidationError{Fields: errs}
	}
	if len(fields) == 0 {
		return current, nil
	}

	if err := uc.repo.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	entry := &entity.EditHistoryEntry{
		ID:        uuid.New().String(),
		ItemID:    id,
		Action:    "updated",
		ChangedBy: changedBy,
		ChangedAt: time.Now().UTC(),
		Changes:   changes,
	}
	if err := uc.repo.AppendHistory(ctx, entry); err != nil {
		return nil, err
	}

	return uc.Get(ctx, id)
}

// FreezerMap arma el mapa de ocupación de la grilla 3×2 con su resumen.
func (uc *UseCase) FreezerMap(ctx context.Context) ([]inventory.Slot, inventory.MapSummary, error) {
	items, err := uc.repo.FetchAll(ctx)
	if err != nil {
		return nil, inventory.MapSummary{}, err
	}
	slots := inventory.BuildFreezerMap(items)
	return slots, inventory.Summarize(items, slots), nil
}

func buildLocation(track, position int) *entity.Location {
	return &entity.Location{
		Track:       track,
		Position:    position,
		Label:       inventory.LocationLabel(track, position),
		Description: inventory.LocationDescription(track, position),
	}
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

func sortByName(items []entity.InventoryItem) {
	c := collate.New(language.English, collate.IgnoreCase)
	c.Sort(byName(items))
}

type byName []entity.InventoryItem

func (s byName) Len() int           { return len(s) }
func (s byName) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s byName) Bytes(i int) []byte { return []byte(s[i].Name) }

func matches(it entity.InventoryItem, q string) bool {
	if strings.Contains(strings.ToLower(it.Name), q) ||
		strings.Contains(strings.ToLower(it.Company), q) {
		return true
	}
	if it.BatchNumber != nil && strings.Contains(strings.ToLower(*it.BatchNumber), q) {
		return true
	}
	if it.CASNumber != nil && strings.Contains(strings.ToLower(*it.CASNumber), q) {
		return true
	}
	return false
}
