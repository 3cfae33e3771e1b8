package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/freezer-api/internal/application/dto"
	appinventory "github.com/jhoicas/freezer-api/internal/application/inventory"
	"github.com/jhoicas/freezer-api/internal/domain"
	"github.com/jhoicas/freezer-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del repositorio de inventario.
// ──────────────────────────────────────────────────────────────────────────────

type fakeInventoryRepo struct {
	items   map[string]*entity.InventoryItem
	history []entity.EditHistoryEntry
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{items: map[string]*entity.InventoryItem{}}
}

func (r *fakeInventoryRepo) FetchAll(_ context.Context) ([]entity.InventoryItem, error) {
	out := make([]entity.InventoryItem, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, *it)
	}
	return out, nil
}

func (r *fakeInventoryRepo) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *fakeInventoryRepo) Exists(_ context.Context, name, company, batchNumber string) (bool, error) {
	for _, it := range r.items {
		if it.Name != name || it.Company != company {
			continue
		}
		if batchNumber == "" {
			return true, nil
		}
		if it.BatchNumber != nil && *it.BatchNumber == batchNumber {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeInventoryRepo) Add(_ context.Context, item *entity.InventoryItem) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeInventoryRepo) Update(_ context.Context, id string, fields map[string]any) error {
	it, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	for field, value := range fields {
		switch field {
		case "name":
			it.Name = value.(string)
		case "company":
			it.Company = value.(string)
		case "quantity":
			it.Quantity = value.(int)
		case "notes":
			it.Notes = value.(string)
		case "category":
			it.Category = value.(string)
		case "status":
			it.Status = value.(string)
		case "location":
			loc, _ := value.(*entity.Location)
			it.Location = loc
			if loc != nil {
				it.LocationLabel = &loc.Label
			} else {
				it.LocationLabel = nil
			}
		case "borrowedBy":
			if value == nil {
				it.BorrowedBy = nil
			} else {
				s := value.(string)
				it.BorrowedBy = &s
			}
		case "batchNumber":
			it.BatchNumber, _ = value.(*string)
		case "borrowedAt", "expectedReturnDate", "purchaseDate", "expirationDate",
			"volume", "barcode", "qrCode", "concentration",
			"serialNumber", "casNumber":
			// campos no observados por estos tests
		}
	}
	it.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *fakeInventoryRepo) AppendHistory(_ context.Context, e *entity.EditHistoryEntry) error {
	r.history = append(r.history, *e)
	return nil
}

func (r *fakeInventoryRepo) listWhere(keep func(entity.InventoryItem) bool) ([]entity.InventoryItem, error) {
	out := []entity.InventoryItem{}
	for _, it := range r.items {
		if keep(*it) {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (r *fakeInventoryRepo) ListByCompany(_ context.Context, company string) ([]entity.InventoryItem, error) {
	return r.listWhere(func(it entity.InventoryItem) bool { return it.Company == company })
}

func (r *fakeInventoryRepo) ListByCategory(_ context.Context, category string) ([]entity.InventoryItem, error) {
	return r.listWhere(func(it entity.InventoryItem) bool { return it.Category == category })
}

func (r *fakeInventoryRepo) ListActive(_ context.Context) ([]entity.InventoryItem, error) {
	return r.listWhere(func(it entity.InventoryItem) bool { return it.Status == entity.StatusActive })
}

func (r *fakeInventoryRepo) ListExpired(_ context.Context) ([]entity.InventoryItem, error) {
	now := time.Now()
	return r.listWhere(func(it entity.InventoryItem) bool {
		return it.Status == entity.StatusActive && it.ExpirationDate != nil && it.ExpirationDate.Before(now)
	})
}

func (r *fakeInventoryRepo) ListBorrowed(_ context.Context) ([]entity.InventoryItem, error) {
	return r.listWhere(func(it entity.InventoryItem) bool { return it.BorrowedBy != nil })
}

func (r *fakeInventoryRepo) ListByCreator(_ context.Context, userID string) ([]entity.InventoryItem, error) {
	return r.listWhere(func(it entity.InventoryItem) bool { return it.CreatedBy == userID })
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func qty(v float64) *float64 { return &v }

func validInput() entity.NewItemInput {
	return entity.NewItemInput{
		Name:        "Sodium Chloride",
		Company:     "Sigma-Aldrich",
		Volume:      "500 g",
		Quantity:    qty(10),
		Category:    entity.CategoryFreezer,
		Barcode:     "BC-001234",
		QRCode:      "QR-001234",
		BatchNumber: "LOT-2024-001",
		Location:    &entity.LocationInput{Track: 1, Position: 2},
	}
}

func mustCreate(t *testing.T, uc *appinventory.UseCase, in entity.NewItemInput) *entity.InventoryItem {
	t.Helper()
	item, err := uc.Create(context.Background(), "user-1", in)
	require.NoError(t, err)
	return item
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_ItemCanonico(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc := appinventory.NewUseCase(repo)

	in := validInput()
	in.Name = "  Sodium Chloride  " // se espera trim
	item := mustCreate(t, uc, in)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "Sodium Chloride", item.Name)
	assert.Equal(t, 10, item.Quantity)
	assert.Equal(t, entity.StatusActive, item.Status)
	assert.Equal(t, "user-1", item.CreatedBy)
	require.NotNil(t, item.Location)
	assert.Equal(t, "T1-P2", item.Location.Label)
	assert.Equal(t, "Track 1 (Top), Position 2 (Right)", item.Location.Description)
	require.NotNil(t, item.LocationLabel)
	assert.Equal(t, "T1-P2", *item.LocationLabel)
	require.NotNil(t, item.BatchNumber)
	assert.Equal(t, "LOT-2024-001", *item.BatchNumber)
	assert.Nil(t, item.CASNumber, "opcional vacío debe quedar nil")
}

func TestCreate_SinUsuarioRechazado(t *testing.T) {
	uc := appinventory.NewUseCase(newFakeInventoryRepo())
	_, err := uc.Create(context.Background(), "", validInput())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCreate_ValidacionFalla(t *testing.T) {
	uc := appinventory.NewUseCase(newFakeInventoryRepo())

	in := validInput()
	in.Quantity = qty(-1)
	_, err := uc.Create(context.Background(), "user-1", in)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Quantity cannot be negative", vErr.Fields["quantity"])
}

func TestCreate_DuplicadoRechazado(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc := appinventory.NewUseCase(repo)
	mustCreate(t, uc, validInput())

	_, err := uc.Create(context.Background(), "user-2", validInput())
	var dErr *domain.DuplicateError
	require.ErrorAs(t, err, &dErr)
	assert.Equal(t, "Sodium Chloride", dErr.Name)
	assert.Equal(t, "Sigma-Aldrich", dErr.Company)
}

// Mismo (name, company) pero distinto batch no es duplicado.
func TestCreate_OtroBatchNoEsDuplicado(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc := appinventory.NewUseCase(repo)
	mustCreate(t, uc, validInput())

	in := validInput()
	in.BatchNumber = "LOT-2024-002"
	_, err := uc.Create(context.Background(), "user-1", in)
	assert.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestFetchAll_OrdenPorNombreSinMayusculas(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc := appinventory.NewUseCase(repo)

	for _, name := range []string{"zinc sulfate", "Acetone", "ethanol", "Benzene"} {
		in := validInput()
		in.Name = name
		in.Barcode = "BC-" + name
		in.QRCode = "QR-" + name
		mustCreate(t, uc, in)
	}

	items, err := uc.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 4)

	got := []string{items[0].Name, items[1].Name, items[2].Name, items[3].Name}
	assert.Equal(t, []string{"Acetone", "Benzene", "ethanol", "zinc sulfate"}, got)
}

func TestGet_NoExiste(t *testing.T) {
	uc := appinventory.NewUseCase(newFakeInventoryRepo())
	_, err := uc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSearch_SubstringEnVariosCampos(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc := appinventory.NewUseCase(repo)

	in := validInput()
	in.CASNumber = "7732-18-5"
	mustCreate(t, uc, in)

	other := validInput()
	other.Name = "Acetone"
	other.Company = "Merck"
	other.BatchNumber = "AC-99"
	mustCreate(t, uc, other)

	cases := []struct {
		query string
		want  int
	}{
		{"sodium", 1},   // name, sin distinguir mayúsculas
		{"merck", 1},    // company
		{"ac-99", 1},    // batchNumber
		{"7732", 1},     // casNumber
		{"", 2},         // query vacía devuelve todo
		{"plutonio", 0}, // sin matches
	}
	for _, tc := range cases {
		items, err := uc.Search(context.Background(), tc.query)
		require.NoError(t, err)
		assert.Len(t, items, tc.want, "query %q", tc.query)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Update + auditoría
// ──────────────────────────────────────────────────────────────────────────────

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestUpdate_MezclaCamposYAudita(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc := appinventory.NewUseCase(repo)
	item := mustCreate(t, uc, validInput())

	updated, err := uc.Update(context.Background(), item.ID, "user-2", dto.UpdateItemRequest{
		Quantity: intPtr(5),
		Notes:    strPtr("half used"),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)
	assert.Equal(t, "half used", updated.Notes)
	assert.Equal(t, "Sodium Chloride", updated.Name, "campos no enviados no cambian")

	require.Len(t, repo.history, 1)
	entry := repo.history[0]
	assert.Equal(t, item.ID, entry.ItemID)
	assert.Equal(t, "updated", entry.Action)
	assert.Equal(t, "user-2", entry.ChangedBy)
	require.Contains(t, entry.Changes, "quantity")
	assert.Equal(t, 10, entry.Changes["quantity"].From)
	assert.Equal(t, 5, entry.Changes["quantity"].To)
}

func TestUpdate_SinCambiosNoAudita(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc := appinventory.NewUseCase(repo)
	item := mustCreate(t, uc, validInput())

	_, err := uc.Update(context.Background(), item.ID, "user-2", dto.UpdateItemRequest{})
	require.NoError(t, err)
	assert.Empty(t, repo.history)
}

func TestUpdate_ValidaLocationYCategory(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc := appinventory.NewUseCase(repo)
	item := mustCreate(t, uc, validInput())

	_, err := uc.Update(context.Background(), item.ID, "user-2", dto.UpdateItemRequest{
		Category: strPtr("room-temp"),
		Location: &dto.LocationRequest{Track: 7, Position: 1},
	})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Category must be 4C or -20C", vErr.Fields["category"])
	assert.Equal(t, "Track must be between 1 and 3", vErr.Fields["location"])
}

// La edición aplica a cada campo que cambia las mismas reglas de texto del
// alta: un valor que el alta rechazaría tampoco entra por PATCH.
func TestUpdate_ValidaCamposDeTexto(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc := appinventory.NewUseCase(repo)
	item := mustCreate(t, uc, validInput())

	_, err := uc.Update(context.Background(), item.ID, "user-2", dto.UpdateItemRequest{
		Name:        strPtr("X"),
		Company:     strPtr(""),
		Barcode:     strPtr("AB"),
		BatchNumber: strPtr("lot-minusculas"),
	})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Item name must be at least 2 characters", vErr.Fields["name"])
	assert.Equal(t, "Company/supplier name is required", vErr.Fields["company"])
	assert.Equal(t, "Barcode must be at least 3 characters", vErr.Fields["barcode"])
	assert.Equal(t,
		"Batch number format invalid (uppercase letters, numbers, hyphens only)",
		vErr.Fields["batchNumber"])

	// nada se escribió ni se auditó
	current, err := uc.Get(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sodium Chloride", current.Name)
	assert.Empty(t, repo.history)
}

// Vaciar un campo opcional sigue permitido: las reglas de formato solo aplican
// a valores no vacíos.
func TestUpdate_VaciarOpcionalPermitido(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc := appinventory.NewUseCase(repo)
	item := mustCreate(t, uc, validInput())
	require.NotNil(t, item.BatchNumber)

	updated, err := uc.Update(context.Background(), item.ID, "user-2", dto.UpdateItemRequest{
		BatchNumber: strPtr(""),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.BatchNumber)
	require.Len(t, repo.history, 1)
	require.Contains(t, repo.history[0].Changes, "batchNumber")
}

func TestUpdate_CantidadExcedeMaximo(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc := appinventory.NewUseCase(repo)
	item := mustCreate(t, uc, validInput())

	_, err := uc.Update(context.Background(), item.ID, "user-2", dto.UpdateItemRequest{
		Quantity: intPtr(1_000_000),
	})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Quantity exceeds maximum", vErr.Fields["quantity"])
}

func TestUpdate_CambioDeUbicacionDerivaEtiqueta(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc := appinventory.NewUseCase(repo)
	item := mustCreate(t, uc, validInput())

	updated, err := uc.Update(context.Background(), item.ID, "user-2", dto.UpdateItemRequest{
		Location: &dto.LocationRequest{Track: 3, Position: 1},
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Location)
	assert.Equal(t, "T3-P1", updated.Location.Label)

	require.Len(t, repo.history, 1)
	assert.Equal(t, "T1-P2", repo.history[0].Changes["location"].From)
	assert.Equal(t, "T3-P1", repo.history[0].Changes["location"].To)
}

func TestUpdate_NoExiste(t *testing.T) {
	uc := appinventory.NewUseCase(newFakeInventoryRepo())
	_, err := uc.Update(context.Background(), "nope", "user-2", dto.UpdateItemRequest{Quantity: intPtr(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mapa del congelador
// ──────────────────────────────────────────────────────────────────────────────

func TestFreezerMap_SlotsYResumen(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc := appinventory.NewUseCase(repo)

	mustCreate(t, uc, validInput()) // T1-P2

	in := validInput()
	in.Name = "Acetone"
	in.Location = &entity.LocationInput{Track: 1, Position: 2}
	mustCreate(t, uc, in) // también T1-P2

	slots, sum, err := uc.FreezerMap(context.Background())
	require.NoError(t, err)
	require.Len(t, slots, 6)

	assert.Equal(t, 2, slots[1].Count, "T1-P2 con dos ítems")
	assert.Equal(t, 2, sum.ActiveItems)
	assert.Equal(t, 1, sum.UsedSlots)
	assert.Equal(t, 5, sum.EmptySlots)
}
