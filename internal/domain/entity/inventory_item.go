package entity

import "time"

// Zonas de temperatura válidas para Category.
const (
	CategoryFridge  = "4C"
	CategoryFreezer = "-20C"
)

// Estados de ciclo de vida de un ítem.
const (
	StatusActive   = "active"
	StatusExpired  = "expired"
	StatusArchived = "archived"
)

// Location ubicación física dentro de la grilla fija 3×2 del congelador.
// Label y Description se derivan siempre de (Track, Position); nunca se escriben a mano.
type Location struct {
	Track       int
	Position    int
	Label       string // "T{track}-P{position}"
	Description string // "Track 1 (Top), Position 1 (Left)"
}

// InventoryItem representa un lote físico/químico del inventario del congelador.
// BorrowedBy/BorrowedAt/ExpectedReturnDate son estado sombra del préstamo activo:
// duplican lo que dice el registro Checkout y deben mantenerse consistentes con él.
type InventoryItem struct {
	ID            string
	Name          string
	Company       string // proveedor
	Volume        string // magnitud+unidad en texto libre, ej. "500 g"
	Quantity      int
	Concentration *string
	Notes         string
	Category      string // "4C" | "-20C"
	Barcode       string
	QRCode        string
	BatchNumber   *string
	SerialNumber  *string
	CASNumber     *string

	PurchaseDate   *time.Time
	ExpirationDate *time.Time

	Location      *Location
	LocationLabel *string // copia desnormalizada de Location.Label para filtros en el store

	Status    string // active | expired | archived
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time

	BorrowedBy         *string
	BorrowedAt         *time.Time
	ExpectedReturnDate *time.Time
}

// LocationInput ubicación cruda tal como llega del formulario (0 = no informado).
type LocationInput struct {
	Track    int
	Position int
}

// NewItemInput entrada cruda para crear un ítem, previa a validación.
// Quantity es puntero para distinguir "no enviado" de 0; las fechas vienen como "YYYY-MM-DD".
type NewItemInput struct {
	Name           string
	Company        string
	Volume         string
	Quantity       *float64
	Concentration  string
	Notes          string
	Category       string
	Barcode        string
	QRCode         string
	BatchNumber    string
	SerialNumber   string
	CASNumber      string
	PurchaseDate   string
	ExpirationDate string
	Location       *LocationInput
}
