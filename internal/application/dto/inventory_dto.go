package dto

import (
	"time"

	"github.com/jhoicas/freezer-api/internal/domain/entity"
)

// LocationRequest ubicación cruda del formulario (track/position sin derivar).
type LocationRequest struct {
	Track    int `json:"track"`
	Position int `json:"position"`
}

// NewItemRequest body para POST /api/inventory. Los nombres de campo son el
// contrato de wire con el front (camelCase). Quantity es puntero para
// distinguir "no enviado" de 0; las fechas viajan como "YYYY-MM-DD".
type NewItemRequest struct {
	Name           string           `json:"name"`
	Company        string           `json:"company"`
	Volume         string           `json:"volume"`
	Quantity       *float64         `json:"quantity"`
	Concentration  string           `json:"concentration,omitempty"`
	Notes          string           `json:"notes,omitempty"`
	Category       string           `json:"category"`
	Barcode        string           `json:"barcode"`
	QRCode         string           `json:"qrCode"`
	BatchNumber    string           `json:"batchNumber,omitempty"`
	SerialNumber   string           `json:"serialNumber,omitempty"`
	CASNumber      string           `json:"casNumber,omitempty"`
	PurchaseDate   string           `json:"purchaseDate,omitempty"`
	ExpirationDate string           `json:"expirationDate,omitempty"`
	Location       *LocationRequest `json:"location,omitempty"`
}

// ToInput convierte el request al tipo de entrada del dominio.
func (r NewItemRequest) ToInput() entity.NewItemInput {
	in := entity.NewItemInput{
		Name:           r.Name,
		Company:        r.Company,
		Volume:         r.Volume,
		Quantity:       r.Quantity,
		Concentration:  r.Concentration,
		Notes:          r.Notes,
		Category:       r.Category,
		Barcode:        r.Barcode,
		QRCode:         r.QRCode,
		BatchNumber:    r.BatchNumber,
		SerialNumber:   r.SerialNumber,
		CASNumber:      r.CASNumber,
		PurchaseDate:   r.PurchaseDate,
		ExpirationDate: r.ExpirationDate,
	}
	if r.Location != nil {
		in.Location = &entity.LocationInput{Track: r.Location.Track, Position: r.Location.Position}
	}
	return in
}

// UpdateItemRequest body para PATCH /api/inventory/:id. Solo los campos
// presentes se mezclan sobre el documento; un string vacío limpia los campos
// opcionales de texto. id y createdAt no son editables.
type UpdateItemRequest struct {
	Name           *string          `json:"name,omitempty"`
	Company        *string          `json:"company,omitempty"`
	Volume         *string          `json:"volume,omitempty"`
	Quantity       *int             `json:"quantity,omitempty"`
	Concentration  *string          `json:"concentration,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
	Category       *string          `json:"category,omitempty"`
	Barcode        *string          `json:"barcode,omitempty"`
	QRCode         *string          `json:"qrCode,omitempty"`
	BatchNumber    *string          `json:"batchNumber,omitempty"`
	SerialNumber   *string          `json:"serialNumber,omitempty"`
	CASNumber      *string          `json:"casNumber,omitempty"`
	PurchaseDate   *string          `json:"purchaseDate,omitempty"`
	ExpirationDate *string          `json:"expirationDate,omitempty"`
	Status         *string          `json:"status,omitempty"`
	Location       *LocationRequest `json:"location,omitempty"`
}

// LocationResponse ubicación con etiqueta y descripción derivadas.
type LocationResponse struct {
	Track       int    `json:"track"`
	Position    int    `json:"position"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// ItemResponse representación de wire de un InventoryItem.
type ItemResponse struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name"`
	Company            string            `json:"company"`
	Volume             string            `json:"volume"`
	Quantity           int               `json:"quantity"`
	Concentration      *string           `json:"concentration"`
	Notes              string            `json:"notes"`
	Category           string            `json:"category"`
	Barcode            string            `json:"barcode"`
	QRCode             string            `json:"qrCode"`
	BatchNumber        *string           `json:"batchNumber"`
	SerialNumber       *string           `json:"serialNumber"`
	CASNumber          *string           `json:"casNumber"`
	PurchaseDate       *time.Time        `json:"purchaseDate"`
	ExpirationDate     *time.Time        `json:"expirationDate"`
	Location           *LocationResponse `json:"location"`
	LocationLabel      *string           `json:"locationLabel"`
	Status             string            `json:"status"`
	CreatedBy          string            `json:"createdBy"`
	CreatedAt          time.Time         `json:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt"`
	BorrowedBy         *string           `json:"borrowedBy"`
	BorrowedAt         *time.Time        `json:"borrowedAt"`
	ExpectedReturnDate *time.Time        `json:"expectedReturnDate"`
}

// NewItemResponse mapea la entidad al contrato de wire.
func NewItemResponse(it *entity.InventoryItem) ItemResponse {
	resp := ItemResponse{
		ID:                 it.ID,
		Name:               it.Name,
		Company:            it.Company,
		Volume:             it.Volume,
		Quantity:           it.Quantity,
		Concentration:      it.Concentration,
		Notes:              it.Notes,
		Category:           it.Category,
		Barcode:            it.Barcode,
		QRCode:             it.QRCode,
		BatchNumber:        it.BatchNumber,
		SerialNumber:       it.SerialNumber,
		CASNumber:          it.CASNumber,
		PurchaseDate:       it.PurchaseDate,
		ExpirationDate:     it.ExpirationDate,
		LocationLabel:      it.LocationLabel,
		Status:             it.Status,
		CreatedBy:          it.CreatedBy,
		CreatedAt:          it.CreatedAt,
		UpdatedAt:          it.UpdatedAt,
		BorrowedBy:         it.BorrowedBy,
		BorrowedAt:         it.BorrowedAt,
		ExpectedReturnDate: it.ExpectedReturnDate,
	}
	if it.Location != nil {
		resp.Location = &LocationResponse{
			Track:       it.Location.Track,
			Position:    it.Location.Position,
			Label:       it.Location.Label,
			Description: it.Location.Description,
		}
	}
	return resp
}

// NewItemResponseList mapea una lista de entidades.
func NewItemResponseList(items []entity.InventoryItem) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for i := range items {
		out = append(out, NewItemResponse(&items[i]))
	}
	return out
}
