package dto

import (
	"time"

	"github.com/jhoicas/freezer-api/internal/domain/entity"
)

// CheckoutRequest body para POST /api/inventory/:id/checkout.
type CheckoutRequest struct {
	Quantity           int    `json:"quantity"`
	ExpectedReturnDate string `json:"expectedReturnDate,omitempty"` // "YYYY-MM-DD"; default hoy
	Purpose            string `json:"purpose,omitempty"`
}

// ReturnRequest body para POST /api/inventory/:id/return.
type ReturnRequest struct {
	CheckoutID string `json:"checkoutId"`
}

// CheckoutResponse representación de wire de un Checkout.
type CheckoutResponse struct {
	ID                 string     `json:"id"`
	InventoryID        string     `json:"inventoryId"`
	UserID             string     `json:"userId"`
	CheckedOutAt       time.Time  `json:"checkedOutAt"`
	Quantity           int        `json:"quantity"`
	ExpectedReturnDate time.Time  `json:"expectedReturnDate"`
	Status             string     `json:"status"`
	Purpose            string     `json:"purpose,omitempty"`
	ReturnedAt         *time.Time `json:"returnedAt"`
}

// NewCheckoutResponse mapea la entidad al contrato de wire.
func NewCheckoutResponse(co *entity.Checkout) CheckoutResponse {
	return CheckoutResponse{
		ID:                 co.ID,
		InventoryID:        co.InventoryID,
		UserID:             co.UserID,
		CheckedOutAt:       co.CheckedOutAt,
		Quantity:           co.Quantity,
		ExpectedReturnDate: co.ExpectedReturnDate,
		Status:             co.Status,
		Purpose:            co.Purpose,
		ReturnedAt:         co.ReturnedAt,
	}
}
