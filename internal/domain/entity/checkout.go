package entity

import "time"

// Estados de un Checkout.
const (
	CheckoutActive   = "active"
	CheckoutReturned = "returned"
)

// Checkout una transacción de préstamo sobre un InventoryItem.
// Puede haber muchos Checkouts históricos por ítem, pero a lo sumo uno con
// Status=active a la vez; esa regla la hace cumplir la capa de aplicación,
// no un constraint de la base.
type Checkout struct {
	ID                 string
	InventoryID        string
	UserID             string
	CheckedOutAt       time.Time
	Quantity           int // unidades prestadas
	ExpectedReturnDate time.Time
	Status             string // active | returned
	Purpose            string
	ReturnedAt         *time.Time // solo se setea al devolver
}
