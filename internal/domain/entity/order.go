// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderItem is one purchased position inside an order snapshot. Name and
// UnitPrice are copied at checkout time so the order stays meaningful even if
// the catalog record later changes or disappears.
type OrderItem struct {
	Target    TargetRef
	Name      string
	Quantity  int
	UnitPrice float64
}

// Order is an immutable purchase snapshot owned by exactly one profile.
// The core never updates or deletes an order after creation.
type Order struct {
	ID              uuid.UUID
	ProfileID       uuid.UUID
	Items           []OrderItem
	TotalAmount     float64
	ShippingAddress string
	CreatedAt       time.Time
}
