package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderItemRecord is one purchased position inside an order snapshot. Name
// and UnitPrice are captured at checkout time and never re-resolved against
// the catalog.
type OrderItemRecord struct {
	TargetKind string    `json:"targetKind"`
	TargetID   uuid.UUID `json:"targetId"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	UnitPrice  float64   `json:"unitPrice"`
}

// OrderModel mirrors the 'orders' table. Rows are append-only.
type OrderModel struct {
	ID              uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProfileID       uuid.UUID         `gorm:"type:uuid;not null;index"`
	Items           []OrderItemRecord `gorm:"serializer:json;type:jsonb;not null"`
	TotalAmount     float64           `gorm:"not null"`
	ShippingAddress string            `gorm:"type:text;not null"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
