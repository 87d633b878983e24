// Package model contains the GORM models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). SubjectID carries the external identity provider's
// subject and is unique: one account, one profile.
type ProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SubjectID string    `gorm:"type:varchar(128);unique;not null"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(32);not null"`
	Bio       string    `gorm:"type:text"`
	PetName   string    `gorm:"type:varchar(100)"`
	PetType   string    `gorm:"type:varchar(50)"`
	PetAge    int
	Role      string `gorm:"type:varchar(16);not null;default:'user'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	LineItems []LineItemModel `gorm:"foreignKey:ProfileID"`
	Orders    []OrderModel    `gorm:"foreignKey:ProfileID"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// LineItemModel mirrors the 'line_items' table holding cart and wishlist
// entries. The composite unique index guarantees at most one row per target
// per collection, and Position preserves insertion order.
type LineItemModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProfileID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_line_items_entry;index"`
	Collection string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_line_items_entry"`
	TargetKind string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_line_items_entry"`
	TargetID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_line_items_entry"`
	Quantity   int       `gorm:"not null;check:quantity > 0"`
	Position   int       `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (LineItemModel) TableName() string {
	return "line_items"
}
