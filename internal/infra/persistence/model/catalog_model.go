package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. Media references are stored as
// JSONB arrays of durable storage URLs.
type ProductModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Category        string    `gorm:"type:varchar(100);index"`
	Description     string    `gorm:"type:text"`
	Image           string    `gorm:"type:text;not null"`
	Images          []string  `gorm:"serializer:json;type:jsonb"`
	Videos          []string  `gorm:"serializer:json;type:jsonb"`
	ShippingCharges float64
	Height          float64
	Weight          float64
	Feature         string `gorm:"type:text"`
	Benefits        string `gorm:"type:text"`
	Price           float64 `gorm:"not null"`
	OriginalPrice   float64
	Discount        float64
	Offers          string `gorm:"type:text"`
	Sizes           string `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// PetModel mirrors the 'pets' table.
type PetModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Breed           string    `gorm:"type:varchar(255);not null"`
	Category        string    `gorm:"type:varchar(100);index"`
	Description     string    `gorm:"type:text"`
	Image           string    `gorm:"type:text;not null"`
	Images          []string  `gorm:"serializer:json;type:jsonb"`
	Videos          []string  `gorm:"serializer:json;type:jsonb"`
	Color           string    `gorm:"type:varchar(100)"`
	BodyType        string    `gorm:"type:varchar(100)"`
	Height          string    `gorm:"type:varchar(50)"`
	Weight          string    `gorm:"type:varchar(50)"`
	DistinctFeature string    `gorm:"type:text"`
	Vaccinations    string    `gorm:"type:text"`
	Temperament     string    `gorm:"type:text"`
	Food            string    `gorm:"type:text"`
	FunFact         string    `gorm:"type:text"`
	Toys            string    `gorm:"type:text"`
	Gender          string    `gorm:"type:varchar(16)"`
	Price           float64   `gorm:"not null"`
	OriginalPrice   float64
	Discount        float64
	Offers          string `gorm:"type:text"`
	Sizes           string `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (PetModel) TableName() string {
	return "pets"
}

// TestimonialModel mirrors the 'testimonials' table.
type TestimonialModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Content   string    `gorm:"type:varchar(500);not null"`
	Image     string    `gorm:"type:text"`
	Author    string    `gorm:"type:varchar(100)"`
	Rating    string    `gorm:"type:varchar(10)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TestimonialModel) TableName() string {
	return "testimonials"
}
