// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a sellable good in the catalog. Identity is immutable; every
// descriptive and pricing field may change over the record's lifetime.
type Product struct {
	ID              uuid.UUID
	Name            string
	Category        string
	Description     string
	Image           string   // Primary media reference; always a durable storage URL.
	Images          []string // Additional gallery images.
	Videos          []string
	ShippingCharges float64
	Height          float64
	Weight          float64
	Feature         string
	Benefits        string
	Price           float64
	OriginalPrice   float64
	Discount        float64
	Offers          string
	Sizes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Ref returns the target reference line items use to point at this product.
func (p *Product) Ref() TargetRef {
	return TargetRef{Kind: TargetKindProduct, ID: p.ID}
}
