// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Pet is a live animal listed for sale in the catalog.
type Pet struct {
	ID              uuid.UUID
	Breed           string
	Category        string
	Description     string
	Image           string   // Primary media reference; always a durable storage URL.
	Images          []string
	Videos          []string
	Color           string
	BodyType        string
	Height          string
	Weight          string
	DistinctFeature string
	Vaccinations    string
	Temperament     string
	Food            string
	FunFact         string
	Toys            string
	Gender          string
	Price           float64
	OriginalPrice   float64
	Discount        float64
	Offers          string
	Sizes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Ref returns the target reference line items use to point at this pet.
func (p *Pet) Ref() TargetRef {
	return TargetRef{Kind: TargetKindPet, ID: p.ID}
}
