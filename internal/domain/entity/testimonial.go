// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Testimonial is a customer review shown on the storefront.
type Testimonial struct {
	ID        uuid.UUID
	Name      string
	Content   string // Between 10 and 500 characters.
	Image     string // Durable storage URL of the reviewer's picture.
	Author    string
	Rating    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
