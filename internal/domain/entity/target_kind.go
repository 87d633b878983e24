// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "github.com/google/uuid"

// TargetKind represents the kind of catalog record a line item points at.
type TargetKind string

const (
	// TargetKindProduct indicates the target is a product record.
	TargetKindProduct TargetKind = "product"
	// TargetKindPet indicates the target is a pet record.
	TargetKindPet TargetKind = "pet"
)

// String returns the string representation of the TargetKind.
func (k TargetKind) String() string {
	return string(k)
}

// IsValid checks if the TargetKind is a valid value.
func (k TargetKind) IsValid() bool {
	switch k {
	case TargetKindProduct, TargetKindPet:
		return true
	default:
		return false
	}
}

// TargetRef identifies one catalog record by kind and id. It is the key a
// line item is stored under; two refs are equal iff both fields are equal.
type TargetRef struct {
	Kind TargetKind
	ID   uuid.UUID
}

// Equal reports whether two refs point at the same catalog record.
func (r TargetRef) Equal(other TargetRef) bool {
	return r.Kind == other.Kind && r.ID == other.ID
}
