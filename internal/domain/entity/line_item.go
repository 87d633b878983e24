// Package entity contains the core business objects of the project.
package entity

// LineItem is one (target, quantity) pair inside a cart or wishlist.
// A line item never exists with a quantity below one; reaching zero removes
// the entry from its collection entirely.
type LineItem struct {
	Target   TargetRef // The catalog record this entry points at.
	Quantity int       // Always >= 1 while the entry is present.
}
