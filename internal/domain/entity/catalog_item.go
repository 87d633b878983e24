// Package entity contains the core business objects of the project.
package entity

// CatalogItem is the kind-neutral view of one sellable record, used when a
// cart or wishlist is materialized for display. Exactly one of Product / Pet
// is set, matching Ref.Kind.
type CatalogItem struct {
	Ref     TargetRef
	Product *Product // Set when Ref.Kind is TargetKindProduct.
	Pet     *Pet     // Set when Ref.Kind is TargetKindPet.
}

// FromProduct wraps a product record as a catalog item.
func FromProduct(p *Product) *CatalogItem {
	return &CatalogItem{Ref: p.Ref(), Product: p}
}

// FromPet wraps a pet record as a catalog item.
func FromPet(p *Pet) *CatalogItem {
	return &CatalogItem{Ref: p.Ref(), Pet: p}
}

// Price returns the current price of the underlying record.
func (c *CatalogItem) Price() float64 {
	switch {
	case c.Product != nil:
		return c.Product.Price
	case c.Pet != nil:
		return c.Pet.Price
	default:
		return 0
	}
}

// DisplayName returns the human-readable name of the underlying record.
func (c *CatalogItem) DisplayName() string {
	switch {
	case c.Product != nil:
		return c.Product.Name
	case c.Pet != nil:
		return c.Pet.Breed
	default:
		return ""
	}
}
