// Package entity contains the core business objects of the project.
package entity

// CollectionKind distinguishes the two line-item collections a profile owns.
type CollectionKind string

const (
	// CollectionKindCart indicates the profile's shopping cart.
	CollectionKindCart CollectionKind = "cart"
	// CollectionKindWishlist indicates the profile's wishlist.
	CollectionKindWishlist CollectionKind = "wishlist"
)

// String returns the string representation of the CollectionKind.
func (k CollectionKind) String() string {
	return string(k)
}

// IsValid checks if the CollectionKind is a valid value.
func (k CollectionKind) IsValid() bool {
	switch k {
	case CollectionKindCart, CollectionKindWishlist:
		return true
	default:
		return false
	}
}
