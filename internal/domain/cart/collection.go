// Package cart implements the state-transition rules for the line-item
// collections a profile owns (cart and wishlist). All operations are pure:
// they never modify the receiver and return a fresh collection, leaving the
// persistence layer free to decide how a transition is made durable.
package cart

import (
	"errors"

	"pawmart/internal/domain/entity"
)

// ErrItemNotInCollection is returned when an operation targets an entry that
// is not present in the collection.
var ErrItemNotInCollection = errors.New("item not in collection")

// ErrInvalidDelta is returned when a quantity adjustment is not a unit step.
var ErrInvalidDelta = errors.New("quantity delta must be +1 or -1")

// ErrInvalidQuantity is returned when an add requests a quantity below one.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Collection is an insertion-ordered sequence of line items holding at most
// one entry per target. An entry's quantity is always >= 1; a transition that
// would leave a quantity at or below zero removes the entry instead.
type Collection []entity.LineItem

// Clone returns an independent copy of the collection.
func (c Collection) Clone() Collection {
	if c == nil {
		return nil
	}
	cloned := make(Collection, len(c))
	copy(cloned, c)

	return cloned
}

// indexOf returns the position of the entry for the given target, or -1.
func (c Collection) indexOf(target entity.TargetRef) int {
	for i, item := range c {
		if item.Target.Equal(target) {
			return i
		}
	}

	return -1
}

// Contains reports whether an entry exists for the given target.
func (c Collection) Contains(target entity.TargetRef) bool {
	return c.indexOf(target) >= 0
}

// Quantity returns the quantity of the entry for the given target, or zero
// when the target is absent.
func (c Collection) Quantity(target entity.TargetRef) int {
	if i := c.indexOf(target); i >= 0 {
		return c[i].Quantity
	}

	return 0
}

// Add merges the requested quantity into the existing entry for the target,
// or appends a new entry at the end when none exists. The requested quantity
// must be at least one.
func (c Collection) Add(target entity.TargetRef, quantity int) (Collection, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	next := c.Clone()
	if i := next.indexOf(target); i >= 0 {
		next[i].Quantity += quantity

		return next, nil
	}

	return append(next, entity.LineItem{Target: target, Quantity: quantity}), nil
}

// AdjustQuantity applies a unit step to the entry for the target. Reaching a
// quantity of zero removes the entry; all other entries are retained. A +1
// step on an absent target is an implicit add of quantity one, while a -1
// step on an absent target fails with ErrItemNotInCollection.
func (c Collection) AdjustQuantity(target entity.TargetRef, delta int) (Collection, error) {
	if delta != 1 && delta != -1 {
		return nil, ErrInvalidDelta
	}

	i := c.indexOf(target)
	if i < 0 {
		if delta < 0 {
			return nil, ErrItemNotInCollection
		}

		return append(c.Clone(), entity.LineItem{Target: target, Quantity: 1}), nil
	}

	next := c.Clone()
	next[i].Quantity += delta
	if next[i].Quantity <= 0 {
		return append(next[:i], next[i+1:]...), nil
	}

	return next, nil
}

// Remove deletes the entry for the target, failing with
// ErrItemNotInCollection when no such entry exists. Remove on an absent
// target is an error condition, not a silent no-op.
func (c Collection) Remove(target entity.TargetRef) (Collection, error) {
	i := c.indexOf(target)
	if i < 0 {
		return nil, ErrItemNotInCollection
	}

	next := c.Clone()

	return append(next[:i], next[i+1:]...), nil
}

// MaterializedItem is one collection entry resolved to its current catalog
// record for display.
type MaterializedItem struct {
	Item     *entity.CatalogItem
	Quantity int
}

// Lookup resolves a target reference to its current catalog record. The
// second return value is false when the record no longer exists.
type Lookup func(entity.TargetRef) (*entity.CatalogItem, bool)

// Materialize resolves every entry through the lookup and returns the view a
// caller can display. Entries whose target no longer resolves are excluded
// from the view but stay in the collection: a read must not prune dangling
// references, they self-heal on the next explicit mutation.
func (c Collection) Materialize(lookup Lookup) []MaterializedItem {
	view := make([]MaterializedItem, 0, len(c))
	for _, item := range c {
		resolved, ok := lookup(item.Target)
		if !ok {
			continue
		}
		view = append(view, MaterializedItem{Item: resolved, Quantity: item.Quantity})
	}

	return view
}
