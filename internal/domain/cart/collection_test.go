package cart

import (
	"testing"

	"pawmart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productRef() entity.TargetRef {
	return entity.TargetRef{Kind: entity.TargetKindProduct, ID: uuid.New()}
}

func petRef() entity.TargetRef {
	return entity.TargetRef{Kind: entity.TargetKindPet, ID: uuid.New()}
}

func TestCollection_Add_AppendsNewEntry(t *testing.T) {
	ref := productRef()

	next, err := Collection{}.Add(ref, 1)
	require.NoError(t, err)

	require.Len(t, next, 1)
	assert.Equal(t, ref, next[0].Target)
	assert.Equal(t, 1, next[0].Quantity)
}

func TestCollection_Add_MergesExistingEntry(t *testing.T) {
	ref := productRef()

	c, err := Collection{}.Add(ref, 1)
	require.NoError(t, err)

	c, err = c.Add(ref, 2)
	require.NoError(t, err)

	require.Len(t, c, 1, "merging must never produce a duplicate entry")
	assert.Equal(t, 3, c[0].Quantity)
}

func TestCollection_Add_SameIDDifferentKindAreDistinct(t *testing.T) {
	id := uuid.New()
	product := entity.TargetRef{Kind: entity.TargetKindProduct, ID: id}
	pet := entity.TargetRef{Kind: entity.TargetKindPet, ID: id}

	c, err := Collection{}.Add(product, 1)
	require.NoError(t, err)
	c, err = c.Add(pet, 1)
	require.NoError(t, err)

	require.Len(t, c, 2)
	assert.Equal(t, 1, c.Quantity(product))
	assert.Equal(t, 1, c.Quantity(pet))
}

func TestCollection_Add_RejectsNonPositiveQuantity(t *testing.T) {
	ref := productRef()

	for _, qty := range []int{0, -1, -5} {
		_, err := Collection{}.Add(ref, qty)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	}
}

func TestCollection_Add_PreservesInsertionOrder(t *testing.T) {
	first, second, third := productRef(), petRef(), productRef()

	c := Collection{}
	var err error
	for _, ref := range []entity.TargetRef{first, second, third} {
		c, err = c.Add(ref, 1)
		require.NoError(t, err)
	}

	// Merging into the first entry must not move it.
	c, err = c.Add(first, 4)
	require.NoError(t, err)

	require.Len(t, c, 3)
	assert.Equal(t, first, c[0].Target)
	assert.Equal(t, 5, c[0].Quantity)
	assert.Equal(t, second, c[1].Target)
	assert.Equal(t, third, c[2].Target)
}

func TestCollection_Add_DoesNotMutateReceiver(t *testing.T) {
	ref := productRef()
	original, err := Collection{}.Add(ref, 1)
	require.NoError(t, err)

	_, err = original.Add(ref, 5)
	require.NoError(t, err)

	assert.Equal(t, 1, original.Quantity(ref))
}

func TestCollection_AdjustQuantity_IncrementAndDecrement(t *testing.T) {
	ref := productRef()

	c, err := Collection{}.Add(ref, 2)
	require.NoError(t, err)

	c, err = c.AdjustQuantity(ref, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Quantity(ref))

	c, err = c.AdjustQuantity(ref, -1)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Quantity(ref))
}

func TestCollection_AdjustQuantity_EvictsAtZero(t *testing.T) {
	evicted, survivor := productRef(), petRef()

	c, err := Collection{}.Add(evicted, 1)
	require.NoError(t, err)
	c, err = c.Add(survivor, 2)
	require.NoError(t, err)

	c, err = c.AdjustQuantity(evicted, -1)
	require.NoError(t, err)

	// Only the zero-quantity entry goes away; every other entry survives.
	assert.False(t, c.Contains(evicted))
	require.Len(t, c, 1)
	assert.Equal(t, 2, c.Quantity(survivor))
}

func TestCollection_AdjustQuantity_NeverStoresZero(t *testing.T) {
	ref := productRef()

	c, err := Collection{}.Add(ref, 1)
	require.NoError(t, err)

	c, err = c.AdjustQuantity(ref, -1)
	require.NoError(t, err)

	for _, item := range c {
		assert.GreaterOrEqual(t, item.Quantity, 1)
	}
}

func TestCollection_AdjustQuantity_ImplicitAddOnAbsentPlusOne(t *testing.T) {
	ref := productRef()

	c, err := Collection{}.AdjustQuantity(ref, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, c.Quantity(ref))
}

func TestCollection_AdjustQuantity_AbsentMinusOneFails(t *testing.T) {
	_, err := Collection{}.AdjustQuantity(productRef(), -1)
	assert.ErrorIs(t, err, ErrItemNotInCollection)
}

func TestCollection_AdjustQuantity_RejectsNonUnitDelta(t *testing.T) {
	ref := productRef()
	c, err := Collection{}.Add(ref, 5)
	require.NoError(t, err)

	for _, delta := range []int{0, 2, -2, 10} {
		_, err := c.AdjustQuantity(ref, delta)
		assert.ErrorIs(t, err, ErrInvalidDelta)
	}
}

func TestCollection_Remove_DeletesEntry(t *testing.T) {
	first, second := productRef(), petRef()

	c, err := Collection{}.Add(first, 1)
	require.NoError(t, err)
	c, err = c.Add(second, 1)
	require.NoError(t, err)

	c, err = c.Remove(first)
	require.NoError(t, err)

	assert.False(t, c.Contains(first))
	assert.True(t, c.Contains(second))
}

func TestCollection_Remove_TwiceFailsOnSecondCall(t *testing.T) {
	ref := productRef()

	c, err := Collection{}.Add(ref, 1)
	require.NoError(t, err)

	c, err = c.Remove(ref)
	require.NoError(t, err)

	_, err = c.Remove(ref)
	assert.ErrorIs(t, err, ErrItemNotInCollection)
}

func TestCollection_Materialize_SkipsDanglingWithoutPruning(t *testing.T) {
	live, dangling := productRef(), petRef()

	c, err := Collection{}.Add(live, 2)
	require.NoError(t, err)
	c, err = c.Add(dangling, 1)
	require.NoError(t, err)

	liveItem := entity.FromProduct(&entity.Product{ID: live.ID, Name: "chew toy", Price: 9.5})
	lookup := func(ref entity.TargetRef) (*entity.CatalogItem, bool) {
		if ref.Equal(live) {
			return liveItem, true
		}

		return nil, false
	}

	view := c.Materialize(lookup)
	require.Len(t, view, 1)
	assert.Equal(t, liveItem, view[0].Item)
	assert.Equal(t, 2, view[0].Quantity)

	// The persisted collection keeps the dangling entry until an explicit
	// mutation removes it.
	require.Len(t, c, 2)
	assert.True(t, c.Contains(dangling))

	// Materializing repeatedly changes nothing.
	again := c.Materialize(lookup)
	assert.Equal(t, view, again)
	require.Len(t, c, 2)
}

func TestCollection_ScenarioAddMergeThenDrainToEmpty(t *testing.T) {
	p1 := productRef()

	c, err := Collection{}.Add(p1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Quantity(p1))

	c, err = c.Add(p1, 2)
	require.NoError(t, err)
	require.Len(t, c, 1)
	assert.Equal(t, 3, c.Quantity(p1))

	c, err = c.AdjustQuantity(p1, -1)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Quantity(p1))

	c, err = c.AdjustQuantity(p1, -1)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Quantity(p1))

	c, err = c.AdjustQuantity(p1, -1)
	require.NoError(t, err)
	assert.Empty(t, c)

	_, err = c.AdjustQuantity(p1, -1)
	assert.ErrorIs(t, err, ErrItemNotInCollection)
}
