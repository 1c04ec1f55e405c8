package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_AddItemMergesById(t *testing.T) {
	state := State{}
	item := Item{ID: "m1", Name: "Shawarma", Price: 20}

	state = Apply(state, AddItem{Item: item})
	state = Apply(state, AddItem{Item: item})
	state = Apply(state, AddItem{Item: item})

	require.Len(t, state.Items, 1)
	assert.Equal(t, "m1", state.Items[0].ID)
	assert.Equal(t, 3, state.Items[0].Quantity)
}

func TestApply_AddItemAppendsWithQuantityOne(t *testing.T) {
	// The incoming item's quantity is ignored; a fresh entry always starts at 1.
	state := Apply(State{}, AddItem{Item: Item{ID: "m1", Price: 20, Quantity: 7}})

	require.Len(t, state.Items, 1)
	assert.Equal(t, 1, state.Items[0].Quantity)
}

func TestApply_AddItemUniquenessOverSequence(t *testing.T) {
	state := State{}
	for _, id := range []string{"a", "b", "a", "c", "b", "a"} {
		state = Apply(state, AddItem{Item: Item{ID: id, Price: 5}})
	}

	require.Len(t, state.Items, 3)
	byID := map[string]int{}
	for _, item := range state.Items {
		byID[item.ID] = item.Quantity
	}
	assert.Equal(t, map[string]int{"a": 3, "b": 2, "c": 1}, byID)
}

func TestApply_RemoveAbsentIsNoop(t *testing.T) {
	state := Apply(State{}, AddItem{Item: Item{ID: "m1", Price: 20}})

	next := Apply(state, RemoveItem{ID: "missing"})

	assert.Equal(t, state, next)
}

func TestApply_RemoveDeletesEntry(t *testing.T) {
	state := Apply(State{}, AddItem{Item: Item{ID: "m1", Price: 20}})
	state = Apply(state, AddItem{Item: Item{ID: "m2", Price: 5}})

	state = Apply(state, RemoveItem{ID: "m1"})

	require.Len(t, state.Items, 1)
	assert.Equal(t, "m2", state.Items[0].ID)
}

func TestApply_UpdateItemBoundary(t *testing.T) {
	base := Apply(State{}, AddItem{Item: Item{ID: "m1", Price: 20}})

	t.Run("zero removes", func(t *testing.T) {
		state := Apply(base, UpdateItem{ID: "m1", Quantity: 0})
		assert.Empty(t, state.Items)
	})

	t.Run("negative removes", func(t *testing.T) {
		state := Apply(base, UpdateItem{ID: "m1", Quantity: -5})
		assert.Empty(t, state.Items)
	})

	t.Run("positive sets absolutely", func(t *testing.T) {
		state := Apply(base, UpdateItem{ID: "m1", Quantity: 3})
		require.Len(t, state.Items, 1)
		assert.Equal(t, 3, state.Items[0].Quantity)
	})
}

func TestApply_UpdateAbsentIsNoop(t *testing.T) {
	state := Apply(State{}, AddItem{Item: Item{ID: "m1", Price: 20}})

	next := Apply(state, UpdateItem{ID: "missing", Quantity: 3})

	assert.Equal(t, state, next)
}

func TestApply_SetCartReplacesWholesale(t *testing.T) {
	state := Apply(State{}, AddItem{Item: Item{ID: "old", Price: 1}})

	state = Apply(state, SetCart{Items: []Item{
		{ID: "m1", Price: 20, Quantity: 2},
		{ID: "m2", Price: 5, Quantity: 1},
	}})

	require.Len(t, state.Items, 2)
	assert.Equal(t, "m1", state.Items[0].ID)
	assert.Equal(t, 2, state.Items[0].Quantity)
}

func TestApply_ClearCart(t *testing.T) {
	state := Apply(State{}, AddItem{Item: Item{ID: "m1", Price: 20}})

	state = Apply(state, ClearCart{})

	assert.Empty(t, state.Items)
}

func TestApply_NeverMutatesInput(t *testing.T) {
	original := State{Items: []Item{{ID: "m1", Price: 20, Quantity: 2}}}
	snapshot := State{Items: []Item{{ID: "m1", Price: 20, Quantity: 2}}}

	Apply(original, AddItem{Item: Item{ID: "m1"}})
	Apply(original, AddItem{Item: Item{ID: "m2"}})
	Apply(original, RemoveItem{ID: "m1"})
	Apply(original, UpdateItem{ID: "m1", Quantity: 9})
	Apply(original, SetCart{Items: nil})
	Apply(original, ClearCart{})

	assert.Equal(t, snapshot, original)
}

func TestApply_InsertionOrderPreserved(t *testing.T) {
	state := State{}
	for _, id := range []string{"c", "a", "b"} {
		state = Apply(state, AddItem{Item: Item{ID: id}})
	}
	state = Apply(state, AddItem{Item: Item{ID: "a"}})

	ids := make([]string, 0, len(state.Items))
	for _, item := range state.Items {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}
