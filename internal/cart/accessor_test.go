package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessors_EmptyCart(t *testing.T) {
	assert.Equal(t, 0, Count(State{}))
	assert.Equal(t, 0.0, Subtotal(State{}))
}

func TestAccessors_DerivedTotals(t *testing.T) {
	state := State{Items: []Item{
		{ID: "A", Price: 10, Quantity: 2},
		{ID: "B", Price: 5, Quantity: 1},
	}}

	assert.Equal(t, 3, Count(state))
	assert.Equal(t, 25.0, Subtotal(state))
}

func TestAccessors_RecomputedAfterEveryTransition(t *testing.T) {
	state := Apply(State{}, AddItem{Item: Item{ID: "m1", Price: 20}})
	assert.Equal(t, 1, Count(state))
	assert.Equal(t, 20.0, Subtotal(state))

	state = Apply(state, AddItem{Item: Item{ID: "m1", Price: 20}})
	assert.Equal(t, 2, Count(state))
	assert.Equal(t, 40.0, Subtotal(state))

	state = Apply(state, UpdateItem{ID: "m1", Quantity: 1})
	assert.Equal(t, 20.0, Subtotal(state))

	state = Apply(state, RemoveItem{ID: "m1"})
	assert.Equal(t, 0, Count(state))
	assert.Equal(t, 0.0, Subtotal(state))
}
