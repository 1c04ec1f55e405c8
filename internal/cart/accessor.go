package cart

// Count is the total number of units in the cart, 0 for an empty cart.
func Count(state State) int {
	total := 0
	for _, item := range state.Items {
		total += item.Quantity
	}
	return total
}

// Subtotal is the sum of price times quantity over all items. Fees are not
// included here; they come from the server snapshot.
func Subtotal(state State) float64 {
	var total float64
	for _, item := range state.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
