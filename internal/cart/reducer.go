package cart

// Item is one line of the local cart, keyed by the menu item id.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// State is the local cart. Items keep insertion order for stable display;
// order carries no other meaning. At most one item per id, quantity >= 1.
type State struct {
	Items []Item `json:"items"`
}

// Action is a cart state transition. The five concrete actions below are the
// only way State changes.
type Action interface {
	isAction()
}

type AddItem struct {
	Item Item
}

type RemoveItem struct {
	ID string
}

type UpdateItem struct {
	ID       string
	Quantity int
}

type SetCart struct {
	Items []Item
}

type ClearCart struct{}

func (AddItem) isAction()    {}
func (RemoveItem) isAction() {}
func (UpdateItem) isAction() {}
func (SetCart) isAction()    {}
func (ClearCart) isAction()  {}

// Apply is the cart reducer: a total, side-effect-free transition returning a
// fresh state. The input state is never mutated.
func Apply(state State, action Action) State {
	switch a := action.(type) {
	case AddItem:
		return applyAdd(state, a.Item)
	case RemoveItem:
		return applyRemove(state, a.ID)
	case UpdateItem:
		if a.Quantity <= 0 {
			return applyRemove(state, a.ID)
		}
		return applyUpdate(state, a.ID, a.Quantity)
	case SetCart:
		items := make([]Item, len(a.Items))
		copy(items, a.Items)
		return State{Items: items}
	case ClearCart:
		return State{}
	default:
		return state
	}
}

// applyAdd merges by id: an existing entry gains one unit, a new entry is
// appended with quantity 1 regardless of the quantity on the incoming item.
func applyAdd(state State, item Item) State {
	items := make([]Item, len(state.Items))
	copy(items, state.Items)

	for i := range items {
		if items[i].ID == item.ID {
			items[i].Quantity++
			return State{Items: items}
		}
	}

	item.Quantity = 1
	return State{Items: append(items, item)}
}

// applyRemove deletes the entry if present; removing an absent id is a no-op.
func applyRemove(state State, id string) State {
	items := make([]Item, 0, len(state.Items))
	for _, item := range state.Items {
		if item.ID != id {
			items = append(items, item)
		}
	}
	return State{Items: items}
}

// applyUpdate sets the quantity to exactly the given value; absent ids are a
// no-op. Callers have already routed quantity <= 0 to applyRemove.
func applyUpdate(state State, id string, quantity int) State {
	items := make([]Item, len(state.Items))
	copy(items, state.Items)

	for i := range items {
		if items[i].ID == id {
			items[i].Quantity = quantity
			break
		}
	}
	return State{Items: items}
}
