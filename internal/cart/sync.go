package cart

import (
	"context"
	"sync"

	"golang-food-storefront/internal/models"
)

// RemoteCart is the upstream cart service. Implementations live in
// internal/services; tests supply fakes.
type RemoteCart interface {
	Fetch(ctx context.Context) (models.CartSnapshot, error)
	Add(ctx context.Context, menuItemID string, quantity int) error
	Remove(ctx context.Context, menuItemID string) error
	Update(ctx context.Context, menuItemID string, quantity int) error
	Clear(ctx context.Context) error
	Checkout(ctx context.Context, items []Item) (models.Order, error)
}

// Fees are the server-reported charges from the last snapshot. The server is
// authoritative for these; the storefront never recomputes them.
type Fees struct {
	Delivery float64 `json:"deliveryFee"`
	Service  float64 `json:"serviceFee"`
}

// Session synchronizes one local cart with the remote cart service. Every
// mutation is remote-first: the upstream call must succeed before the local
// reducer action is dispatched, so local state never runs ahead of the last
// known successful server state. A single mutex serializes mutations per cart,
// so rapid duplicate dispatch cannot apply out of order.
type Session struct {
	mu     sync.Mutex
	remote RemoteCart
	state  State
	fees   Fees
}

func NewSession(remote RemoteCart) *Session {
	return &Session{remote: remote}
}

// Hydrate reads server cart truth once and replaces local state with it. An
// empty or absent server cart hydrates to an empty sequence.
func (s *Session) Hydrate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, err := s.remote.Fetch(ctx)
	if err != nil {
		return err
	}
	if err := snapshot.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	items := make([]Item, 0, len(snapshot.Items))
	for _, entry := range snapshot.Items {
		items = append(items, Item{
			ID:       entry.MenuItem.ID,
			Name:     entry.MenuItem.Name,
			Price:    entry.MenuItem.Price,
			Quantity: entry.Quantity,
		})
	}

	s.state = Apply(s.state, SetCart{Items: items})
	s.fees = Fees{Delivery: snapshot.DeliveryFee, Service: snapshot.ServiceFee}
	return nil
}

// Add asks the server to add one unit of the item, then mirrors it locally.
// On failure local state is untouched and the error is returned to the caller.
func (s *Session) Add(ctx context.Context, item Item) error {
	return s.mutate(ctx, AddItem{Item: item}, func(ctx context.Context) error {
		return s.remote.Add(ctx, item.ID, 1)
	})
}

func (s *Session) Remove(ctx context.Context, id string) error {
	return s.mutate(ctx, RemoveItem{ID: id}, func(ctx context.Context) error {
		return s.remote.Remove(ctx, id)
	})
}

func (s *Session) Update(ctx context.Context, id string, quantity int) error {
	return s.mutate(ctx, UpdateItem{ID: id, Quantity: quantity}, func(ctx context.Context) error {
		return s.remote.Update(ctx, id, quantity)
	})
}

func (s *Session) Clear(ctx context.Context) error {
	return s.mutate(ctx, ClearCart{}, func(ctx context.Context) error {
		return s.remote.Clear(ctx)
	})
}

// Checkout places an order from the current items and clears the local cart
// once the server confirms.
func (s *Session) Checkout(ctx context.Context) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.remote.Checkout(ctx, copyItems(s.state.Items))
	if err != nil {
		return models.Order{}, err
	}
	if err := ctx.Err(); err != nil {
		return models.Order{}, err
	}

	s.state = Apply(s.state, ClearCart{})
	return order, nil
}

// mutate runs one remote-first transition under the cart lock. A result that
// arrives after the caller's context is torn down is discarded: the remote
// change may have landed, but this component no longer applies it locally.
func (s *Session) mutate(ctx context.Context, action Action, remote func(context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := remote(ctx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.state = Apply(s.state, action)
	return nil
}

// State returns a copy of the current cart state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{Items: copyItems(s.state.Items)}
}

func (s *Session) Fees() Fees {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fees
}

func (s *Session) Count() int {
	return Count(s.State())
}

func (s *Session) Subtotal() float64 {
	return Subtotal(s.State())
}

// Drop empties local state without a remote call. Used at logout, where the
// session itself is being destroyed.
func (s *Session) Drop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Apply(s.state, ClearCart{})
	s.fees = Fees{}
}

func copyItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
