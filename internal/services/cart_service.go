package services

import (
	"context"

	"golang-food-storefront/internal/cart"
	"golang-food-storefront/internal/models"
	"golang-food-storefront/pkg/gateway"
)

// The upstream cart paths are a compatibility contract with the platform; do
// not normalize them (clear-cart keeps its trailing slash).
const (
	cartPath         = "/api/cart"
	cartAddPath      = "/api/cart/add-to-cart"
	cartRemovePath   = "/api/cart/remove"
	cartUpdatePath   = "/api/cart/update-cart"
	cartClearPath    = "/api/cart/clear-cart/"
	cartCheckoutPath = "/api/cart/checkout"
)

// RemoteCart adapts the platform cart endpoints to the cart.RemoteCart port.
// One instance is bound to one session's token source.
type RemoteCart struct {
	client *gateway.Client
	ts     gateway.TokenSource
}

func NewRemoteCart(client *gateway.Client, ts gateway.TokenSource) *RemoteCart {
	return &RemoteCart{client: client, ts: ts}
}

type cartMutationRequest struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity,omitempty"`
}

func (r *RemoteCart) Fetch(ctx context.Context) (models.CartSnapshot, error) {
	var snapshot models.CartSnapshot
	if err := r.client.Get(ctx, cartPath, r.ts, &snapshot); err != nil {
		return models.CartSnapshot{}, err
	}
	return snapshot, nil
}

func (r *RemoteCart) Add(ctx context.Context, menuItemID string, quantity int) error {
	return r.client.Post(ctx, cartAddPath, r.ts, cartMutationRequest{
		MenuItemID: menuItemID,
		Quantity:   quantity,
	}, nil)
}

func (r *RemoteCart) Remove(ctx context.Context, menuItemID string) error {
	return r.client.Post(ctx, cartRemovePath, r.ts, cartMutationRequest{
		MenuItemID: menuItemID,
	}, nil)
}

func (r *RemoteCart) Update(ctx context.Context, menuItemID string, quantity int) error {
	// Quantity must always be on the wire here; zero tells the platform to
	// remove the line, so omitempty would change meaning.
	return r.client.Post(ctx, cartUpdatePath, r.ts, struct {
		MenuItemID string `json:"menuItemId"`
		Quantity   int    `json:"quantity"`
	}{menuItemID, quantity}, nil)
}

func (r *RemoteCart) Clear(ctx context.Context) error {
	return r.client.Delete(ctx, cartClearPath, r.ts, nil)
}

func (r *RemoteCart) Checkout(ctx context.Context, items []cart.Item) (models.Order, error) {
	var order models.Order
	err := r.client.Post(ctx, cartCheckoutPath, r.ts, struct {
		Items []cart.Item `json:"items"`
	}{items}, &order)
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}
