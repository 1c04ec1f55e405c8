package services

import (
	"context"

	"golang-food-storefront/internal/models"
	"golang-food-storefront/pkg/gateway"
)

type OrderService struct {
	client *gateway.Client
}

func NewOrderService(client *gateway.Client) *OrderService {
	return &OrderService{client: client}
}

func (s *OrderService) List(ctx context.Context, ts gateway.TokenSource) ([]models.Order, error) {
	var orders []models.Order
	if err := s.client.Get(ctx, "/api/orders", ts, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (s *OrderService) UpdateStatus(ctx context.Context, ts gateway.TokenSource, orderID, status string) (*models.Order, error) {
	var order models.Order
	err := s.client.Put(ctx, "/api/orders/"+orderID+"/status", ts, UpdateStatusRequest{Status: status}, &order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// OrderSummary is the checkout review screen: server cart truth plus the
// total derived from it. Fees come from the snapshot, never recomputed.
type OrderSummary struct {
	Items       []models.CartEntry `json:"items"`
	Subtotal    float64            `json:"subtotal"`
	DeliveryFee float64            `json:"deliveryFee"`
	ServiceFee  float64            `json:"serviceFee"`
	Total       float64            `json:"total"`
}

// Summary re-reads the server cart so the order review never shows locally
// derived fees or stale items.
func (s *OrderService) Summary(ctx context.Context, ts gateway.TokenSource) (*OrderSummary, error) {
	var snapshot models.CartSnapshot
	if err := s.client.Get(ctx, "/api/cart", ts, &snapshot); err != nil {
		return nil, err
	}
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}

	var subtotal float64
	for _, entry := range snapshot.Items {
		subtotal += entry.MenuItem.Price * float64(entry.Quantity)
	}

	return &OrderSummary{
		Items:       snapshot.Items,
		Subtotal:    subtotal,
		DeliveryFee: snapshot.DeliveryFee,
		ServiceFee:  snapshot.ServiceFee,
		Total:       subtotal + snapshot.DeliveryFee + snapshot.ServiceFee,
	}, nil
}
