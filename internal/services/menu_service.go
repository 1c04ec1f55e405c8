package services

import (
	"context"
	"io"

	"golang-food-storefront/internal/models"
	"golang-food-storefront/pkg/gateway"
)

type MenuService struct {
	client *gateway.Client
}

func NewMenuService(client *gateway.Client) *MenuService {
	return &MenuService{client: client}
}

func (s *MenuService) ListByRestaurant(ctx context.Context, ts gateway.TokenSource, restaurantID string) ([]models.MenuItem, error) {
	var menus []models.MenuItem
	if err := s.client.Get(ctx, "/api/menus/restaurant/"+restaurantID, ts, &menus); err != nil {
		return nil, err
	}
	return menus, nil
}

func (s *MenuService) Create(ctx context.Context, ts gateway.TokenSource, contentType string, body io.Reader) (*models.MenuItem, error) {
	var menu models.MenuItem
	if err := s.client.Forward(ctx, "POST", "/api/menus/add", ts, contentType, body, &menu); err != nil {
		return nil, err
	}
	return &menu, nil
}

func (s *MenuService) Update(ctx context.Context, ts gateway.TokenSource, id, contentType string, body io.Reader) (*models.MenuItem, error) {
	var menu models.MenuItem
	if err := s.client.Forward(ctx, "PUT", "/api/menus/"+id, ts, contentType, body, &menu); err != nil {
		return nil, err
	}
	return &menu, nil
}

func (s *MenuService) Delete(ctx context.Context, ts gateway.TokenSource, id string) error {
	return s.client.Delete(ctx, "/api/menus/"+id, ts, nil)
}
