package services

import (
	"context"
	"io"

	"golang-food-storefront/internal/models"
	"golang-food-storefront/pkg/gateway"
)

type RestaurantService struct {
	client *gateway.Client
}

func NewRestaurantService(client *gateway.Client) *RestaurantService {
	return &RestaurantService{client: client}
}

func (s *RestaurantService) List(ctx context.Context, ts gateway.TokenSource) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.client.Get(ctx, "/api/restaurants", ts, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *RestaurantService) Get(ctx context.Context, ts gateway.TokenSource, id string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.client.Get(ctx, "/api/restaurants/"+id, ts, &restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// Create forwards the admin's multipart form (fields plus image) upstream
// unchanged; image handling stays a platform concern.
func (s *RestaurantService) Create(ctx context.Context, ts gateway.TokenSource, contentType string, body io.Reader) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.client.Forward(ctx, "POST", "/api/restaurants/add", ts, contentType, body, &restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (s *RestaurantService) Update(ctx context.Context, ts gateway.TokenSource, id, contentType string, body io.Reader) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.client.Forward(ctx, "PUT", "/api/restaurants/"+id, ts, contentType, body, &restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (s *RestaurantService) Delete(ctx context.Context, ts gateway.TokenSource, id string) error {
	return s.client.Delete(ctx, "/api/restaurants/"+id, ts, nil)
}
